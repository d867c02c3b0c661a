/*
NAME
  lpc10enc.go

DESCRIPTION
  lpc10enc is a command-line program for encoding an 8kHz mono 16-bit PCM
  WAV file to an LPC-10 bitstream, printed to stdout as hexadecimal bytes.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package lpc10enc is a command-line program for encoding a WAV file to an
// LPC-10 bitstream.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/wav"

	"github.com/ausocean/lpc10/codec/lpc10"
	"github.com/ausocean/lpc10/codec/pcm"
)

// This program accepts an input WAV file (8kHz mono 16-bit PCM) and writes
// the LPC-10 encoded bitstream, as hex text, to stdout or an output file.
func main() {
	var inPath string
	var outPath string
	flag.StringVar(&inPath, "in", "", "file path of input WAV (8kHz mono 16-bit PCM)")
	flag.StringVar(&outPath, "out", "", "file path of output hex; defaults to stdout")
	flag.Parse()

	if inPath == "" {
		log.Fatal("-in is required")
	}

	f, err := os.Open(inPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		log.Fatal(err)
	}
	if dec.SampleRate != lpc10.SampleRate {
		log.Fatalf("unsupported sample rate %d, want %d", dec.SampleRate, lpc10.SampleRate)
	}
	if dec.NumChans != 1 {
		log.Fatalf("unsupported channel count %d, want 1", dec.NumChans)
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}
	duration := float64(len(samples)) / lpc10.SampleRate
	fmt.Fprintln(os.Stderr, "read", len(samples), "samples from", inPath,
		"(", pcm.DataSize(lpc10.SampleRate, 1, 16, duration), "raw PCM bytes,", duration, "s )")

	enc, err := lpc10.NewEncoder()
	if err != nil {
		log.Fatal(err)
	}
	encoded, err := enc.Encode(samples)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if outPath != "" {
		out, err = os.Create(outPath)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}
	fmt.Fprintln(out, hex.EncodeToString(encoded))
	fmt.Fprintln(os.Stderr, "encoded and wrote", len(encoded), "bytes")
}
