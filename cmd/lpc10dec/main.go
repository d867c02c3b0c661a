/*
NAME
  lpc10dec.go

DESCRIPTION
  lpc10dec is a command-line program for decoding an LPC-10 bitstream,
  given as hexadecimal bytes, to an 8kHz mono 16-bit PCM WAV file.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package lpc10dec is a command-line program for decoding an LPC-10
// bitstream to a WAV file.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ausocean/lpc10/codec/lpc10"
)

const wavFormat = 1

// This program accepts LPC-10 encoded hex, given as a positional argument,
// via -input-file, or on stdin (in that order of priority), and writes a
// decoded WAV file (8kHz mono 16-bit PCM).
func main() {
	var inputFile string
	var outputFile string
	flag.StringVar(&inputFile, "input-file", "", "file path containing hex-encoded LPC-10 data")
	flag.StringVar(&outputFile, "output-file", "decoded.wav", "file path of output WAV")
	flag.Parse()

	hexStr, err := getHex(flag.Arg(0), inputFile)
	if err != nil {
		log.Fatal("error parsing hex: ", err)
	}
	encoded, err := parseHex(hexStr)
	if err != nil {
		log.Fatal("error parsing hex: ", err)
	}
	fmt.Fprintln(os.Stderr, "read", len(encoded), "bytes")

	out, err := os.Create(outputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	enc := wav.NewEncoder(out, lpc10.SampleRate, 16, 1, wavFormat)
	defer enc.Close()

	intBuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: lpc10.SampleRate},
		SourceBitDepth: 16,
	}

	bs := lpc10.NewBitStream(encoded)
	dec := lpc10.NewDecoder()
	var n int
	for !dec.ProcessFrame(bs) {
		data := make([]int, lpc10.FrameSamples)
		for i := range data {
			data[i] = int(dec.GetSample())
		}
		intBuf.Data = data
		if err := enc.Write(intBuf); err != nil {
			log.Fatal(err)
		}
		n += len(data)
	}
	fmt.Fprintln(os.Stderr, "decoded and wrote", n, "samples to", outputFile)
}

// getHex returns the hex text to decode: the positional argument if given,
// else the contents of inputFile if given, else one line read from stdin.
func getHex(positional, inputFile string) (string, error) {
	if positional != "" {
		return positional, nil
	}
	if inputFile != "" {
		b, err := os.ReadFile(inputFile)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", scanner.Err()
	}
	return scanner.Text(), nil
}

// parseHex parses a loosely-formatted hex byte list: optional surrounding
// brackets, comma or whitespace separated, each byte optionally prefixed
// with "0x".
func parseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.Fields(s)
	out := make([]byte, 0, len(fields))
	for _, word := range fields {
		word = strings.TrimPrefix(word, "0x")
		if len(word) == 1 {
			word = "0" + word
		}
		b, err := hex.DecodeString(word)
		if err != nil {
			n, err2 := strconv.ParseUint(word, 16, 8)
			if err2 != nil {
				return nil, err
			}
			out = append(out, byte(n))
			continue
		}
		out = append(out, b...)
	}
	return out, nil
}
