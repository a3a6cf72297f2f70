// rcgbench - game log codec benchmark runner
//
// Encodes one match in every output format and measures, per format:
//   - Bytes on disk, raw and gzip compressed
//   - Encode and decode time, decode throughput
//
// The match is read from a log file or synthesized.
//
// Usage:
//
//	rcgbench [--cycles=N] [--runs=N] [--csv=FILE] [file]
//
// Output: markdown summary on stdout, optional CSV
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Neumenon/rcg/parser"
	"github.com/Neumenon/rcg/rcg"
)

func main() {
	cycles := 6000
	runs := 5
	csvPath := ""
	fileArg := ""
	for _, arg := range os.Args[1:] {
		switch {
		case strings.HasPrefix(arg, "--cycles="):
			cycles = intArg(arg, "--cycles=")
		case strings.HasPrefix(arg, "--runs="):
			runs = intArg(arg, "--runs=")
		case strings.HasPrefix(arg, "--csv="):
			csvPath = strings.TrimPrefix(arg, "--csv=")
		case arg == "-h" || arg == "--help":
			fmt.Fprintln(os.Stderr, "usage: rcgbench [--cycles=N] [--runs=N] [--csv=FILE] [file]")
			return
		default:
			fileArg = arg
		}
	}

	var events []rcg.Event
	source := fmt.Sprintf("synthetic, %d cycles", cycles)
	if fileArg != "" {
		var c rcg.Collector
		quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
		if _, err := parser.ParseFile(fileArg, &c, parser.WithLogger(quiet)); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot read %s: %v\n", fileArg, err)
			os.Exit(1)
		}
		events = c.Events
		source = fileArg
	} else {
		events = synthesize(cycles)
	}

	fmt.Fprintf(os.Stderr, "rcg Benchmark Runner\n")
	fmt.Fprintf(os.Stderr, "====================\n")
	fmt.Fprintf(os.Stderr, "Source: %s (%d events), %d runs\n\n", source, len(events), runs)

	var results []CaseResult
	for _, c := range cases {
		r, err := runCase(c, events, runs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skip %s: %v\n", c.Name, err)
			continue
		}
		results = append(results, r)
	}

	if csvPath != "" {
		csvFile, err := os.Create(csvPath)
		if err == nil {
			writeCSV(csvFile, results)
			csvFile.Close()
			fmt.Fprintf(os.Stderr, "CSV written to: %s\n", csvPath)
		}
	}
	writeMarkdown(os.Stdout, results, source, len(events))
}

func intArg(arg, prefix string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, prefix))
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "bad %s value: %q\n", strings.TrimSuffix(prefix, "="), arg)
		os.Exit(1)
	}
	return n
}
