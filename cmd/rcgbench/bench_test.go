package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Neumenon/rcg/rcg"
)

func TestSynthesize(t *testing.T) {
	events := synthesize(250)
	var c rcg.Collector
	for _, ev := range events {
		c.Handle(ev)
	}
	if got := c.Count(rcg.KindShow); got != 250 {
		t.Errorf("shows = %d, want 250", got)
	}
	if got := c.Count(rcg.KindPlayerType); got != 18 {
		t.Errorf("player types = %d, want 18", got)
	}
	if got := c.Count(rcg.KindMsg); got != 2 {
		t.Errorf("msgs = %d, want 2", got)
	}
	if events[len(events)-1].Kind() != rcg.KindEOF {
		t.Error("last event is not eof")
	}
	s := c.Shows()[0]
	if s.Players[0].Side != rcg.Left || s.Players[21].Side != rcg.Right || s.Players[21].Unum != 11 {
		t.Errorf("players = %+v / %+v", s.Players[0], s.Players[21])
	}
}

func TestRunCase(t *testing.T) {
	events := synthesize(50)
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			r, err := runCase(c, events, 1)
			if err != nil {
				t.Fatalf("runCase failed: %v", err)
			}
			if r.Bytes == 0 || r.GzipBytes == 0 {
				t.Errorf("sizes = %d/%d", r.Bytes, r.GzipBytes)
			}
			// Every format keeps log version, shows and eof.
			if r.Events < 52 {
				t.Errorf("decoded %d events", r.Events)
			}
		})
	}
}

func TestWriteReports(t *testing.T) {
	results := []CaseResult{{Name: "text v6", Bytes: 1024, GzipBytes: 256, Events: 10}}
	var csv, md bytes.Buffer
	writeCSV(&csv, results)
	writeMarkdown(&md, results, "synthetic", 10)
	if !strings.Contains(csv.String(), "text v6,1024,256,10,") {
		t.Errorf("csv = %q", csv.String())
	}
	if !strings.Contains(md.String(), "| text v6 | 1024 | 256 | 10 |") {
		t.Errorf("markdown = %q", md.String())
	}
}
