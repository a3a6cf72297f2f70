package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/Neumenon/rcg/emit"
	"github.com/Neumenon/rcg/parser"
	"github.com/Neumenon/rcg/rcg"
)

// Case is one output format under test.
type Case struct {
	Name    string
	Format  emit.Format
	Version int
}

var cases = []Case{
	{"text v4", emit.FormatText, rcg.Version4},
	{"text v5", emit.FormatText, rcg.Version5},
	{"text v6", emit.FormatText, rcg.Version6},
	{"binary v2", emit.FormatBinary, rcg.Version2},
	{"binary v3", emit.FormatBinary, rcg.Version3},
	{"json", emit.FormatJSON, 0},
	{"msgpack", emit.FormatMsgpack, 0},
}

type CaseResult struct {
	Name      string
	Bytes     int
	GzipBytes int
	Events    int
	Encode    time.Duration
	Decode    time.Duration
}

// MBps is the decode throughput over the raw bytes.
func (r CaseResult) MBps() float64 {
	if r.Decode <= 0 {
		return 0
	}
	return float64(r.Bytes) / r.Decode.Seconds() / (1 << 20)
}

// runCase encodes events once and decodes the result runs times. Decode
// is the fastest run.
func runCase(c Case, events []rcg.Event, runs int) (CaseResult, error) {
	res := CaseResult{Name: c.Name}

	var buf bytes.Buffer
	start := time.Now()
	w, err := emit.New(c.Format, &buf, c.Version)
	if err != nil {
		return res, err
	}
	for _, ev := range events {
		if err := w.Handle(ev); err != nil {
			return res, fmt.Errorf("encode: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return res, fmt.Errorf("encode: %w", err)
	}
	res.Encode = time.Since(start)
	data := buf.Bytes()
	res.Bytes = len(data)

	gz, err := gzipSize(data)
	if err != nil {
		return res, err
	}
	res.GzipBytes = gz

	for i := 0; i < runs; i++ {
		n := 0
		count := rcg.HandlerFunc(func(rcg.Event) error { n++; return nil })
		start := time.Now()
		if err := decode(c, data, count); err != nil {
			return res, fmt.Errorf("decode: %w", err)
		}
		d := time.Since(start)
		if i == 0 || d < res.Decode {
			res.Decode = d
		}
		res.Events = n
	}
	return res, nil
}

func decode(c Case, data []byte, h rcg.Handler) error {
	if c.Format == emit.FormatMsgpack {
		return emit.ReadMsgpack(bytes.NewReader(data), h)
	}
	r := bytes.NewReader(data)
	p, err := parser.Create(r, parser.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		return err
	}
	return p.Parse(r, h)
}

func gzipSize(data []byte) (int, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(data); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// synthesize builds a match of the given number of cycles: parameters,
// 18 player types, kick off, then one show per cycle with players
// circling their home positions and a coach message every 100 cycles.
func synthesize(cycles int) []rcg.Event {
	events := []rcg.Event{
		rcg.LogVersionEvent{Version: rcg.Version6},
		rcg.ServerParamEvent{Param: rcg.NewServerParam()},
		rcg.PlayerParamEvent{Param: rcg.NewPlayerParam()},
	}
	for id := 0; id < 18; id++ {
		pt := rcg.NewPlayerType()
		pt.ID = id
		events = append(events, rcg.PlayerTypeEvent{Type: pt})
	}
	left := rcg.Team{Name: "alpha"}
	right := rcg.Team{Name: "beta"}
	events = append(events,
		rcg.PlayModeEvent{Time: 0, PlayMode: rcg.PMBeforeKickOff},
		rcg.TeamEvent{Time: 0, Left: left, Right: right},
	)

	for t := 1; t <= cycles; t++ {
		if t == 1 {
			events = append(events, rcg.PlayModeEvent{Time: t, PlayMode: rcg.PMPlayOn})
		}
		if t%1000 == 0 {
			left.Score++
			events = append(events, rcg.TeamEvent{Time: t, Left: left, Right: right})
		}
		events = append(events, rcg.ShowEvent{Show: syntheticShow(t)})
		if t%100 == 0 {
			events = append(events, rcg.MsgEvent{Time: t, Board: 1, Text: fmt.Sprintf("(say %d)", t)})
		}
	}
	return append(events, rcg.EOFEvent{})
}

func syntheticShow(t int) *rcg.ShowInfo {
	s := rcg.NewShowInfo()
	s.Time = t
	phase := float64(t) / 50
	s.Ball = rcg.Ball{
		X:  float32(40 * math.Sin(phase)),
		Y:  float32(25 * math.Cos(phase)),
		VX: float32(0.8 * math.Cos(phase)),
		VY: float32(-0.5 * math.Sin(phase)),
	}
	for i := range s.Players {
		p := &s.Players[i]
		side, unum := rcg.Left, i+1
		if i >= rcg.MaxPlayer {
			side, unum = rcg.Right, i-rcg.MaxPlayer+1
		}
		home := float64(side) * float64(5*unum-30)
		a := phase + float64(i)
		p.Side = side
		p.Unum = int16(unum)
		p.Type = int16(i % 18)
		p.State = rcg.Stand
		if unum == 1 {
			p.State |= rcg.Goalie
		}
		p.X = float32(home + 3*math.Cos(a))
		p.Y = float32(20*math.Sin(float64(unum)) + 3*math.Sin(a))
		p.VX = float32(-0.3 * math.Sin(a))
		p.VY = float32(0.3 * math.Cos(a))
		p.Body = float32(math.Mod(a*57.29, 360) - 180)
		p.Neck = 0
		p.ViewWidth = 60
		p.Stamina = float32(8000 - t%4000)
		p.Effort = 1
		p.Recovery = 1
		p.StaminaCapacity = 130600
		c := uint16(t / 2)
		p.KickCount, p.DashCount, p.TurnCount = c/10, c, c/3
		p.CatchCount, p.MoveCount, p.TurnNeckCount = 0, 1, c/4
		p.ChangeViewCount, p.SayCount, p.TackleCount = 2, c/100, 0
		p.PointtoCount, p.AttentiontoCount, p.ChangeFocusCount = 0, 1, 0
	}
	return &s
}

func writeCSV(w io.Writer, results []CaseResult) {
	fmt.Fprintln(w, "name,bytes,gzip_bytes,events,encode_ms,decode_ms,decode_mbps")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%d,%d,%.2f,%.2f,%.1f\n",
			r.Name, r.Bytes, r.GzipBytes, r.Events,
			ms(r.Encode), ms(r.Decode), r.MBps())
	}
}

func writeMarkdown(w io.Writer, results []CaseResult, source string, events int) {
	fmt.Fprintf(w, "# rcg Benchmark Results\n\n")
	fmt.Fprintf(w, "**Source:** %s (%d events)  \n\n", source, events)

	fmt.Fprintf(w, "| Format | Bytes | Gzip | Events | Encode ms | Decode ms | MB/s |\n")
	fmt.Fprintf(w, "|--------|-------|------|--------|-----------|-----------|------|\n")
	for _, r := range results {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %.2f | %.2f | %.1f |\n",
			r.Name, r.Bytes, r.GzipBytes, r.Events, ms(r.Encode), ms(r.Decode), r.MBps())
	}

	fmt.Fprintf(w, "\n## Methodology\n\n")
	fmt.Fprintf(w, "- **Encode:** one pass through the emit writer of each format\n")
	fmt.Fprintf(w, "- **Decode:** fastest of the runs, parser selected from the header\n")
	fmt.Fprintf(w, "- **Gzip:** klauspost/compress at the default level\n")
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
