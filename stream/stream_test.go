package stream

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/Neumenon/rcg/legacy"
	"github.com/Neumenon/rcg/rcg"
)

func sampleShow(time int) *rcg.ShowInfo {
	s := rcg.NewShowInfo()
	s.Time = time
	s.Ball.X, s.Ball.Y = 1, -2
	s.Players[0].Side = rcg.Left
	s.Players[0].Unum = 1
	s.Players[0].State = rcg.Stand | rcg.Goalie
	s.Players[0].X = -50
	return &s
}

// ============================================================
// Writer Tests
// ============================================================

func TestWriter_Header(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, 3)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.WriteHeader(); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if err := w.WriteHeader(); err != nil {
		t.Fatalf("second WriteHeader failed: %v", err)
	}
	if got := buf.String(); got != "ULG\x03" {
		t.Errorf("header = %q, want ULG\\x03", got)
	}
	if _, err := NewWriter(&buf, 4); err == nil {
		t.Error("NewWriter(4) succeeded")
	}
}

func TestWriter_Msg(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, 3)
	if err := w.WriteMsg(rcg.MsgBoard, "hi"); err != nil {
		t.Fatalf("WriteMsg failed: %v", err)
	}
	want := []byte{'U', 'L', 'G', 3, 0, 2, 0, 1, 0, 3, 'h', 'i', 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestWriter_RejectsV3RecordsInV2(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, 2)
	if err := w.WritePlayerType(rcg.NewPlayerType()); err == nil {
		t.Error("player type written to a v2 stream")
	}
	if err := w.WritePlayMode(rcg.PMPlayOn); err != nil {
		t.Errorf("WritePlayMode failed: %v", err)
	}
	if buf.Len() != HeaderSize {
		t.Errorf("v2 play mode produced a record: %d bytes", buf.Len())
	}
}

// ============================================================
// Reader Tests
// ============================================================

func TestReaderWriter_RoundTripV3(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, 3)
	steps := []func() error{
		func() error { return w.WriteServerParam(rcg.NewServerParam()) },
		func() error { return w.WritePlayerParam(rcg.NewPlayerParam()) },
		func() error { return w.WritePlayerType(rcg.NewPlayerType()) },
		func() error { return w.WritePlayMode(rcg.PMKickOffLeft) },
		func() error { return w.WriteTeam(rcg.Team{Name: "L", Score: 1}, rcg.Team{Name: "R"}) },
		func() error { return w.WriteShow(sampleShow(1)) },
		func() error { return w.WriteMsg(rcg.LogBoard, "log") },
		func() error { return w.WriteDraw(rcg.DrawClearEvent{}) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	r := NewReader(&buf)
	version, err := r.ReadHeader()
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	if version != 3 {
		t.Errorf("version = %d, want 3", version)
	}
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	wantModes := []int16{
		legacy.ParamMode, legacy.PParamMode, legacy.PTMode, legacy.PMMode,
		legacy.TeamMode, legacy.ShowMode, legacy.MsgMode, legacy.DrawMode,
	}
	if len(records) != len(wantModes) {
		t.Fatalf("got %d records, want %d", len(records), len(wantModes))
	}
	for i, mode := range wantModes {
		if records[i].Mode != mode {
			t.Errorf("record %d mode = %s, want %s", i, legacy.ModeName(records[i].Mode), legacy.ModeName(mode))
		}
	}
	if records[0].Offset != HeaderSize {
		t.Errorf("first offset = %d, want %d", records[0].Offset, HeaderSize)
	}

	if records[3].Body[0] != uint8(rcg.PMKickOffLeft) {
		t.Errorf("play mode byte = %d", records[3].Body[0])
	}

	var show legacy.ShortShowInfo2
	if err := records[5].Decode(&show); err != nil {
		t.Fatalf("Decode show failed: %v", err)
	}
	got := legacy.ShortShowInfo2ToShow(&show)
	if got.Time != 1 || got.Players[0].X != -50 || !got.Players[0].IsGoalie() {
		t.Errorf("show = %d %+v", got.Time, got.Players[0])
	}

	board, text, err := records[6].Message()
	if err != nil || board != rcg.LogBoard || text != "log" {
		t.Errorf("Message() = %d %q %v", board, text, err)
	}
}

func TestReaderWriter_RoundTripV2(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, 2)
	w.WritePlayMode(rcg.PMPlayOn)
	w.WriteTeam(rcg.Team{Name: "alpha", Score: 3}, rcg.Team{Name: "beta"})
	if err := w.WriteShow(sampleShow(9)); err != nil {
		t.Fatalf("WriteShow failed: %v", err)
	}

	r := NewReader(&buf)
	if _, err := r.ReadHeader(); err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if len(rec.Body) != legacy.SizeShowInfo {
		t.Fatalf("body = %d bytes, want %d", len(rec.Body), legacy.SizeShowInfo)
	}
	var si legacy.ShowInfo
	rec.Decode(&si)
	if si.PMode != uint8(rcg.PMPlayOn) || legacy.CString(si.Team[0].Name[:]) != "alpha" || si.Team[0].Score != 3 {
		t.Errorf("embedded state = %d %+v", si.PMode, si.Team[0])
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"short header", []byte("UL"), ErrBadHeader},
		{"short header is truncated", []byte("ULG"), ErrTruncated},
		{"bad magic", []byte("XLG\x03"), ErrBadHeader},
		{"text version", []byte("ULG5"), ErrBadHeader},
		{"truncated tag", []byte("ULG\x03\x00"), ErrTruncated},
		{"truncated show", []byte("ULG\x03\x00\x01\x00\x00"), ErrTruncated},
		{"blank mode", []byte("ULG\x03\x00\x04"), ErrUnknownMode},
		{"team in v2", []byte("ULG\x02\x00\x06"), ErrUnknownMode},
		{"negative msg length", []byte("ULG\x03\x00\x02\x00\x01\xff\xff"), ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.input))
			_, err := r.ReadHeader()
			if err == nil {
				_, err = r.Next()
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("expected ParseError, got %T", err)
			}
		})
	}
}

func TestReader_MaxMessage(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, 3)
	w.WriteMsg(rcg.MsgBoard, "a long enough message")

	r := NewReader(&buf, WithMaxMessage(4))
	r.ReadHeader()
	if _, err := r.Next(); !errors.Is(err, ErrTruncated) {
		t.Errorf("got %v, want ErrTruncated", err)
	}
}

func TestReader_WithVersion(t *testing.T) {
	body := []byte{0, 0, 0, 5, 0, 0}
	r := NewReader(bytes.NewReader(body), WithVersion(3))
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if rec.Mode != legacy.NoInfo || rec.Offset != HeaderSize {
		t.Errorf("record = %s", rec)
	}
	if rec, err = r.Next(); err != nil || rec.Mode != legacy.PMMode || rec.Body[0] != 0 {
		t.Errorf("second record = %v, %v", rec, err)
	}
}

func TestRecord_MessageVerbatim(t *testing.T) {
	rec := &Record{Mode: legacy.MsgMode, Body: []byte{0, 1, 0, 5, 'a', 0, 'b', 'c', 'd'}}
	if _, text, _ := rec.Message(); text != "a\x00bcd" {
		t.Errorf("text = %q, want verbatim payload", text)
	}
	rec.Body[8] = 0
	if _, text, _ := rec.Message(); text != "a" {
		t.Errorf("text = %q, want a", text)
	}
}
