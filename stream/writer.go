package stream

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Neumenon/rcg/legacy"
	"github.com/Neumenon/rcg/rcg"
)

// Writer writes a v2 or v3 binary log.
//
// v2 has no play mode or team records; the writer remembers the last
// ones and embeds them into every show.
type Writer struct {
	w           io.Writer
	version     int
	wroteHeader bool

	playMode rcg.PlayMode
	teams    [2]rcg.Team
}

// NewWriter creates a writer for version 2 or 3.
func NewWriter(w io.Writer, version int) (*Writer, error) {
	if version != 2 && version != 3 {
		return nil, fmt.Errorf("rcg stream: cannot write binary version %d", version)
	}
	return &Writer{w: w, version: version}, nil
}

// Version returns the version written.
func (w *Writer) Version() int { return w.version }

// WriteHeader writes the header. It is written at most once; the record
// writers call it implicitly.
func (w *Writer) WriteHeader() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	hdr := [HeaderSize]byte{Magic[0], Magic[1], Magic[2], byte(w.version)}
	if _, err := w.w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// WriteRecord writes a mode tag followed by the big endian encoding of
// body, which must be a fixed-size value.
func (w *Writer) WriteRecord(mode int16, body any) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if _, ok := BodySize(w.version, mode); !ok {
		return fmt.Errorf("rcg stream: %s cannot be written in v%d", legacy.ModeName(mode), w.version)
	}
	if err := legacy.Write(w.w, mode); err != nil {
		return fmt.Errorf("write %s: %w", legacy.ModeName(mode), err)
	}
	if body == nil {
		return nil
	}
	if err := legacy.Write(w.w, body); err != nil {
		return fmt.Errorf("write %s: %w", legacy.ModeName(mode), err)
	}
	return nil
}

// WriteShow writes one cycle.
func (w *Writer) WriteShow(show *rcg.ShowInfo) error {
	if w.version == 2 {
		var si legacy.ShowInfo
		legacy.ShowToShowInfo(w.playMode, &w.teams[0], &w.teams[1], show, &si)
		return w.WriteRecord(legacy.ShowMode, &si)
	}
	var si legacy.ShortShowInfo2
	legacy.ShowToShortShowInfo2(show, &si)
	return w.WriteRecord(legacy.ShowMode, &si)
}

// WriteMsg writes a message record. The text is NUL terminated.
func (w *Writer) WriteMsg(board int, text string) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if len(text) > DefaultMaxMessage-2 {
		text = text[:DefaultMaxMessage-2]
	}
	buf := make([]byte, 6+len(text)+1)
	binary.BigEndian.PutUint16(buf[0:], uint16(legacy.MsgMode))
	binary.BigEndian.PutUint16(buf[2:], uint16(legacy.IntToShort(board)))
	binary.BigEndian.PutUint16(buf[4:], uint16(len(text)+1))
	copy(buf[6:], text)
	if _, err := w.w.Write(buf); err != nil {
		return fmt.Errorf("write msg: %w", err)
	}
	return nil
}

// WriteDraw writes a legacy draw record.
func (w *Writer) WriteDraw(ev rcg.Event) error {
	var di legacy.DrawInfo
	if !legacy.EventToDrawInfo(ev, &di) {
		return fmt.Errorf("rcg stream: %s is not a draw event", ev.Kind())
	}
	return w.WriteRecord(legacy.DrawMode, &di)
}

// WritePlayMode writes a play mode record (v3) or remembers it for the
// next show (v2).
func (w *Writer) WritePlayMode(pm rcg.PlayMode) error {
	w.playMode = pm
	if w.version == 2 {
		return w.WriteHeader()
	}
	return w.WriteRecord(legacy.PMMode, uint8(pm))
}

// WriteTeam writes a team record (v3) or remembers the teams for the
// next show (v2).
func (w *Writer) WriteTeam(left, right rcg.Team) error {
	w.teams = [2]rcg.Team{left, right}
	if w.version == 2 {
		return w.WriteHeader()
	}
	var teams [2]legacy.TeamInfo
	legacy.TeamToTeamInfo(&left, &teams[0])
	legacy.TeamToTeamInfo(&right, &teams[1])
	return w.WriteRecord(legacy.TeamMode, &teams)
}

// WritePlayerType writes a player type record (v3 only).
func (w *Writer) WritePlayerType(t *rcg.PlayerType) error {
	var pt legacy.PlayerTypeInfo
	legacy.PlayerTypeToPlayerTypeInfo(t, &pt)
	return w.WriteRecord(legacy.PTMode, &pt)
}

// WriteServerParam writes a server parameter record (v3 only).
func (w *Writer) WriteServerParam(p *rcg.ServerParam) error {
	var sp legacy.ServerParams
	legacy.ServerParamToServerParams(p, &sp)
	return w.WriteRecord(legacy.ParamMode, &sp)
}

// WritePlayerParam writes a player parameter record (v3 only).
func (w *Writer) WritePlayerParam(p *rcg.PlayerParam) error {
	var pp legacy.PlayerParams
	legacy.PlayerParamToPlayerParams(p, &pp)
	return w.WriteRecord(legacy.PParamMode, &pp)
}
