package emit

import (
	"bufio"
	"io"

	"github.com/Neumenon/rcg/rcg"
	"github.com/Neumenon/rcg/stream"
)

// BinaryWriter writes the mode tagged v2 or v3 log.
//
// v2 has no parameter or player type records; those events are dropped
// and play mode and team changes travel with the next show.
type BinaryWriter struct {
	bw *bufio.Writer
	sw *stream.Writer
}

// NewBinaryWriter returns a writer for version 2 or 3.
func NewBinaryWriter(w io.Writer, version int) (*BinaryWriter, error) {
	bw := bufio.NewWriter(w)
	sw, err := stream.NewWriter(bw, version)
	if err != nil {
		return nil, err
	}
	return &BinaryWriter{bw: bw, sw: sw}, nil
}

// Flush writes any buffered output.
func (b *BinaryWriter) Flush() error {
	return b.bw.Flush()
}

// Handle writes one event.
func (b *BinaryWriter) Handle(ev rcg.Event) error {
	v3 := b.sw.Version() >= rcg.Version3
	switch e := ev.(type) {
	case rcg.LogVersionEvent:
		return b.sw.WriteHeader()
	case rcg.ShowEvent:
		return b.sw.WriteShow(e.Show)
	case rcg.MsgEvent:
		return b.sw.WriteMsg(e.Board, e.Text)
	case rcg.DrawClearEvent, rcg.DrawPointEvent, rcg.DrawCircleEvent, rcg.DrawLineEvent:
		return b.sw.WriteDraw(ev)
	case rcg.PlayModeEvent:
		return b.sw.WritePlayMode(e.PlayMode)
	case rcg.TeamEvent:
		return b.sw.WriteTeam(e.Left, e.Right)
	case rcg.TeamGraphicEvent:
		tile, err := tileFromLines(e.Xpm)
		if err != nil {
			return err
		}
		return b.sw.WriteMsg(1, rcg.TeamGraphicMessage(e.Side, e.X, e.Y, tile))
	case rcg.ServerParamEvent:
		if v3 {
			return b.sw.WriteServerParam(e.Param)
		}
	case rcg.PlayerParamEvent:
		if v3 {
			return b.sw.WritePlayerParam(e.Param)
		}
	case rcg.PlayerTypeEvent:
		if v3 {
			return b.sw.WritePlayerType(e.Type)
		}
	case rcg.EOFEvent:
		if err := b.sw.WriteHeader(); err != nil {
			return err
		}
		return b.Flush()
	}
	return nil
}
