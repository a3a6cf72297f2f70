package stream

import (
	"errors"
	"sync"
	"testing"

	"github.com/Neumenon/rcg/rcg"
)

func TestCursor_Basic(t *testing.T) {
	var c rcg.Collector
	cursor := NewCursor(&c)

	if _, ok := cursor.Snapshot(); ok {
		t.Error("Snapshot before the first show should report !ok")
	}

	pt := rcg.NewPlayerType()
	pt.ID = 2
	events := []rcg.Event{
		rcg.LogVersionEvent{Version: 3},
		rcg.PlayerTypeEvent{Type: pt},
		rcg.PlayModeEvent{Time: 0, PlayMode: rcg.PMKickOffRight},
		rcg.TeamEvent{Left: rcg.Team{Name: "L"}, Right: rcg.Team{Name: "R", Score: 1}},
		rcg.ShowEvent{Show: sampleShow(5)},
		rcg.MsgEvent{Time: 5, Board: rcg.MsgBoard, Text: "x"},
		rcg.ShowEvent{Show: sampleShow(3)},
		rcg.EOFEvent{},
	}
	for _, ev := range events {
		if err := cursor.Handle(ev); err != nil {
			t.Fatalf("Handle failed: %v", err)
		}
	}

	if len(c.Events) != len(events) {
		t.Errorf("forwarded %d events, want %d", len(c.Events), len(events))
	}

	disp, ok := cursor.Snapshot()
	if !ok {
		t.Fatal("Snapshot reported !ok")
	}
	if disp.PlayMode != rcg.PMKickOffRight || disp.Teams[1].Score != 1 || disp.Show.Time != 3 {
		t.Errorf("snapshot = %v %+v %d", disp.PlayMode, disp.Teams, disp.Show.Time)
	}

	st := cursor.State()
	if st.Version != 3 || st.Shows != 2 || st.Messages != 1 || st.Backsteps != 1 || !st.Final {
		t.Errorf("state = %+v", st)
	}
	if got, ok := cursor.PlayerType(2); !ok || got != pt {
		t.Error("player type 2 not recorded")
	}

	cursor.Reset()
	if st := cursor.State(); st.Shows != 0 || len(st.PlayerTypes) != 0 {
		t.Errorf("Reset left state behind: %+v", st)
	}
}

func TestCursor_ForwardsErrors(t *testing.T) {
	stop := errors.New("stop")
	cursor := NewCursor(rcg.HandlerFunc(func(rcg.Event) error { return stop }))
	if err := cursor.Handle(rcg.ShowEvent{Show: sampleShow(1)}); !errors.Is(err, stop) {
		t.Errorf("got %v, want stop", err)
	}
	if st := cursor.State(); st.Shows != 1 {
		t.Errorf("show not recorded before forwarding: %d", st.Shows)
	}
}

func TestCursor_ConcurrentReaders(t *testing.T) {
	cursor := NewCursor(nil)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cursor.Snapshot()
				cursor.State()
			}
		}()
	}
	for i := 1; i <= 100; i++ {
		cursor.Handle(rcg.ShowEvent{Show: sampleShow(i)})
	}
	wg.Wait()
	if st := cursor.State(); st.Shows != 100 || st.Backsteps != 0 {
		t.Errorf("state = %+v", st)
	}
}
