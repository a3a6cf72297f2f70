package stream

import (
	"sync"

	"github.com/Neumenon/rcg/rcg"
)

// Cursor tracks the state of one log while its events pass through to
// the next handler. It is safe to query from other goroutines while a
// parser feeds it.
type Cursor struct {
	mu sync.RWMutex

	next  rcg.Handler
	state State
}

// State is the match state accumulated from the events seen so far.
type State struct {
	Version       int
	ServerVersion string
	PlayMode      rcg.PlayMode
	Teams         [2]rcg.Team
	Show          *rcg.ShowInfo // last show
	Shows         int
	Messages      int
	Backsteps     int // shows whose time went backwards
	ServerParam   *rcg.ServerParam
	PlayerParam   *rcg.PlayerParam
	PlayerTypes   map[int]*rcg.PlayerType
	Final         bool
}

// NewCursor creates a cursor forwarding to next. next may be nil.
func NewCursor(next rcg.Handler) *Cursor {
	return &Cursor{
		next:  next,
		state: State{PlayerTypes: make(map[int]*rcg.PlayerType)},
	}
}

// Handle records ev and forwards it.
func (c *Cursor) Handle(ev rcg.Event) error {
	c.apply(ev)
	if c.next == nil {
		return nil
	}
	return c.next.Handle(ev)
}

func (c *Cursor) apply(ev rcg.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &c.state
	switch e := ev.(type) {
	case rcg.LogVersionEvent:
		s.Version = e.Version
	case rcg.ServerVersionEvent:
		s.ServerVersion = e.Version
	case rcg.ShowEvent:
		if s.Show != nil && e.Show.Time < s.Show.Time {
			s.Backsteps++
		}
		s.Show = e.Show
		s.Shows++
	case rcg.MsgEvent:
		s.Messages++
	case rcg.PlayModeEvent:
		s.PlayMode = e.PlayMode
	case rcg.TeamEvent:
		s.Teams = [2]rcg.Team{e.Left, e.Right}
	case rcg.ServerParamEvent:
		s.ServerParam = e.Param
	case rcg.PlayerParamEvent:
		s.PlayerParam = e.Param
	case rcg.PlayerTypeEvent:
		s.PlayerTypes[e.Type.ID] = e.Type
	case rcg.EOFEvent:
		s.Final = true
	}
}

// State returns a copy of the current state.
func (c *Cursor) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.state
	s.PlayerTypes = make(map[int]*rcg.PlayerType, len(c.state.PlayerTypes))
	for id, t := range c.state.PlayerTypes {
		s.PlayerTypes[id] = t
	}
	return s
}

// Snapshot returns the last show together with the play mode and teams
// in force. ok is false before the first show.
func (c *Cursor) Snapshot() (disp rcg.DispInfo, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state.Show == nil {
		return rcg.DispInfo{}, false
	}
	return rcg.DispInfo{
		PlayMode: c.state.PlayMode,
		Teams:    c.state.Teams,
		Show:     *c.state.Show,
	}, true
}

// PlayerType returns the player type with the given id.
func (c *Cursor) PlayerType(id int) (*rcg.PlayerType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.state.PlayerTypes[id]
	return t, ok
}

// Reset clears the state for a new log.
func (c *Cursor) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{PlayerTypes: make(map[int]*rcg.PlayerType)}
}
