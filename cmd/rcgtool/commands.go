package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/Neumenon/rcg/emit"
	"github.com/Neumenon/rcg/internal/config"
	"github.com/Neumenon/rcg/internal/logging"
	"github.com/Neumenon/rcg/parser"
	"github.com/Neumenon/rcg/rcg"
	"github.com/Neumenon/rcg/stream"
)

// env is what every command runs against.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
	stdin  io.Reader
	stdout io.Writer
}

func newEnv(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) (*env, error) {
	logger, closer, err := logging.Setup(cfg.Log, stderr)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:    cfg,
		logger: logger.With("tool", "rcgtool"),
		closer: closer,
		stdin:  stdin,
		stdout: stdout,
	}, nil
}

func (e *env) close() {
	if err := e.closer.Close(); err != nil {
		e.logger.Warn("close log file", "error", err)
	}
}

func (e *env) parserOptions() []parser.Option {
	opts := []parser.Option{
		parser.WithLogger(e.logger),
		parser.WithMaxMessage(e.cfg.Decode.MaxMessage),
	}
	if e.cfg.Decode.StreamingJSON {
		opts = append(opts, parser.WithStreamingJSON())
	}
	if e.cfg.Decode.LegacyBallVY {
		opts = append(opts, parser.WithLegacyBallVY())
	}
	return opts
}

// open returns the named file, or stdin when name is empty, fully read
// and decompressed.
func (e *env) open(name string) (*bytes.Reader, error) {
	if name != "" {
		return parser.Open(name)
	}
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	data, err = parser.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return bytes.NewReader(data), nil
}

// decode parses the log named by file into h.
func (e *env) decode(file string, h rcg.Handler) error {
	r, err := e.open(file)
	if err != nil {
		return err
	}
	p, err := parser.Create(r, e.parserOptions()...)
	if err != nil {
		return err
	}
	e.logger.Debug("decoding", "file", file, "version", p.Version())
	return p.Parse(r, h)
}

func (e *env) writer() (emit.Writer, error) {
	format, err := emit.ParseFormat(e.cfg.Convert.Format)
	if err != nil {
		return nil, err
	}
	return emit.New(format, e.stdout, e.cfg.Convert.Version)
}

// ============================================================
// Commands
// ============================================================

// cmdDump prints one line per event.
func (e *env) cmdDump(file string) error {
	return e.decode(file, rcg.HandlerFunc(func(ev rcg.Event) error {
		_, err := fmt.Fprintln(e.stdout, describe(ev))
		return err
	}))
}

// cmdStats prints the final match state and the event counts.
func (e *env) cmdStats(file string) error {
	counts := make(map[rcg.EventKind]int)
	cursor := stream.NewCursor(rcg.HandlerFunc(func(ev rcg.Event) error {
		counts[ev.Kind()]++
		return nil
	}))
	if err := e.decode(file, cursor); err != nil {
		return err
	}

	st := cursor.State()
	lastTime := 0
	if st.Show != nil {
		lastTime = st.Show.Time
	}
	fmt.Fprintf(e.stdout, "version:      %d\n", st.Version)
	fmt.Fprintf(e.stdout, "last cycle:   %d\n", lastTime)
	fmt.Fprintf(e.stdout, "playmode:     %s\n", st.PlayMode)
	fmt.Fprintf(e.stdout, "left:         %s\n", st.Teams[0])
	fmt.Fprintf(e.stdout, "right:        %s\n", st.Teams[1])
	fmt.Fprintf(e.stdout, "player types: %d\n", len(st.PlayerTypes))
	if st.Backsteps > 0 {
		fmt.Fprintf(e.stdout, "backsteps:    %d\n", st.Backsteps)
	}

	kinds := make([]rcg.EventKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(e.stdout, "  %-14s %d\n", k, counts[k])
	}
	return nil
}

// cmdConvert rewrites a log in the configured output format.
func (e *env) cmdConvert(file string) error {
	w, err := e.writer()
	if err != nil {
		return err
	}
	if err := e.decode(file, w); err != nil {
		// Keep what was written before the failure.
		if ferr := w.Flush(); ferr != nil {
			e.logger.Warn("flush output", "error", ferr)
		}
		return err
	}
	return nil
}

// cmdUnpack replays a msgpack cache into the configured output format.
func (e *env) cmdUnpack(file string) error {
	r, err := e.open(file)
	if err != nil {
		return err
	}
	w, err := e.writer()
	if err != nil {
		return err
	}
	if err := emit.ReadMsgpack(r, w); err != nil {
		if ferr := w.Flush(); ferr != nil {
			e.logger.Warn("flush output", "error", ferr)
		}
		return err
	}
	return nil
}

// cmdParams loads server.conf and optionally player.conf and prints them
// as log records. Unknown keys and bad values are logged and skipped.
func (e *env) cmdParams(serverConf, playerConf string) error {
	if serverConf == "" {
		return errors.New("params: missing server.conf")
	}
	sp := rcg.NewServerParam()
	if err := e.loadConf(serverConf, rcg.LoadServerConf(sp, serverConf)); err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, sp.SExp())

	if playerConf == "" {
		return nil
	}
	pp := rcg.NewPlayerParam()
	if err := e.loadConf(playerConf, rcg.LoadPlayerConf(pp, playerConf)); err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, pp.SExp())
	return nil
}

// loadConf reports the parameter errors of a loaded file and passes any
// other error on.
func (e *env) loadConf(name string, err error) error {
	var perrs rcg.ParamErrors
	if errors.As(err, &perrs) {
		for _, pe := range perrs {
			e.logger.Warn("param skipped", "file", name, "error", pe)
		}
		return nil
	}
	return err
}

// ============================================================
// Event formatting
// ============================================================

func describe(ev rcg.Event) string {
	switch e := ev.(type) {
	case rcg.LogVersionEvent:
		return fmt.Sprintf("log_version %d", e.Version)
	case rcg.ServerVersionEvent:
		return fmt.Sprintf("server_version %s", e.Version)
	case rcg.TimestampEvent:
		return fmt.Sprintf("timestamp %s", e.Value)
	case rcg.ShowEvent:
		s := e.Show
		n := 0
		for i := range s.Players {
			if s.Players[i].Side != rcg.Neutral {
				n++
			}
		}
		return fmt.Sprintf("show %d.%d ball (%g %g) players %d", s.Time, s.STime, s.Ball.X, s.Ball.Y, n)
	case rcg.MsgEvent:
		return fmt.Sprintf("msg %d board %d %q", e.Time, e.Board, e.Text)
	case rcg.DrawClearEvent:
		return fmt.Sprintf("draw_clear %d", e.Time)
	case rcg.DrawPointEvent:
		return fmt.Sprintf("draw_point %d (%g %g) %s", e.Time, e.Point.X, e.Point.Y, e.Point.Color)
	case rcg.DrawCircleEvent:
		return fmt.Sprintf("draw_circle %d (%g %g) r %g %s", e.Time, e.Circle.X, e.Circle.Y, e.Circle.R, e.Circle.Color)
	case rcg.DrawLineEvent:
		l := e.Line
		return fmt.Sprintf("draw_line %d (%g %g)-(%g %g) %s", e.Time, l.X1, l.Y1, l.X2, l.Y2, l.Color)
	case rcg.PlayModeEvent:
		return fmt.Sprintf("playmode %d %s", e.Time, e.PlayMode)
	case rcg.TeamEvent:
		return fmt.Sprintf("team %d %s : %s", e.Time, e.Left, e.Right)
	case rcg.ServerParamEvent:
		return "server_param"
	case rcg.PlayerParamEvent:
		return fmt.Sprintf("player_param types %d", e.Param.PlayerTypes)
	case rcg.PlayerTypeEvent:
		return fmt.Sprintf("player_type %d", e.Type.ID)
	case rcg.TeamGraphicEvent:
		return fmt.Sprintf("team_graphic %s (%d %d) %d lines", e.Side, e.X, e.Y, len(e.Xpm))
	case rcg.EOFEvent:
		return "eof"
	}
	return ev.Kind().String()
}
