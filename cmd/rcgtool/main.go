// rcgtool - RoboCup game log tool
//
// Usage:
//
//	rcgtool dump [options] [file]             Print every event of a log
//	rcgtool stats [options] [file]            Summarize a log
//	rcgtool convert [options] [file]          Rewrite a log in another format
//	rcgtool unpack [options] [file]           Rewrite a msgpack cache as a log
//	rcgtool params [--player=FILE] FILE       Print server.conf/player.conf records
//	rcgtool version                           Print version info
//
// Logs may be gzip compressed. If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Neumenon/rcg/internal/config"
)

const toolVersion = "0.3.0"

// invocation is a parsed command line.
type invocation struct {
	cmd        string
	configPath string
	fileArg    string
	playerConf string

	// Overrides applied on top of the configuration file.
	format        string
	version       int
	logLevel      string
	streamingJSON bool
	legacyBallVY  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "rcgtool: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return fmt.Errorf("missing command")
	}
	inv, err := parseArgs(args)
	if err != nil {
		return err
	}

	switch inv.cmd {
	case "version", "-v", "--version":
		fmt.Fprintf(stdout, "rcgtool %s (log versions 1-6, json)\n", toolVersion)
		return nil
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	}

	cfg, err := config.Load(inv.configPath)
	if err != nil {
		return err
	}
	inv.apply(cfg)

	env, err := newEnv(cfg, stdin, stdout, stderr)
	if err != nil {
		return err
	}
	defer env.close()

	switch inv.cmd {
	case "dump":
		return env.cmdDump(inv.fileArg)
	case "stats":
		return env.cmdStats(inv.fileArg)
	case "convert":
		return env.cmdConvert(inv.fileArg)
	case "unpack":
		return env.cmdUnpack(inv.fileArg)
	case "params":
		return env.cmdParams(inv.fileArg, inv.playerConf)
	}
	printUsage(stderr)
	return fmt.Errorf("unknown command: %s", inv.cmd)
}

func parseArgs(args []string) (*invocation, error) {
	inv := &invocation{cmd: args[0]}
	for _, arg := range args[1:] {
		switch {
		case arg == "--streaming-json":
			inv.streamingJSON = true
		case arg == "--legacy-ball-vy":
			inv.legacyBallVY = true
		case strings.HasPrefix(arg, "--config="):
			inv.configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "--format="):
			inv.format = strings.TrimPrefix(arg, "--format=")
		case strings.HasPrefix(arg, "--log-level="):
			inv.logLevel = strings.TrimPrefix(arg, "--log-level=")
		case strings.HasPrefix(arg, "--player="):
			inv.playerConf = strings.TrimPrefix(arg, "--player=")
		case strings.HasPrefix(arg, "--version="):
			n, err := parseIntArg(arg, "--version=")
			if err != nil {
				return nil, err
			}
			inv.version = n
		case arg == "-":
			inv.fileArg = ""
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown option: %s", arg)
		default:
			inv.fileArg = arg
		}
	}
	return inv, nil
}

// apply copies the command line overrides into cfg.
func (inv *invocation) apply(cfg *config.Config) {
	if inv.format != "" {
		cfg.Convert.Format = inv.format
	}
	if inv.version != 0 {
		cfg.Convert.Version = inv.version
	}
	if inv.logLevel != "" {
		cfg.Log.Level = inv.logLevel
	}
	if inv.streamingJSON {
		cfg.Decode.StreamingJSON = true
	}
	if inv.legacyBallVY {
		cfg.Decode.LegacyBallVY = true
	}
}

// parseIntArg extracts an integer from a flag like "--version=5"
func parseIntArg(arg, prefix string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, prefix))
	if err != nil {
		return 0, fmt.Errorf("bad %s value: %w", strings.TrimSuffix(prefix, "="), err)
	}
	return n, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `rcgtool - RoboCup game log tool

Usage:
  rcgtool dump [options] [file]             Print every event of a log
  rcgtool stats [options] [file]            Summarize a log
  rcgtool convert [options] [file]          Rewrite a log in another format
  rcgtool unpack [options] [file]           Rewrite a msgpack cache as a log
  rcgtool params [--player=FILE] FILE       Print server.conf/player.conf records
  rcgtool version                           Print version info

Options:
  --config=FILE       YAML configuration file
  --format=NAME       Output format: text, json, binary, msgpack (default: text)
  --version=N         Output version: 4-6 for text, 2-3 for binary (default: newest)
  --log-level=LEVEL   debug, info, warn, error (default: info)
  --streaming-json    Decode JSON logs record by record
  --legacy-ball-vy    Read the JSON ball vy from the "vx" key

Logs may be gzip compressed. If no file is given, reads from stdin.

Examples:
  rcgtool convert --format=json match.rcg.gz > match.json
  rcgtool convert --format=msgpack match.rcg > match.pack
  rcgtool unpack --format=text --version=5 match.pack > match.rcg
  rcgtool params --player=player.conf server.conf
`)
}
