// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	slogmulti "github.com/samber/slog-multi"

	"github.com/ezrec/bft/config"
	"github.com/ezrec/bft/interp"
	bftio "github.com/ezrec/bft/io"
	"github.com/ezrec/bft/program"
	"github.com/ezrec/bft/runner"
	"github.com/ezrec/bft/script"
	"github.com/ezrec/bft/tape"
)

// options are the command line settings.
type options struct {
	configFile string
	input      string
	output     string
	script     string
	trace      string
	verbose    bool

	tapeSize   int
	expandable bool
	cellBits   int
	eof        string
	maxSteps   int
	timeout    string
}

func main() {
	var opts options

	flag.StringVar(&opts.configFile, "c", "", ".cue configuration file")
	flag.StringVar(&opts.input, "i", "-", "Program input")
	flag.StringVar(&opts.output, "o", "-", "Program output")
	flag.StringVar(&opts.script, "script", "", ".star script to run instead of a program")
	flag.StringVar(&opts.trace, "trace", "", "Copy log records to this file, as JSON")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose mode")
	flag.IntVar(&opts.tapeSize, "t", 0, "Tape size in cells (0 for 30000)")
	flag.BoolVar(&opts.expandable, "x", true, "Grow the tape on overflow")
	flag.IntVar(&opts.cellBits, "cell", 8, "Cell width in bits (8 or 16)")
	flag.StringVar(&opts.eof, "eof", "keep", "End of input policy (keep or zero)")
	flag.IntVar(&opts.maxSteps, "steps", 0, "Step limit (0 for none)")
	flag.StringVar(&opts.timeout, "timeout", "", "Run time limit, as a duration")

	flag.Parse()

	closeLog, err := setupLogging(opts.trace, opts.verbose)
	if err != nil {
		log.Fatalf("%v: %v", opts.trace, err)
	}
	defer closeLog()

	err = run(opts, flag.Args())
	if err != nil {
		slog.Error("bft", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging routes slog, and the log package, to stderr and an
// optional JSON trace file.
func setupLogging(trace string, verbose bool) (closer func(), err error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	closer = func() {}
	if len(trace) != 0 {
		var ouf *os.File
		ouf, err = os.Create(trace)
		if err != nil {
			return
		}
		handlers = append(handlers, slog.NewJSONHandler(ouf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = func() { ouf.Close() }
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return
}

// settings merges the configuration file with the flags set explicitly.
func settings(opts options) (cfg config.Config, err error) {
	if len(opts.configFile) != 0 {
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.configFile, err)
			return
		}
	} else {
		cfg = config.Default()
	}

	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "t":
			cfg.TapeSize = opts.tapeSize
		case "x":
			cfg.Expandable = opts.expandable
		case "cell":
			cfg.CellBits = opts.cellBits
		case "eof":
			cfg.Eof = opts.eof
		case "steps":
			cfg.MaxSteps = opts.maxSteps
		case "timeout":
			cfg.Timeout = opts.timeout
		}
	})

	err = cfg.Validate()
	return
}

func run(opts options, args []string) (err error) {
	if len(opts.script) != 0 {
		if len(args) != 0 {
			return fmt.Errorf("unknown arguments: %v", args)
		}
		_, err = script.Exec(opts.script, nil, os.Stdout)
		return
	}

	if len(args) != 1 {
		return errors.New("usage: bft [flags] program.bf")
	}

	cfg, err := settings(opts)
	if err != nil {
		return
	}

	prog, err := program.Load(args[0])
	if err != nil {
		return
	}

	ch := &bftio.Stream{}

	if opts.input == "-" {
		ch.Input = bufio.NewReader(os.Stdin)
	} else {
		var inf *os.File
		inf, err = os.Open(opts.input)
		if err != nil {
			return
		}
		defer inf.Close()
		ch.Input = bufio.NewReader(inf)
	}

	var ouf *os.File
	if opts.output == "-" {
		ouf = os.Stdout
	} else {
		ouf, err = os.Create(opts.output)
		if err != nil {
			return
		}
		defer ouf.Close()
	}
	ch.Output = bufio.NewWriter(ouf)
	defer func() {
		ferr := ch.Flush()
		if err == nil {
			err = ferr
		}
	}()

	eof, _ := cfg.EofPolicy()
	timeout, _ := cfg.Deadline()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rn := runner.Runner{MaxSteps: cfg.MaxSteps, Timeout: timeout}

	slog.Debug("bft: run",
		"program", prog.Name,
		"instructions", prog.Len(),
		"tape_size", cfg.TapeSize,
		"expandable", cfg.Expandable,
		"cell_bits", cfg.CellBits,
		"eof", eof.String(),
	)

	start := time.Now()
	var steps int
	switch cfg.CellBits {
	case 16:
		it := interp.New[tape.Word](cfg.TapeSize, cfg.Expandable)
		it.Eof = eof
		it.Verbose = opts.verbose
		steps, err = rn.Run(ctx, it, prog, ch)
		if err != nil {
			slog.Debug("bft: state", "interp", it.String())
		}
	default:
		it := interp.New[tape.Byte](cfg.TapeSize, cfg.Expandable)
		it.Eof = eof
		it.Verbose = opts.verbose
		steps, err = rn.Run(ctx, it, prog, ch)
		if err != nil {
			slog.Debug("bft: state", "interp", it.String())
		}
	}

	slog.Debug("bft: done", "steps", steps, "elapsed", time.Since(start))

	return
}
