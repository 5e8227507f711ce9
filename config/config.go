// Package config loads bft run settings from CUE files.
package config

import (
	"errors"
	"time"

	"github.com/ezrec/bft/interp"
	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrValueNotFound = errors.New(f("value not found"))
	ErrConfigEof     = errors.New(f("eof must be \"keep\" or \"zero\""))
	ErrConfigTimeout = errors.New(f("timeout is not a duration"))
	ErrConfigCell    = errors.New(f("cell_bits must be 8 or 16"))
)

// Schema constrains configuration files.
const Schema = `
tape_size?:  int & >=0
expandable?: bool
cell_bits?:  8 | 16
eof?:        "keep" | "zero"
max_steps?:  int & >=0
timeout?:    string
`

// Config holds the interpreter and hosting settings.
type Config struct {
	TapeSize   int    `json:"tape_size"`  // Initial tape cells, 0 for the default.
	Expandable bool   `json:"expandable"` // Grow the tape on overflow.
	CellBits   int    `json:"cell_bits"`  // Cell width, 8 or 16.
	Eof        string `json:"eof"`        // End of input policy.
	MaxSteps   int    `json:"max_steps"`  // Step budget, 0 for unbounded.
	Timeout    string `json:"timeout"`    // Wall clock budget, empty for unbounded.
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Expandable: true,
		CellBits:   8,
		Eof:        "keep",
	}
}

// Load applies every setting present in paths over the defaults. Earlier
// paths take precedence.
func Load(paths ...string) (cfg Config, err error) {
	cfg = Default()
	if len(paths) == 0 {
		return
	}

	loader := NewLoader(paths, Schema)

	fields := []struct {
		path   string
		target any
	}{
		{"tape_size", &cfg.TapeSize},
		{"expandable", &cfg.Expandable},
		{"cell_bits", &cfg.CellBits},
		{"eof", &cfg.Eof},
		{"max_steps", &cfg.MaxSteps},
		{"timeout", &cfg.Timeout},
	}

	for _, field := range fields {
		err = loader.AssignFirst(field.path, field.target)
		if errors.Is(err, ErrValueNotFound) {
			err = nil
		}
		if err != nil {
			return
		}
	}

	err = cfg.Validate()
	return
}

// Validate checks the settings that the schema does not cover, such as
// those set from flags.
func (cfg Config) Validate() (err error) {
	if cfg.CellBits != 8 && cfg.CellBits != 16 {
		return ErrConfigCell
	}

	_, err = cfg.EofPolicy()
	if err != nil {
		return
	}

	_, err = cfg.Deadline()
	return
}

// EofPolicy returns the interpreter end of input policy.
func (cfg Config) EofPolicy() (ep interp.EofPolicy, err error) {
	ep, err = interp.ParseEofPolicy(cfg.Eof)
	if err != nil {
		err = errors.Join(ErrConfigEof, err)
	}
	return
}

// Deadline returns the wall clock budget, 0 if unbounded.
func (cfg Config) Deadline() (timeout time.Duration, err error) {
	if len(cfg.Timeout) == 0 {
		return
	}

	timeout, err = time.ParseDuration(cfg.Timeout)
	if err != nil {
		err = errors.Join(ErrConfigTimeout, err)
	}
	return
}
