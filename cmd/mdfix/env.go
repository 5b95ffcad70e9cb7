package main

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal func(v any) bool // reports whether a stream is attached to a terminal
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: isTerminal,
	}
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// useColor decides whether reports written to w are coloured.
// NO_COLOR (https://no-color.org) and --no-color both disable colour.
func useColor(env *Environment, w io.Writer, noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return env.IsTerminal != nil && env.IsTerminal(w)
}
