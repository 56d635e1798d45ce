package main

import (
	"fmt"
	"io"
	"runtime/debug"
	"slices"
	"sync"
)

// crashReporter restores the terminal and releases resources before reporting a panic
// Cleanups run in reverse registration order, like defers
type crashReporter struct {
	out  io.Writer
	exit func(int)

	mu       sync.Mutex
	cleanups []func()
}

func newCrashReporter(out io.Writer, exit func(int)) *crashReporter {
	return &crashReporter{out: out, exit: exit}
}

func (c *crashReporter) onExit(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanups = append(c.cleanups, fn)
}

// report is safe to call from any goroutine; it does not return when exit terminates
func (c *crashReporter) report(r any) {
	c.mu.Lock()
	cleanups := slices.Clone(c.cleanups)
	c.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	fmt.Fprintf(c.out, "\n\x1b[31mATB-FIGHTER CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(c.out, "Stack Trace:\n%s\n", debug.Stack())
	c.exit(1)
}
