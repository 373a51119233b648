// Package shell implements the interactive hero browser: a
// line-oriented read-eval-print loop built on Bubbletea. Input is a
// bubbles textinput; evaluated output is printed above the prompt so
// the terminal keeps a scrollback like a classic console.
//
// Command evaluation is a pure function over the catalogue port, so the
// whole command surface is testable without a terminal.
package shell
