package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"lox/internal"
)

const banner = "Lox interactive prompt. Ctrl-D to exit."

// runPrompt reads one line at a time and runs it in session, so globals
// survive from one line to the next and errors only cost the line
func runPrompt(cfg internal.Config, session *internal.Session, printer stdPrinter) int {
	fmt.Println(printer.color.Cyan(banner))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.REPL.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl-C drops the current line
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		ln.AppendHistory(line)
		session.Run(line)
	}

	if f, err := os.Create(cfg.REPL.HistoryFile); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}
