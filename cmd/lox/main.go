package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"lox/internal"
)

const (
	exitUsage = 64
)

// stdPrinter writes program output to stdout and paints what goes to
// stderr, which is only ever diagnostics
type stdPrinter struct {
	color *color.Color
}

func newStdPrinter(enabled bool) stdPrinter {
	c := color.New()
	c.SetOutput(os.Stderr)
	if !enabled {
		c.Disable()
	}
	return stdPrinter{color: c}
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprint(w, s.color.Red(fmt.Sprintf(format, a...)))
	}
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, s.color.Red(fmt.Sprint(a...)))
	}
	return fmt.Fprintln(w, a...)
}

func main() {
	configPath := flag.String("config", os.Getenv("LOX_CONFIG"), "path to a YAML config file")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: lox [-config file] [script]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := internal.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	logger := internal.NewLogger(cfg, os.Stderr)

	printer := newStdPrinter(cfg.Color)
	session := internal.NewSession(cfg, printer, logger)

	switch flag.NArg() {
	case 0:
		os.Exit(runPrompt(cfg, session, printer))
	case 1:
		os.Exit(runFile(flag.Arg(0), session, logger))
	default:
		flag.Usage()
		os.Exit(exitUsage)
	}
}

func runFile(path string, session *internal.Session, logger *logrus.Logger) int {
	source, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(err).Error("cannot read script")
		return exitUsage
	}
	status := session.Run(string(source))
	logger.WithFields(logrus.Fields{
		"script": path,
		"status": status.String(),
	}).Debug("done")
	return int(status)
}
