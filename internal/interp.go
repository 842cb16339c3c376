package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Status is the outcome of running a piece of source, valued as the
// process exit code the CLI uses for it
type Status int

const (
	StatusOK           Status = 0
	StatusStaticError  Status = 65
	StatusRuntimeError Status = 70
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStaticError:
		return "static error"
	case StatusRuntimeError:
		return "runtime error"
	}
	return "unknown"
}

// Session runs source against one set of globals. Every Run gets its own
// diagnostics, so an error on one run does not affect the next.
type Session struct {
	exec    *exec
	printer IPrinter
	log     *logrus.Entry
}

// NewSession creates a session printing program output and errors through p
func NewSession(cfg Config, p IPrinter, logger *logrus.Logger) *Session {
	maxDepth := cfg.MaxCallDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxCallDepth
	}
	log := logger.WithField("component", "session")
	return &Session{
		exec:    newExec(p, logger.WithField("component", "exec"), maxDepth),
		printer: p,
		log:     log,
	}
}

// Run lexes, parses, resolves and evaluates source. Static errors stop
// before anything is evaluated.
func (s *Session) Run(source string) Status {
	state, ok := s.analyze(source)
	if !ok {
		state.PrintErrors()
		s.log.WithField("errors", len(state.errors)).Debug("static errors, not running")
		return StatusStaticError
	}

	if err := s.exec.interpret(state.stmts); err != nil {
		state.PrintErrors()
		return StatusRuntimeError
	}
	s.log.Debug("run finished")
	return StatusOK
}

// analyze runs every pass that happens before evaluation
func (s *Session) analyze(source string) (*interpreterState, bool) {
	state := newInterpreterState(source, s.printer)
	s.exec.state = state

	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	s.log.WithFields(logrus.Fields{
		"bytes":  len(source),
		"tokens": len(state.tokens),
	}).Debug("scanned")

	parser := &parser{
		state: state,
	}
	parser.parse()
	s.log.WithField("stmts", len(state.stmts)).Debug("parsed")

	if !state.Valid() {
		return state, false
	}

	before := len(s.exec.locals)
	s.exec.resolveProgram(state.stmts)
	s.log.WithField("locals", len(s.exec.locals)-before).Debug("resolved")

	return state, state.Valid()
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) Status {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewSession(DefaultConfig(), p, logger).Run(source)
}
