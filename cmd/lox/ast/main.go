package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"lox/internal"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

// ast prints the resolved tree of a script
func main() {
	configPath := flag.String("config", os.Getenv("LOX_CONFIG"), "path to a YAML config file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: ast [-config file] /path/to/script.lox")
		os.Exit(64)
	}

	cfg, err := internal.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	logger := internal.NewLogger(cfg, os.Stderr)

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Fatal(err)
	}

	tree, status := internal.NewSession(cfg, stdPrinter{}, logger).Tree(string(source))
	if status != internal.StatusOK {
		os.Exit(int(status))
	}
	fmt.Print(tree)
}
