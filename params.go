package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/code679/course-builder/framework"
)

type commandParams struct {
	appURL   string
	dataDir  string
	selfTest bool
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.appURL, "url", "", "base URL of the application under test")
	fs.BoolVar(&c.selfTest, "selftest", false, "run against a built-in stub application instead of -url")
	fs.StringVar(&c.dataDir, "data", defaultDataDir, "directory containing the unit.csv and lesson.csv fixtures")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.appURL == "" && !c.selfTest {
		fmt.Fprintln(os.Stderr, "either -url or -selftest is required")
		fs.Usage()
		return false
	}
	if c.appURL != "" && c.selfTest {
		fmt.Fprintln(os.Stderr, "-url and -selftest are mutually exclusive")
		fs.Usage()
		return false
	}
	return true
}

// commandBuilder assembles a shell command line for the rerun hint printed
// after a failed run.
type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
