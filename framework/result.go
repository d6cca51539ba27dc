package framework

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Results is the cumulative outcome of a test suite run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of a single test.
type TestResult struct {
	TestID TestID
	Errors []error
}

// OK returns true if there were no failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID identifies a test by its path of nested subtest names.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a summary of a test run to standard output.
func PrintResults(results Results) {
	if results.OK() {
		color.Green("All %d tests passed", len(results.Tests))
		return
	}
	color.Red("%d tests failed out of %d:", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Printf("  %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
	}
}
