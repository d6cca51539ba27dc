// Command course-builder-tests runs the Course Builder functional test suite
// against a running instance of the application (-url), or against a built-in
// stub application seeded from the CSV fixtures (-selftest).
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/code679/course-builder/browser"
	"github.com/code679/course-builder/coursetests"
	"github.com/code679/course-builder/framework"
)

const defaultDataDir = "fixtures/data"
const serviceStartupTimeout = time.Second * 10

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	appURL := params.appURL
	if params.selfTest {
		url, stop, err := startSelfTestApp(params.dataDir, params.debugAll)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Self-test setup error: %s\n", err)
			return 1
		}
		defer stop()
		appURL = url
	}

	if err := browser.WaitForService(appURL, serviceStartupTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %s\n", err)
		return 1
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running test suite")
	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := coursetests.RunTestSuite(appURL, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(results)
	if !results.OK() {
		fmt.Println()
		fmt.Println(rerunHint(params, results))
		return 1
	}
	return 0
}

// rerunHint builds a command line that reruns only the tests that failed.
func rerunHint(params commandParams, results framework.Results) string {
	var b commandBuilder
	b.add(os.Args[0])
	if params.selfTest {
		b.add("-selftest")
	} else {
		b.add("-url", params.appURL)
	}
	for _, f := range results.Failures {
		b.add("-run", rerunPattern(f.TestID))
	}
	return "To rerun only the failed tests:\n  " + b.String()
}

// rerunPattern builds a regex that matches the failed test and each of its
// ancestor groups. Filters are applied at every subtest level, so a pattern
// matching only the full test ID would skip the enclosing group before the
// test itself could run.
func rerunPattern(id framework.TestID) string {
	if len(id.Path) == 0 {
		return "^$"
	}
	var sb strings.Builder
	sb.WriteString("^")
	for i, part := range id.Path {
		if i > 0 {
			sb.WriteString("(/")
		}
		sb.WriteString(regexp.QuoteMeta(part))
	}
	sb.WriteString(strings.Repeat(")?", len(id.Path)-1))
	sb.WriteString("$")
	return sb.String()
}
