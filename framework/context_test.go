package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	started  []string
	errors   []string
	finished map[string]bool
	skipped  map[string]string
}

func newRecordingTestLogger() *recordingTestLogger {
	return &recordingTestLogger{
		finished: make(map[string]bool),
		skipped:  make(map[string]string),
	}
}

func (l *recordingTestLogger) TestStarted(id TestID) { l.started = append(l.started, id.String()) }
func (l *recordingTestLogger) TestError(id TestID, err error) {
	l.errors = append(l.errors, err.Error())
}
func (l *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	l.finished[id.String()] = failed
}
func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.skipped[id.String()] = reason
}

func TestRunnerRecordsFailures(t *testing.T) {
	logger := newRecordingTestLogger()
	results := Run(nil, logger, func(c *Context) {
		c.Run("passes", func(c *Context) {})
		c.Run("fails", func(c *Context) { c.Errorf("boom: %d", 42) })
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "fails", results.Failures[0].TestID.String())
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "boom: 42", results.Failures[0].Errors[0].Error())
	assert.False(t, logger.finished["passes"])
	assert.True(t, logger.finished["fails"])
}

func TestFailNowStopsTheTest(t *testing.T) {
	reached := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("stops early", func(c *Context) {
			c.Errorf("first error")
			c.FailNow()
			reached = true
		})
	})

	assert.False(t, reached)
	require.Len(t, results.Failures, 1)
	assert.Len(t, results.Failures[0].Errors, 1)
}

func TestFailNowWithoutMessageStillFails(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("silent failure", func(c *Context) { c.FailNow() })
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "no failure message")
}

func TestUnexpectedPanicIsReported(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) { panic("oh no") })
	})

	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic")
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "oh no")
}

func TestSkippedTestIsNotAFailure(t *testing.T) {
	logger := newRecordingTestLogger()
	results := Run(nil, logger, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not applicable here")
			c.Errorf("should not be reached")
		})
	})

	assert.True(t, results.OK())
	assert.Equal(t, "not applicable here", logger.skipped["skipped"])
}

func TestRegexFilterSelectsTests(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^keep"))

	var ran []string
	Run(filters.AsFilter, nil, func(c *Context) {
		for _, name := range []string{"keep this", "drop this", "keep that"} {
			c.Run(name, func(c *Context) { ran = append(ran, c.ID().String()) })
		}
	})

	assert.Equal(t, []string{"keep this", "keep that"}, ran)
}

func TestRegexFilterExcludesTests(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("slow"))

	var ran []string
	Run(filters.AsFilter, nil, func(c *Context) {
		c.Run("fast test", func(c *Context) { ran = append(ran, c.ID().String()) })
		c.Run("slow test", func(c *Context) { ran = append(ran, c.ID().String()) })
	})

	assert.Equal(t, []string{"fast test"}, ran)
}

func TestSubtestIDsAreHierarchical(t *testing.T) {
	var id string
	Run(nil, nil, func(c *Context) {
		c.Run("outer", func(c *Context) {
			c.Run("inner", func(c *Context) { id = c.ID().String() })
		})
	})
	assert.Equal(t, "outer/inner", id)
}
