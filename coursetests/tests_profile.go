package coursetests

import (
	"github.com/stretchr/testify/require"
)

func DoProfileTests(t *T) {
	t.Run("change name", func(t *T) {
		t.Login("profile-rename@example.com")
		require.NoError(t, Register(t.Browser(), "Dana"))
		require.NoError(t, ChangeName(t.Browser(), "Danielle"))
	})

	t.Run("assessments are served for enrolled students", func(t *T) {
		t.Login("profile-assessments@example.com")
		require.NoError(t, Register(t.Browser(), "Evan"))
		resp, err := ViewAssessments(t.Browser())
		require.NoError(t, err)
		require.NotNil(t, resp)
	})

	t.Run("course links through to unit pages", func(t *T) {
		t.Login("profile-navigate@example.com")
		require.NoError(t, Register(t.Browser(), "Fay"))
		resp, err := ViewCourse(t.Browser())
		require.NoError(t, err)
		resp, err = t.Browser().Click(resp, "Unit 1 - Introduction")
		require.NoError(t, err)
		require.NoError(t, AssertContains("Unit 1 - Introduction", resp.Body))
	})
}
