package coursetests

import (
	"github.com/stretchr/testify/require"
)

func DoPermissionTests(t *T) {
	t.Run("logged out", func(t *T) {
		require.NoError(t, AssertLoggedOut(t.Browser()))
	})

	t.Run("enrolled student", func(t *T) {
		t.Login("perm-enrolled@example.com")
		require.NoError(t, Register(t.Browser(), "Gail"))
		require.NoError(t, AssertEnrolled(t.Browser()))
	})

	t.Run("unenrolled student", func(t *T) {
		t.Login("perm-unenrolled@example.com")
		require.NoError(t, Register(t.Browser(), "Hugh"))
		require.NoError(t, Unregister(t.Browser()))
		require.NoError(t, AssertUnenrolled(t.Browser()))
	})

	t.Run("signed in but never registered", func(t *T) {
		t.Login("perm-never-registered@example.com")
		require.NoError(t, AssertUnenrolled(t.Browser()))
	})

	t.Run("logging out drops access", func(t *T) {
		t.Login("perm-logout@example.com")
		require.NoError(t, Register(t.Browser(), "Iris"))
		t.Logout()
		require.NoError(t, AssertLoggedOut(t.Browser()))
	})
}
