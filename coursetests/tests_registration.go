package coursetests

import (
	"github.com/stretchr/testify/require"
)

func DoRegistrationTests(t *T) {
	t.Run("new student can register", func(t *T) {
		t.Login("register-new@example.com")
		require.NoError(t, Register(t.Browser(), "Alice"))
	})

	t.Run("registration form is gone after registering", func(t *T) {
		t.Login("register-twice@example.com")
		require.NoError(t, Register(t.Browser(), "Bob"))
		_, err := ViewRegistration(t.Browser())
		require.Error(t, err, "an enrolled student should not see the registration form")
	})

	t.Run("registering again after unenrolling", func(t *T) {
		t.Login("register-again@example.com")
		require.NoError(t, Register(t.Browser(), "Carol"))
		require.NoError(t, Unregister(t.Browser()))
		require.NoError(t, Register(t.Browser(), "Carol"))
	})
}
