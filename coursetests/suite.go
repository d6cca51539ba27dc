package coursetests

import (
	"github.com/code679/course-builder/framework"
)

// RunTestSuite runs the full functional suite against the application at
// appURL. Tests run sequentially: the suite shares the application's student
// records, so each test signs in with its own email address.
func RunTestSuite(
	appURL string,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env:     &environment{appURL: appURL},
		}

		t.Run("registration", DoRegistrationTests)
		t.Run("profile", DoProfileTests)
		t.Run("permissions", DoPermissionTests)
	})
}
