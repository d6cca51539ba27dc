// Package coursetests contains the functional tests for the Course Builder
// application, along with the domain-specific test API they are written
// against: page visitors for every application page, student actions such as
// registering and unenrolling, and the permission matrix describing which
// pages each kind of user may see.
package coursetests
