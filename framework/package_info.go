// Package framework contains the low-level test harness infrastructure that is
// not specific to Course Builder: a small test runner modeled on Go's testing
// package, but usable outside of "go test".
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a hierarchical test
// identifier and to accumulate success/failure results.
//
// 2. Tests can be selected or excluded by regex filters supplied on the
// command line.
//
// 3. Debug output produced during a test is captured per test, so that the
// console reporter can show it only for failed tests.
//
// The domain-specific code that knows what is being tested (the coursetests
// package) provides its own test API on top of the test context.
package framework
