// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of tests.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// 2. Tests record content checks (substring assertions, with optional negation) against
// output they obtained from the system under test. Checks are counted across the whole
// run, and a failed check marks its test as failed without stopping it.
//
// 3. Progress and outcomes are reported through a TestLogger; the console implementation
// is what interactive runs and CI logs see.
//
// The domain-specific code that knows what is being tested is responsible for obtaining
// the output to be checked, and for providing a domain-specific test API on top of the
// test context.
package framework
