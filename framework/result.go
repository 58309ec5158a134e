package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Checks   CheckCounters
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0 && r.Checks.Failed == 0
}

type TestID struct {
	Path []string
}

// Plus returns the id of a child test. The path is copied so sibling tests
// never share backing storage.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes the end-of-run report: a recap of any failed tests,
// then the check totals inside a banner. The exit status of the run should
// be derived from Results.OK, not from anything printed here.
func PrintResults(w io.Writer, results Results) {
	if len(results.Failures) > 0 {
		fmt.Fprintf(w, "FAILED TESTS (%d):\n", len(results.Failures))
		for _, failure := range results.Failures {
			fmt.Fprintf(w, "  * %s\n", failure.TestID)
			for _, err := range failure.Errors {
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintf(w, "      %s\n", line)
				}
			}
		}
		fmt.Fprintln(w)
	}

	passed := fmt.Sprintf("%d passed", results.Checks.Passed)
	if results.Checks.Passed > 0 {
		passed = color.GreenString("%d passed", results.Checks.Passed)
	}
	failed := fmt.Sprintf("%d failed", results.Checks.Failed)
	if results.Checks.Failed > 0 {
		failed = color.RedString("%d failed", results.Checks.Failed)
	}
	fmt.Fprintln(w, strings.Repeat("=", consoleBannerWidth))
	fmt.Fprintf(w, "  Results: %s, %s\n", passed, failed)
	fmt.Fprintln(w, strings.Repeat("=", consoleBannerWidth))
}
