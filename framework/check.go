package framework

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Checks are evaluated against the full text; only the recorded copy of the
// actual text is capped, to keep reports readable.
const checkDisplayLimit = 300

// CheckRecord is the outcome of one content check.
type CheckRecord struct {
	Label    string
	Expected string
	Negate   bool
	Actual   string
	Pass     bool
}

// CheckCounters accumulates pass/fail totals for a run. They live in the
// run's Results, never in package state, so concurrent or repeated runs
// cannot bleed into each other.
type CheckCounters struct {
	Passed int
	Failed int
}

// CheckSubstring records a check that actual contains expected. A failed
// check marks the test failed but does not stop it, so the remaining checks
// in the same test still run. Returns whether the check passed.
func (c *Context) CheckSubstring(label, actual, expected string) bool {
	return c.recordCheck(CheckRecord{
		Label:    label,
		Expected: expected,
		Actual:   truncateActual(actual),
		Pass:     strings.Contains(actual, expected),
	})
}

// CheckExcludes records a check that actual does not contain expected.
func (c *Context) CheckExcludes(label, actual, expected string) bool {
	return c.recordCheck(CheckRecord{
		Label:    label,
		Expected: expected,
		Negate:   true,
		Actual:   truncateActual(actual),
		Pass:     !strings.Contains(actual, expected),
	})
}

// FailCheck records a check that has already failed, for problems that are
// not substring mismatches (an unreadable file, invalid JSON). The detail
// text appears where a normal check would show the actual output.
func (c *Context) FailCheck(label, detail string) {
	c.recordCheck(CheckRecord{Label: label, Actual: truncateActual(detail)})
}

func (c *Context) recordCheck(record CheckRecord) bool {
	if record.Pass {
		c.env.results.Checks.Passed++
	} else {
		c.env.results.Checks.Failed++
		c.failed = true
		c.errors = append(c.errors, fmt.Errorf("check %q failed", record.Label))
	}
	c.env.testLogger.CheckDone(c.id, record)
	return record.Pass
}

func truncateActual(s string) string {
	if len(s) <= checkDisplayLimit {
		return s
	}
	cut := checkDisplayLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
