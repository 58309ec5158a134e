package framework

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

const consoleBannerWidth = 58

var (
	consolePassTag = color.New(color.FgGreen).SprintFunc()
	consoleFailTag = color.New(color.FgRed).SprintFunc()
)

// ConsoleTestLogger prints progress and check outcomes to stdout as the
// suite runs. Top-level tests get a banner, so the output reads as a small
// number of scenario groups rather than one flat list.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c ConsoleTestLogger) TestStarted(id TestID) {
	if len(id.Path) == 1 {
		fmt.Println()
		fmt.Println(strings.Repeat("=", consoleBannerWidth))
		fmt.Printf("  [%s]\n", id)
		fmt.Println(strings.Repeat("=", consoleBannerWidth))
		return
	}
	fmt.Println()
	fmt.Printf("[%s]\n", id)
}

func (c ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c ConsoleTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	if failed {
		fmt.Printf("  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		fmt.Printf("  SKIPPED: %s\n", id)
	} else {
		fmt.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}

func (c ConsoleTestLogger) CheckDone(id TestID, check CheckRecord) {
	if check.Pass {
		fmt.Printf("  [%s] %s\n", consolePassTag("PASS"), check.Label)
		return
	}
	fmt.Printf("  [%s] %s\n", consoleFailTag("FAIL"), check.Label)
	if check.Expected != "" || check.Negate {
		suffix := ""
		if check.Negate {
			suffix = " NOT"
		}
		fmt.Printf("         expected%s : %q\n", suffix, check.Expected)
	}
	fmt.Printf("         got       : %q\n", check.Actual)
}
