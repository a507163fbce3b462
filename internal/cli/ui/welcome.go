package ui

import (
	"fmt"
	"io"
	"strings"

	"frtSuite/internal/report"
)

func PrintBanner(w io.Writer, baseURL, browserName string) {
	fmt.Fprintln(w, ColorBold+IconGlobe+" Free Range Testers suite"+ColorReset)
	fmt.Fprintln(w, ColorGray+"Target: "+baseURL+" · Browser: "+browserName+ColorReset)
	fmt.Fprintln(w)
}

// PrintSummary writes the totals of a run followed by every failed scenario.
func PrintSummary(w io.Writer, s report.Summary) {
	status := "passed"
	if s.ExitCode != 0 {
		status = "failed"
	}
	icon, color, text := FormatStatus(status)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s %s%s %d passed, %d failed %s%s %s%s\n",
		color, icon, strings.ToUpper(text), ColorReset,
		s.Passed, s.Failed,
		ColorGray, IconTime, FormatDuration(s.Elapsed), ColorReset)

	for _, f := range s.Failures {
		fmt.Fprintf(w, "  %s%s %s%s\n", ColorRed, IconCross, f.Scenario, ColorReset)
		if f.Err != nil {
			fmt.Fprintf(w, "    %s%s%s\n", ColorGray, firstLine(f.Err.Error()), ColorReset)
		}
		if f.Screenshot != "" {
			fmt.Fprintf(w, "    %s %s\n", IconCamera, f.Screenshot)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
