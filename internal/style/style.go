package style

import "github.com/TwiN/go-color"

const darkGrey = "\033[38;2;90;90;90m"

// SecondaryInfo is for text that should be less prominent than the main text
func SecondaryInfo(s any) string {
	return color.Colorize(darkGrey, s)
}

// Resource is for the name of entities such as environments, pull requests and repositories
func Resource(s any) string {
	return color.InBold(color.InYellow(s))
}

// OK is for outcomes that went as expected, such as an updated pull request description
func OK(s any) string {
	return color.InGreen(s)
}

// Warning is for text that is a warning or an error, such as an empty environments configuration
func Warning(s any) string {
	return color.InRed(s)
}

// Code is for code snippets, commands, flags, environment variables or any technical text that is not a resource name
func Code(s any) string {
	return color.InBold(color.InCyan(s))
}

// Link is for URLs
func Link(s any) string {
	return color.InUnderline(color.InBlue(s))
}

// DiagnosticHeader is for top-level diagnostic titles
func DiagnosticHeader(s any) string {
	return color.InBold(color.InWhite(s))
}

// DiagnosticGroup is for titles of groups nested within a diagnostic
func DiagnosticGroup(s any) string {
	return color.InBold(s)
}

// DiagnosticLabel is for labels of diagnostic values, such as a file path
func DiagnosticLabel(s any) string {
	return color.InBold(s)
}
