package text

import (
	"strings"

	"github.com/TwiN/go-color"
	"github.com/pmezard/go-difflib/difflib"
)

type File struct {
	Name    string
	Content string
}

// Diff returns the unified diff turning before into after, with each line indented for display.
func Diff(before, after File, context int) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        indentLines(difflib.SplitLines(before.Content), "  "),
		B:        indentLines(difflib.SplitLines(after.Content), "  "),
		FromFile: before.Name,
		ToFile:   after.Name,
		Context:  context,
	})
	return diff
}

func DiffColorized(before, after File, context int) string {
	return colorize(Diff(before, after, context))
}

func colorize(value string) string {
	lines := strings.Split(value, "\n")
	colorized := make([]string, len(lines))
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case '-':
			colorized[i] = color.InRed(line)
		case '+':
			colorized[i] = color.InGreen(line)
		case '@':
			colorized[i] = color.InCyan(line)
		default:
			colorized[i] = line
		}
	}

	return strings.Join(colorized, "\n")
}

func indentLines(lines []string, indent string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = indent + line
	}
	return result
}
