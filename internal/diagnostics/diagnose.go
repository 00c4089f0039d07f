package diagnostics

import (
	"context"
	"fmt"
	"strings"

	"github.com/nestoca/envlinks/internal/config"
	"github.com/nestoca/envlinks/internal/style"
)

// Evaluate diagnoses the envlinks installation and configuration. Authenticate checks that pull requests can be
// accessed and is skipped when nil.
func Evaluate(ctx context.Context, cliVersion string, cfg *config.Config, authenticate func(context.Context) error) Report {
	return Report{
		diagnoseExecutable(cfg, cliVersion, ExecutableOptions{}),
		diagnoseConfig(cfg, ConfigOpts{}),
		diagnoseGitHub(ctx, authenticate, GitHubOpts{}),
	}
}

type Level string

const (
	success Level = "success"
	warning Level = "warning"
	failed  Level = "failed"
	hint    Level = "hint"
	info    Level = "info"
)

var levelEmojis = map[Level]string{
	success: "✅",
	warning: "⚠️",
	failed:  "💔",
	hint:    "👉",
	info:    "➡️",
}

type Message struct {
	Level   Level
	Text    string
	Details []Message
}

func note(level Level, text string) Message {
	return Message{Level: level, Text: text}
}

// Subsection groups the messages of a single aspect of a section, such as the config file.
type Subsection struct {
	Title    string
	Messages []Message
}

func (sub *Subsection) add(level Level, text string, details ...Message) {
	sub.Messages = append(sub.Messages, Message{Level: level, Text: text, Details: details})
}

// Section holds the outcome of diagnosing one area of envlinks. Its status reflects all of its messages,
// subsections included.
type Section struct {
	Title       string
	Messages    []Message
	Subsections []Subsection
}

func (section *Section) add(level Level, text string, details ...Message) {
	section.Messages = append(section.Messages, Message{Level: level, Text: text, Details: details})
}

type Stats struct {
	Failed   int
	Warnings int
}

// count tallies top-level messages only, details never change the outcome.
func (stats *Stats) count(messages []Message) {
	for _, msg := range messages {
		switch msg.Level {
		case failed:
			stats.Failed++
		case warning:
			stats.Warnings++
		}
	}
}

func (section Section) Stats() (stats Stats) {
	stats.count(section.Messages)
	for _, sub := range section.Subsections {
		stats.count(sub.Messages)
	}
	return
}

func (section Section) status() string {
	switch stats := section.Stats(); {
	case stats.Failed > 0:
		return levelEmojis[failed]
	case stats.Warnings > 0:
		return levelEmojis[warning]
	default:
		return levelEmojis[success]
	}
}

// Report is the outcome of all diagnostics, in display order.
type Report []Section

func (report Report) Stats() (stats Stats) {
	for _, section := range report {
		sectionStats := section.Stats()
		stats.Failed += sectionStats.Failed
		stats.Warnings += sectionStats.Warnings
	}
	return
}

// String renders every section followed by a summary of errors and warnings.
func (report Report) String() string {
	var builder strings.Builder
	for _, section := range report {
		fmt.Fprintf(&builder, "%s %s\n", section.status(), style.DiagnosticHeader(section.Title))
		writeMessages(&builder, section.Messages, 1)
		for _, sub := range section.Subsections {
			fmt.Fprintf(&builder, "%s%s\n", indentation(1), style.DiagnosticGroup(sub.Title))
			writeMessages(&builder, sub.Messages, 2)
		}
		builder.WriteByte('\n')
	}

	if stats := report.Stats(); stats.Failed+stats.Warnings > 0 {
		fmt.Fprintf(&builder, "🚨 Diagnostics completed with %d error(s) and %d warning(s)", stats.Failed, stats.Warnings)
	} else {
		builder.WriteString("🚀 All systems nominal. Houston, we're cleared for launch!")
	}
	return builder.String()
}

func writeMessages(builder *strings.Builder, messages []Message, depth int) {
	for _, msg := range messages {
		emoji, ok := levelEmojis[msg.Level]
		if !ok {
			emoji = levelEmojis[info]
		}
		fmt.Fprintf(builder, "%s%s %s\n", indentation(depth), emoji, msg.Text)
		writeMessages(builder, msg.Details, depth+1)
	}
}

func indentation(depth int) string {
	return strings.Repeat("  ", depth)
}

func label(label string, value any) string {
	return fmt.Sprintf("%s %v", style.DiagnosticLabel(label+":"), value)
}
