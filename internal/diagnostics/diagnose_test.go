package diagnostics

import (
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/require"
)

func stripMessages(messages []Message) []Message {
	if messages == nil {
		return nil
	}
	stripped := make([]Message, len(messages))
	for i, msg := range messages {
		stripped[i] = Message{
			Level:   msg.Level,
			Text:    stripansi.Strip(msg.Text),
			Details: stripMessages(msg.Details),
		}
	}
	return stripped
}

func stripSection(section Section) Section {
	stripped := Section{
		Title:    stripansi.Strip(section.Title),
		Messages: stripMessages(section.Messages),
	}
	for _, sub := range section.Subsections {
		stripped.Subsections = append(stripped.Subsections, Subsection{
			Title:    stripansi.Strip(sub.Title),
			Messages: stripMessages(sub.Messages),
		})
	}
	return stripped
}

func TestReportString(t *testing.T) {
	cases := []struct {
		Name     string
		Report   Report
		Expected string
	}{
		{
			Name: "warnings",
			Report: Report{
				{
					Title:    "Executable",
					Messages: []Message{note(info, "Version: v1.0.0")},
				},
				{
					Title: "Config",
					Subsections: []Subsection{
						{
							Title: "Environments",
							Messages: []Message{
								{Level: warning, Text: "No environments configured", Details: []Message{note(hint, "Add some")}},
							},
						},
					},
				},
			},
			Expected: `✅ Executable
  ➡️ Version: v1.0.0

⚠️ Config
  Environments
    ⚠️ No environments configured
      👉 Add some

🚨 Diagnostics completed with 0 error(s) and 1 warning(s)`,
		},
		{
			Name: "failure in section messages and subsections",
			Report: Report{
				{
					Title:    "GitHub",
					Messages: []Message{note(failed, "gh not found")},
					Subsections: []Subsection{
						{Title: "Nested", Messages: []Message{note(warning, "careful")}},
					},
				},
			},
			Expected: `💔 GitHub
  💔 gh not found
  Nested
    ⚠️ careful

🚨 Diagnostics completed with 1 error(s) and 1 warning(s)`,
		},
		{
			Name: "all good",
			Report: Report{
				{
					Title:    "GitHub",
					Messages: []Message{note(success, "Pull requests can be accessed")},
				},
			},
			Expected: `✅ GitHub
  ✅ Pull requests can be accessed

🚀 All systems nominal. Houston, we're cleared for launch!`,
		},
		{
			Name:     "empty",
			Expected: "🚀 All systems nominal. Houston, we're cleared for launch!",
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Expected, stripansi.Strip(tc.Report.String()))
		})
	}
}

func TestStatsIgnoreDetails(t *testing.T) {
	section := Section{
		Messages: []Message{
			{Level: success, Text: "fine", Details: []Message{note(failed, "not counted")}},
			note(warning, "counted"),
		},
		Subsections: []Subsection{
			{Messages: []Message{note(failed, "counted"), note(hint, "ignored")}},
		},
	}
	require.Equal(t, Stats{Failed: 1, Warnings: 1}, section.Stats())
	require.Equal(t, Stats{Failed: 2, Warnings: 2}, Report{section, section}.Stats())
}
