package links

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/nestoca/envlinks/internal/envlinks"
	"github.com/nestoca/envlinks/internal/style"
)

// FormatEnvironmentsTable renders environments in the order links are generated for them, including the
// Development environment which always comes last.
func FormatEnvironmentsTable(environments envlinks.Environments) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"#", "NAME", "HOST", "LINK"})

	for i, env := range environments {
		t.AppendRow(table.Row{i + 1, style.Resource(env.Name), env.Host, role(i)})
	}
	t.AppendRow(table.Row{
		len(environments) + 1,
		style.Resource(envlinks.DevelopmentEnvironment),
		style.SecondaryInfo("<matched localhost url>"),
		role(len(environments)),
	})

	return t.Render() + "\n"
}

func role(index int) string {
	if index == 0 {
		return "default"
	}
	return "alternate"
}
