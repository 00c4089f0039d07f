package links

import (
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/require"

	"github.com/nestoca/envlinks/internal/envlinks"
)

func TestFormatEnvironmentsTable(t *testing.T) {
	environments := envlinks.Environments{
		{Name: "Staging", Host: "https://staging.example.com"},
		{Name: "Production", Host: "https://example.com"},
	}

	expected := `╭───┬─────────────┬─────────────────────────────┬───────────╮
│ # │ NAME        │ HOST                        │ LINK      │
├───┼─────────────┼─────────────────────────────┼───────────┤
│ 1 │ Staging     │ https://staging.example.com │ default   │
│ 2 │ Production  │ https://example.com         │ alternate │
│ 3 │ Development │ <matched localhost url>     │ alternate │
╰───┴─────────────┴─────────────────────────────┴───────────╯
`
	require.Equal(t, expected, stripansi.Strip(FormatEnvironmentsTable(environments)))
}

func TestFormatEnvironmentsTableWithoutEnvironments(t *testing.T) {
	expected := `╭───┬─────────────┬─────────────────────────┬─────────╮
│ # │ NAME        │ HOST                    │ LINK    │
├───┼─────────────┼─────────────────────────┼─────────┤
│ 1 │ Development │ <matched localhost url> │ default │
╰───┴─────────────┴─────────────────────────┴─────────╯
`
	require.Equal(t, expected, stripansi.Strip(FormatEnvironmentsTable(nil)))
}
