package links

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestoca/envlinks/internal/envlinks"
)

func TestRenderHosts(t *testing.T) {
	data := TemplateData{
		PullRequest: PullRequest{
			Number: 123,
			Branch: "feature/Login-Page",
			URL:    "https://github.com/acme/web/pull/123",
		},
		Repository: "acme/web",
	}

	cases := []struct {
		name         string
		environments envlinks.Environments
		expected     envlinks.Environments
	}{
		{
			name:         "nil",
			environments: nil,
			expected:     nil,
		},
		{
			name: "plain hosts",
			environments: envlinks.Environments{
				{Name: "Staging", Host: "https://staging.example.com"},
				{Name: "Production", Host: "https://example.com"},
			},
			expected: envlinks.Environments{
				{Name: "Staging", Host: "https://staging.example.com"},
				{Name: "Production", Host: "https://example.com"},
			},
		},
		{
			name: "pull request number",
			environments: envlinks.Environments{
				{Name: "Preview", Host: "https://pr-{{ .PullRequest.Number }}.preview.example.com"},
				{Name: "Production", Host: "https://example.com"},
			},
			expected: envlinks.Environments{
				{Name: "Preview", Host: "https://pr-123.preview.example.com"},
				{Name: "Production", Host: "https://example.com"},
			},
		},
		{
			name: "sprig functions",
			environments: envlinks.Environments{
				{Name: "Branch", Host: `https://{{ .PullRequest.Branch | lower | replace "/" "-" }}.example.com`},
				{Name: "Repository", Host: `https://{{ base .Repository }}.example.com`},
			},
			expected: envlinks.Environments{
				{Name: "Branch", Host: "https://feature-login-page.example.com"},
				{Name: "Repository", Host: "https://web.example.com"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := RenderHosts(tc.environments, data)
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestRenderHostsErrors(t *testing.T) {
	cases := []struct {
		name  string
		host  string
		error string
	}{
		{
			name:  "unparsable template",
			host:  "https://{{ .PullRequest.Number .example.com",
			error: "rendering host of environment Broken: parsing host template",
		},
		{
			name:  "unknown field",
			host:  "https://{{ .Unknown }}.example.com",
			error: "rendering host of environment Broken: executing host template",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RenderHosts(envlinks.Environments{{Name: "Broken", Host: tc.host}}, TemplateData{})
			require.ErrorContains(t, err, tc.error)
		})
	}
}
