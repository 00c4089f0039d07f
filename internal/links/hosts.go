package links

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/nestoca/envlinks/internal/envlinks"
)

// PullRequest holds the pull request details available to host templates.
type PullRequest struct {
	Number int
	Branch string
	URL    string
}

// TemplateData is the data host templates are rendered with, ie:
//
//	https://pr-{{ .PullRequest.Number }}.staging.example.com
type TemplateData struct {
	PullRequest PullRequest
	Repository  string
}

// RenderHosts renders the host template of each environment, preserving their order.
func RenderHosts(environments envlinks.Environments, data TemplateData) (envlinks.Environments, error) {
	if environments == nil {
		return nil, nil
	}

	rendered := make(envlinks.Environments, len(environments))
	for i, env := range environments {
		host, err := renderHost(env.Host, data)
		if err != nil {
			return nil, fmt.Errorf("rendering host of environment %s: %w", env.Name, err)
		}
		rendered[i] = envlinks.Environment{Name: env.Name, Host: host}
	}
	return rendered, nil
}

func renderHost(hostTemplate string, data TemplateData) (string, error) {
	if !strings.Contains(hostTemplate, "{{") {
		return hostTemplate, nil
	}

	tmpl, err := template.New("host").Funcs(sprig.FuncMap()).Option("missingkey=error").Parse(hostTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing host template %q: %w", hostTemplate, err)
	}

	var host strings.Builder
	if err := tmpl.Execute(&host, data); err != nil {
		return "", fmt.Errorf("executing host template %q: %w", hostTemplate, err)
	}
	return host.String(), nil
}
