package envlinks

import (
	"fmt"
	"strings"
)

// Rewrite returns the replacement text for given match: a link to the default environment (the first one) followed
// by links to all other environments, the last one always being the Development environment pointing back at the
// matched localhost URL.
//
// With no environments at all, Development becomes the default and the alternates list is left empty.
func Rewrite(match Match, environments Environments) string {
	all := make(Environments, 0, len(environments)+1)
	all = append(all, environments...)
	all = append(all, Environment{Name: DevelopmentEnvironment, Host: match.Origin})

	defaultEnv, alternateEnvs := all[0], all[1:]
	path := match.Path()

	alternateLinks := make([]string, len(alternateEnvs))
	for i, env := range alternateEnvs {
		alternateLinks[i] = markdownLink(env.Name, env.Host+path)
	}
	openIn := fmt.Sprintf("(Open in %s)", strings.Join(alternateLinks, ", "))

	defaultLink := defaultEnv.Host + path
	if match.IsMarkdownLink() {
		label := fmt.Sprintf("%s (%s)", match.Label, defaultEnv.Name)
		return markdownLink(label, defaultLink) + " " + openIn
	}
	return defaultLink + " " + openIn
}

func markdownLink(label, url string) string {
	return fmt.Sprintf("[%s](%s)", label, url)
}
