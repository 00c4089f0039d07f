// Package actions exposes the bits of the GitHub Actions runtime envlinks relies on when running as an action step.
package actions

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// IsRunning returns whether the process runs within a GitHub Actions workflow.
func IsRunning() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// Input returns the value of given action input, as exposed by the runner through INPUT_<NAME> variables.
func Input(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return strings.TrimSpace(os.Getenv(key))
}

// Fail reports err as a workflow error annotation.
func Fail(w io.Writer, err error) {
	fmt.Fprintf(w, "::error::%s\n", escapeData("Action failed with error: "+err.Error()))
}

func escapeData(value string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(value)
}

type Event struct {
	PullRequest *EventPullRequest `json:"pull_request"`
	Repository  *EventRepository  `json:"repository"`
}

type EventPullRequest struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
	Head    struct {
		Ref string `json:"ref"`
	} `json:"head"`
}

type EventRepository struct {
	FullName string `json:"full_name"`
}

// ReadEvent reads the payload of the event that triggered the workflow. It returns nil when not running within a
// workflow.
func ReadEvent() (*Event, error) {
	path := os.Getenv("GITHUB_EVENT_PATH")
	if path == "" {
		return nil, nil
	}
	return ReadEventFile(path)
}

func ReadEventFile(path string) (*Event, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event payload %s: %w", path, err)
	}
	var event Event
	if err := json.Unmarshal(content, &event); err != nil {
		return nil, fmt.Errorf("unmarshalling event payload %s: %w", path, err)
	}
	return &event, nil
}
