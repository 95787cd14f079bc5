package github

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

// Unknown is substituted for any projected field that is absent or not a string.
const Unknown = "unknown"

const maxDetailBody = 120

// Event is the projection of one GitHub event the CLI renders.
type Event struct {
	Type     string
	RepoName string
	RepoURL  string
}

// Decode parses body as a JSON array and projects each element in order.
// Only a syntax error or a non-array top level fails; missing fields degrade
// to Unknown.
func Decode(body string) ([]Event, error) {
	if !gjson.Valid(body) {
		return nil, jsonParseError("invalid JSON body: %s", abbreviate(body))
	}
	root := gjson.Parse(body)
	if !root.IsArray() {
		return nil, jsonParseError("expected an array of JSON objects")
	}

	events := make([]Event, 0, len(root.Array()))
	root.ForEach(func(_, value gjson.Result) bool {
		events = append(events, Event{
			Type:     lookupString(value, "type"),
			RepoName: lookupString(value, "repo", "name"),
			RepoURL:  lookupString(value, "repo", "url"),
		})
		return true
	})
	return events, nil
}

// lookupString walks path one key at a time. Any missing or non-object step
// short-circuits; the placeholder is applied only to the final projection.
func lookupString(value gjson.Result, path ...string) string {
	current := value
	for _, key := range path {
		if !current.IsObject() {
			return Unknown
		}
		current = current.Get(key)
		if !current.Exists() {
			return Unknown
		}
	}
	if current.Type != gjson.String {
		return Unknown
	}
	return current.String()
}

// Format renders one event as its three-line text block.
func (e Event) Format() string {
	return fmt.Sprintf("- %s\n on %s\n url %s", e.Type, e.RepoName, e.RepoURL)
}

// Print writes one block per event, in order.
func Print(w io.Writer, events []Event) error {
	for _, evt := range events {
		if _, err := fmt.Fprintln(w, evt.Format()); err != nil {
			return err
		}
	}
	return nil
}

func abbreviate(body string) string {
	body = strings.TrimSpace(body)
	if len(body) <= maxDetailBody {
		return body
	}
	return body[:maxDetailBody] + "..."
}
