package dashboard

import (
	"regexp"
	"strings"
)

// subredditPattern is Reddit's naming rule: 3-21 letters, digits or
// underscores.
var subredditPattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,21}$`)

// Notice is a dismissible, non-fatal message shown next to the input.
type Notice struct {
	Text string
}

// NormalizeIdentifier trims whitespace and a leading "r/" or "/r/".
func NormalizeIdentifier(id string) string {
	id = strings.TrimSpace(id)
	lower := strings.ToLower(id)
	switch {
	case strings.HasPrefix(lower, "/r/"):
		id = id[3:]
	case strings.HasPrefix(lower, "r/"):
		id = id[2:]
	}
	return strings.TrimSpace(id)
}

// CheckIdentifier returns a notice when id does not look like a subreddit
// name. It never blocks submission.
func CheckIdentifier(id string) (Notice, bool) {
	switch {
	case id == "":
		return Notice{Text: "No subreddit entered; showing results anyway"}, true
	case !subredditPattern.MatchString(id):
		return Notice{Text: "r/" + id + " doesn't look like a subreddit name (3-21 letters, digits or _)"}, true
	}
	return Notice{}, false
}
