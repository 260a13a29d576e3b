package structured

import (
	"regexp"
	"strings"
)

// fence matches the first Markdown code block, optionally tagged json. The
// opening fence must end its line and the closing fence must start one, so
// backticks quoted inside a JSON string are not taken for a block.
var fence = regexp.MustCompile("(?is)```(?:json)?[ \t]*\\r?\\n(.*?)\\r?\\n[ \t]*```")

// ExtractJSON returns the JSON candidate in a completion: the inner contents
// of the first fenced block if there is one, else the whole text, trimmed.
func ExtractJSON(text string) string {
	if m := fence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}
