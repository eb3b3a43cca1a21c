package preview

import (
	"net/url"
	"strings"
)

// ParseDrop interprets text a terminal pastes when a file is dropped onto
// it. Terminals differ: some quote the path, some escape spaces with
// backslashes, some send a file:// URL. Only the first line is used.
func ParseDrop(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			s = s[1 : len(s)-1]
		}
	}

	if strings.HasPrefix(s, "file://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", false
		}
		s = u.Path
	}

	s = strings.ReplaceAll(s, `\ `, " ")
	if s == "" {
		return "", false
	}
	return s, true
}
