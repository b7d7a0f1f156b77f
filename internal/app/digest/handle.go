package digest

import (
	"net/url"
	"regexp"
	"strings"
)

// handlePattern is the X/Twitter username grammar.
var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`)

// ExtractHandle parses a profile URL and returns the bare handle, or "" when
// the URL does not identify one. It is total: malformed input degrades to ""
// and never errors, because a missing handle is a normal state while this is
// the only gate between free-text URLs and text posted publicly. Anything
// that is not a bare handle (other domains, reserved paths, junk in the
// first path segment) is rejected.
//
// The handle's original case is preserved.
func ExtractHandle(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	domain := strings.ToLower(parsed.Hostname())
	if !strings.HasSuffix(domain, "x.com") && !strings.HasSuffix(domain, "twitter.com") {
		return ""
	}

	candidate := firstPathSegment(parsed.EscapedPath())
	if candidate == "" {
		return ""
	}

	// "/i/..." is a reserved platform prefix, not a profile.
	if strings.EqualFold(candidate, "i") {
		return ""
	}

	if !handlePattern.MatchString(candidate) {
		return ""
	}

	return candidate
}

func firstPathSegment(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			return segment
		}
	}
	return ""
}
