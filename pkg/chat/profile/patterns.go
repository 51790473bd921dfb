package profile

import "regexp"

// namePattern pairs a compiled introduction pattern with the index of the
// capture group holding the name.
type namePattern struct {
	re    *regexp.Regexp
	group int
}

// nameChars is the set allowed inside a captured name: extended Latin
// letters, apostrophe, hyphen, space.
const nameChars = `[a-zA-Z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}' -]`

// namePatterns are evaluated in priority order; the first match wins.
var namePatterns = []namePattern{
	{regexp.MustCompile(`(?i)\bmy name is\s+(` + nameChars + `{2,})`), 1},
	{regexp.MustCompile(`(?i)\bi am\s+(` + nameChars + `{2,})`), 1},
	{regexp.MustCompile(`(?i)\bi'm\s+(` + nameChars + `{2,})`), 1},
	{regexp.MustCompile(`(?i)\bim\s+(` + nameChars + `{2,})`), 1},
}
