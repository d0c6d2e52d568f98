package parser

import "strings"

// tokens is the purely syntactic decomposition of one input line. Semantic
// validation (numeric conversion) happens in record.go.
type tokens struct {
	label      string
	fields     []string // whitespace-separated tokens after the label
	comment    string   // everything after the first '#', verbatim
	hasComment bool
}

// tokenize splits one line (already stripped of its terminator) into a
// label token, the remaining feature-like tokens and an optional comment.
// It returns ok=false for lines that produce no row: blank lines and lines
// whose only content is a comment.
func tokenize(line string) (tokens, bool) {
	var t tokens

	body := line
	if i := strings.IndexByte(line, '#'); i >= 0 {
		t.comment = line[i+1:]
		t.hasComment = true
		body = line[:i]
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return tokens{}, false
	}

	t.label = fields[0]
	t.fields = fields[1:]
	return t, true
}
