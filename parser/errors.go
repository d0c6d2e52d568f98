package parser

import "fmt"

// ParseError reports a line that violates the svmlight grammar. The whole
// load is aborted when it occurs; no partial dataset is ever returned.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Name  string // file path or input name, may be empty
	Line  int    // 1-based physical line number
	Text  string // raw line content, without the terminator
	Token string // offending token, may be empty
	msg   string
	cause error
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if e.Name != "" {
		where = fmt.Sprintf("%s:%d", e.Name, e.Line)
	}
	if e.Token != "" {
		return fmt.Sprintf("svmlight: %s: %s %q in %q", where, e.msg, e.Token, e.Text)
	}
	return fmt.Sprintf("svmlight: %s: %s in %q", where, e.msg, e.Text)
}

func (e *ParseError) Unwrap() error { return e.cause }

func newParseError(name string, line int, text, token, msg string, cause error) *ParseError {
	return &ParseError{
		Name:  name,
		Line:  line,
		Text:  text,
		Token: token,
		msg:   msg,
		cause: cause,
	}
}
