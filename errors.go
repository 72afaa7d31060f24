package lavasearch

import (
	"errors"
	"fmt"
	"io"

	eng "github.com/reoring/lavasearch/internal/engine"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnexpectedToken = "unexpected_token"
	CodeTruncated       = "truncated"
	CodeParseError      = "parse_error"
	CodeTooDeep         = "too_deep"
	CodeUnknownKey      = "unknown_key"
	CodeInvalidType     = "invalid_type"
	CodeInvalidEnum     = "invalid_enum"
	CodeOverflow        = "overflow"
	CodeDuplicateKey    = "duplicate_key"
)

// ErrorKind separates nesting violations from schema violations.
type ErrorKind int

const (
	// StructuralError means the token stream itself is malformed or ends early.
	StructuralError ErrorKind = iota + 1
	// SchemaError means the tokens are well nested but do not fit the payload schema.
	SchemaError
)

func (k ErrorKind) String() string {
	switch k {
	case StructuralError:
		return "structural"
	case SchemaError:
		return "schema"
	}
	return "unknown"
}

// Sentinels for errors.Is classification of *DecodeError values.
var (
	ErrStructural = errors.New("lavasearch: structural error")
	ErrSchema     = errors.New("lavasearch: schema error")
)

// DecodeError is returned by every decode entry point. No partial result
// accompanies it.
type DecodeError struct {
	Kind    ErrorKind
	Code    string // One of the codes listed above.
	Path    string // JSON Pointer (for example: /tracks/2/info/length).
	Message string
	Offset  int64 // Byte offset in the input source (-1 when unknown).
	Cause   error // Optional: underlying reader error.
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s error: %s at %s: %s", e.Kind, e.Code, path, e.Message)
}

// Is matches ErrStructural or ErrSchema according to Kind.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrStructural:
		return e.Kind == StructuralError
	case ErrSchema:
		return e.Kind == SchemaError
	}
	return false
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// AsDecodeError extracts a *DecodeError from an error using errors.As internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Issue represents a non-fatal finding reported through Options.OnIssue.
type Issue struct {
	Path    string
	Code    string
	Message string
	Offset  int64
}

func (i Issue) String() string { return fmt.Sprintf("%s at %s: %s", i.Code, i.Path, i.Message) }

func structuralf(path, code string, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: StructuralError, Code: code, Path: path, Message: fmt.Sprintf(format, args...), Offset: -1}
}

func schemaf(path, code string, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: SchemaError, Code: code, Path: path, Message: fmt.Sprintf(format, args...), Offset: -1}
}

// fromReaderError maps token reader and enforcement failures.
func fromReaderError(path string, err error) *DecodeError {
	if de, ok := AsDecodeError(err); ok {
		return de
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		kind := StructuralError
		if ie.Code == eng.CodeDuplicateKey {
			kind = SchemaError
		}
		return &DecodeError{Kind: kind, Code: ie.Code, Path: ie.Path, Message: ie.Message, Offset: -1, Cause: err}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &DecodeError{Kind: StructuralError, Code: CodeTruncated, Path: path, Message: "unexpected end of input", Offset: -1, Cause: err}
	}
	if errors.Is(err, eng.ErrUnexpectedToken) {
		return &DecodeError{Kind: StructuralError, Code: CodeUnexpectedToken, Path: path, Message: err.Error(), Offset: -1, Cause: err}
	}
	return &DecodeError{Kind: StructuralError, Code: CodeParseError, Path: path, Message: err.Error(), Offset: -1, Cause: err}
}
