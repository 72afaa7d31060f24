package engine

import (
	"errors"
	"testing"
)

// {"a":1,"b":{"a":2,"a":3},"c":[{"x":1}]}
func dupDoc() []Token {
	return []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"}, {Kind: KindNumber, Number: "1"},
		{Kind: KindKey, String: "b"}, {Kind: KindBeginObject},
		{Kind: KindKey, String: "a"}, {Kind: KindNumber, Number: "2"},
		{Kind: KindKey, String: "a"}, {Kind: KindNumber, Number: "3"},
		{Kind: KindEndObject},
		{Kind: KindKey, String: "c"}, {Kind: KindBeginArray},
		{Kind: KindBeginObject}, {Kind: KindKey, String: "x"}, {Kind: KindNumber, Number: "1"}, {Kind: KindEndObject},
		{Kind: KindEndArray},
		{Kind: KindEndObject},
	}
}

func drain(ts TokenSource) error {
	for {
		if _, err := ts.NextToken(); err != nil {
			return err
		}
	}
}

func TestEnforce_DuplicateWarn(t *testing.T) {
	var got []SimpleIssue
	ts := WrapWithEnforcement(&sliceSource{toks: dupDoc()}, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	if err := drain(ts); err == nil || errors.As(err, new(IssueError)) {
		t.Fatalf("warn mode should only end with EOF, got %v", err)
	}
	if len(got) != 1 || got[0].Code != CodeDuplicateKey || got[0].Path != "/b/a" {
		t.Fatalf("unexpected issues: %+v", got)
	}
}

func TestEnforce_DuplicateError(t *testing.T) {
	ts := WrapWithEnforcement(&sliceSource{toks: dupDoc()}, EnforceOptions{OnDuplicate: DupError})
	err := drain(ts)
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeDuplicateKey || ie.Path != "/b/a" {
		t.Fatalf("want duplicate_key at /b/a, got %v", err)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	ts := WrapWithEnforcement(&sliceSource{toks: dupDoc()}, EnforceOptions{MaxDepth: 2})
	err := drain(ts)
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeTooDeep || ie.Path != "/c/0" {
		t.Fatalf("want too_deep at /c/0, got %v", err)
	}
}

func TestEnforce_MaxBytes(t *testing.T) {
	// sliceSource reports the token index as its location
	ts := WrapWithEnforcement(&sliceSource{toks: dupDoc()}, EnforceOptions{MaxBytes: 4})
	err := drain(ts)
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeTruncated {
		t.Fatalf("want truncated, got %v", err)
	}
}

func TestEnforceOptions_Disabled(t *testing.T) {
	if !(EnforceOptions{}).Disabled() {
		t.Fatalf("zero options should be disabled")
	}
	if (EnforceOptions{MaxDepth: 1}).Disabled() {
		t.Fatalf("depth limit should enable enforcement")
	}
}

func TestJoinPointer_Escapes(t *testing.T) {
	if got := JoinPointer("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Fatalf("got %s", got)
	}
	if got := IndexPointer("/tracks", 3); got != "/tracks/3" {
		t.Fatalf("got %s", got)
	}
}
