package gojson

import (
	"errors"
	"io"
	"strings"
	"testing"

	eng "github.com/reoring/lavasearch/internal/engine"
)

func drain(src eng.TokenSource) ([]eng.Token, error) {
	var toks []eng.Token
	for {
		tok, err := src.NextToken()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

func TestNewBytes_Tokens(t *testing.T) {
	toks, err := drain(NewBytes([]byte(`{"a":"b","n":12,"l":[true,null]}`)))
	if err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindString,
		eng.KindKey, eng.KindNumber,
		eng.KindKey, eng.KindBeginArray, eng.KindBool, eng.KindNull, eng.KindEndArray,
		eng.KindEndObject,
	}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: want %s, got %s", i, k, toks[i].Kind)
		}
	}
	if toks[4].Number != "12" {
		t.Fatalf("number: %q", toks[4].Number)
	}
}

func TestNewBytes_RejectsBadSeparators(t *testing.T) {
	for _, in := range []string{
		`{"loadType" "T"}`,
		`{"tracks":[1 2]}`,
		`{"loadType":"T",}`,
		`[1,]`,
	} {
		t.Run(in, func(t *testing.T) {
			_, err := drain(NewBytes([]byte(in)))
			if err == io.EOF || err == nil {
				t.Fatalf("want syntax error, got %v", err)
			}
		})
	}
}

func TestNewReader_TruncatedAndTrailing(t *testing.T) {
	_, err := drain(NewReader(strings.NewReader(`{"a":[1,2`)))
	if err != io.EOF && !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("want end of input, got %v", err)
	}

	src := NewReader(strings.NewReader(`{"a":1} {"b":2}`))
	for i := 0; i < 4; i++ {
		if _, err := src.NextToken(); err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestNewReader_ReadError(t *testing.T) {
	_, err := NewReader(failingReader{}).NextToken()
	if err == nil || err.Error() != "boom" {
		t.Fatalf("want read error, got %v", err)
	}
}
