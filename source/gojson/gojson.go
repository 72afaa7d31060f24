// Package gojson implements an engine.TokenSource on top of goccy/go-json.
package gojson

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/lavasearch/internal/engine"
	stdsrc "github.com/reoring/lavasearch/source/json"
)

type source struct {
	dec   *j.Decoder
	shape eng.Shape
}

// NewReader reads r to the end and tokenizes it like NewBytes.
// go-json's Decoder.Token does not check separators, so the whole document
// has to be validated before tokens are handed out.
func NewReader(r io.Reader) eng.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return &failedSource{err: err}
	}
	return NewBytes(b)
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
// Documents that fail j.Valid (including ones followed by trailing input) are
// tokenized with encoding/json instead, which reports the syntax error at the
// position it occurs.
func NewBytes(b []byte) eng.TokenSource {
	if !j.Valid(b) {
		return stdsrc.NewBytes(b)
	}
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return &source{dec: dec}
}

type failedSource struct{ err error }

func (s *failedSource) NextToken() (eng.Token, error) { return eng.Token{}, s.err }
func (s *failedSource) Location() int64               { return -1 }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.shape.Open(true)
			return eng.Token{Kind: eng.KindBeginObject, Offset: -1}, nil
		case '[':
			s.shape.Open(false)
			return eng.Token{Kind: eng.KindBeginArray, Offset: -1}, nil
		case '}':
			s.shape.Close()
			return eng.Token{Kind: eng.KindEndObject, Offset: -1}, nil
		case ']':
			s.shape.Close()
			return eng.Token{Kind: eng.KindEndArray, Offset: -1}, nil
		}
	case string:
		return eng.Token{Kind: s.shape.StringKind(), String: v, Offset: -1}, nil
	case bool:
		s.shape.Value()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.shape.Value()
		// go-json hands out numbers that alias its read buffer.
		return eng.Token{Kind: eng.KindNumber, Number: strings.Clone(string(v)), Offset: -1}, nil
	case float64:
		s.shape.Value()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	}
	s.shape.Value()
	return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
}

// Location is unknown: go-json does not expose the decoder input offset.
func (s *source) Location() int64 { return -1 }
