package lavasearch

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	eng "github.com/reoring/lavasearch/internal/engine"
)

// Decode reads one search response from src. src must be positioned before
// the root object; decoding stops at the matching end-object, so trailing
// input is left unread. The last Options value wins.
func Decode(src Source, opts ...Options) (*SearchResult, error) {
	opt := lastOpt(opts)
	ts := engineTokenSource(src)
	if eo := opt.enforce(); !eo.Disabled() {
		ts = eng.WrapWithEnforcement(ts, eo)
	}
	d := &decoder{src: ts, opt: opt}
	res, err := d.decodeResponse()
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DecodeBytes decodes a response held in memory using the current JSON driver.
func DecodeBytes(b []byte, opts ...Options) (*SearchResult, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(b)) > opt.MaxBytes {
		return nil, structuralf("", CodeTruncated, "max bytes exceeded")
	}
	return Decode(JSONBytes(b), opt)
}

// DecodeReader decodes a response from r. When MaxBytes is set the input is
// read up front through a limit so oversized payloads fail before decoding.
func DecodeReader(r io.Reader, opts ...Options) (*SearchResult, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, fromReaderError("", err)
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, structuralf("", CodeTruncated, "max bytes exceeded")
		}
		return Decode(JSONReader(bytes.NewReader(data)), opt)
	}
	return Decode(JSONReader(r), opt)
}

// decoder owns the token cursor for a single Decode call.
type decoder struct {
	src eng.TokenSource
	opt Options
}

func (d *decoder) next(path string) (eng.Token, error) {
	tok, err := d.src.NextToken()
	if err != nil {
		return eng.Token{}, fromReaderError(path, err)
	}
	return tok, nil
}

func (d *decoder) decodeResponse() (*SearchResult, error) {
	tok, err := d.next("")
	if err != nil {
		return nil, err
	}
	if tok.Kind != eng.KindBeginObject {
		return nil, d.atToken(structuralf("", CodeUnexpectedToken, "expected begin-object, got %s", tok.Kind), tok)
	}

	res := &SearchResult{}
	for {
		key, done, err := d.nextKey("")
		if err != nil {
			return nil, err
		}
		if done {
			return res, nil
		}
		path := eng.JoinPointer("", key.String)
		field := rootFields.lookup(key.String, d.opt.FieldMatch)
		if field == noField {
			if err := d.unknownField(&rootFields, path, key); err != nil {
				return nil, err
			}
			continue
		}
		val, err := d.next(path)
		if err != nil {
			return nil, err
		}
		switch field {
		case rootLoadType:
			lt, err := d.readLoadType(path, val)
			if err != nil {
				return nil, err
			}
			res.LoadType = lt
		case rootPlaylistInfo:
			pl, err := d.decodePlaylist(path, val)
			if err != nil {
				return nil, err
			}
			res.Playlist = pl
		case rootException:
			ex, err := d.decodeException(path, val)
			if err != nil {
				return nil, err
			}
			res.Exception = ex
		case rootTracks:
			var set TrackSet
			if err := d.decodeTracks(path, val, &set); err != nil {
				return nil, err
			}
			res.Tracks = set
		}
	}
}

// nextKey reads the next token inside an object. done is true on end-object;
// anything other than a key there is structural.
func (d *decoder) nextKey(path string) (key eng.Token, done bool, err error) {
	tok, err := d.next(path)
	if err != nil {
		return eng.Token{}, false, err
	}
	switch tok.Kind {
	case eng.KindEndObject:
		return tok, true, nil
	case eng.KindKey:
		return tok, false, nil
	}
	return eng.Token{}, false, d.atToken(structuralf(path, CodeUnexpectedToken, "expected property name, got %s", tok.Kind), tok)
}

// unknownField applies the table's policy to a key it does not recognise.
// The value token has not been read yet.
func (d *decoder) unknownField(ft *fieldTable, path string, key eng.Token) error {
	if ft.policy == closedFields {
		return d.atToken(schemaf(path, CodeUnknownKey, "unrecognized field %q", key.String), key)
	}
	val, err := d.next(path)
	if err != nil {
		return err
	}
	if err := d.skip(path, val); err != nil {
		return err
	}
	d.notify(Issue{Path: path, Code: CodeUnknownKey, Message: "skipped unknown field " + strconv.Quote(key.String), Offset: key.Offset})
	return nil
}

func (d *decoder) skip(path string, first eng.Token) error {
	if err := eng.SkipValue(d.src, first); err != nil {
		return fromReaderError(path, err)
	}
	return nil
}

func (d *decoder) notify(is Issue) {
	if d.opt.OnIssue != nil {
		d.opt.OnIssue(is)
	}
}

func (d *decoder) atToken(e *DecodeError, tok eng.Token) *DecodeError {
	e.Offset = tok.Offset
	return e
}

func (d *decoder) readLoadType(path string, tok eng.Token) (LoadType, error) {
	switch tok.Kind {
	case eng.KindNull:
		return 0, nil
	case eng.KindString:
	default:
		return 0, d.typeMismatch(path, "string", tok)
	}
	if tok.String == "" {
		return 0, d.atToken(schemaf(path, CodeInvalidEnum, "empty load type"), tok)
	}
	lt := LoadType(tok.String[0])
	if d.opt.LoadTypes == LoadTypeChecked && !lt.Known() {
		return 0, d.atToken(schemaf(path, CodeInvalidEnum, "unknown load type %q", tok.String), tok)
	}
	return lt, nil
}

// readString accepts a string or null (empty) value.
func (d *decoder) readString(path string, tok eng.Token) (string, error) {
	switch tok.Kind {
	case eng.KindString:
		return tok.String, nil
	case eng.KindNull:
		return "", nil
	}
	return "", d.typeMismatch(path, "string", tok)
}

func (d *decoder) readBool(path string, tok eng.Token) (bool, error) {
	if tok.Kind != eng.KindBool {
		return false, d.typeMismatch(path, "bool", tok)
	}
	return tok.Bool, nil
}

func (d *decoder) readInt(path string, tok eng.Token, bits int) (int64, error) {
	if tok.Kind != eng.KindNumber {
		return 0, d.typeMismatch(path, "integer", tok)
	}
	n, err := strconv.ParseInt(tok.Number, 10, bits)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, d.atToken(schemaf(path, CodeOverflow, "%s overflows int%d", tok.Number, bits), tok)
	}
	return 0, d.atToken(schemaf(path, CodeInvalidType, "expected integer, got %s", tok.Number), tok)
}

func (d *decoder) readInt32(path string, tok eng.Token) (int32, error) {
	n, err := d.readInt(path, tok, 32)
	return int32(n), err
}

// typeMismatch reports a wrong value kind. The offending value is drained
// first so a container does not leave the cursor mid-subtree; if draining
// fails the structural error wins.
func (d *decoder) typeMismatch(path, want string, tok eng.Token) error {
	if err := d.skip(path, tok); err != nil {
		return err
	}
	return d.atToken(schemaf(path, CodeInvalidType, "expected %s, got %s", want, tok.Kind), tok)
}
