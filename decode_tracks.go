package lavasearch

import (
	eng "github.com/reoring/lavasearch/internal/engine"
)

// decodeTracks adds every object element of the array starting at tok to set.
func (d *decoder) decodeTracks(path string, tok eng.Token, set *TrackSet) error {
	switch tok.Kind {
	case eng.KindNull:
		return nil
	case eng.KindBeginArray:
	default:
		return d.typeMismatch(path, "array", tok)
	}
	for i := 0; ; i++ {
		elem, err := d.next(path)
		if err != nil {
			return err
		}
		if elem.Kind == eng.KindEndArray {
			return nil
		}
		epath := eng.IndexPointer(path, i)
		if elem.Kind != eng.KindBeginObject {
			if err := d.skip(epath, elem); err != nil {
				return err
			}
			d.notify(Issue{Path: epath, Code: CodeInvalidType, Message: "skipped non-object track entry (" + elem.Kind.String() + ")", Offset: elem.Offset})
			continue
		}
		t, err := d.decodeTrack(epath)
		if err != nil {
			return err
		}
		set.Add(t)
	}
}

// decodeTrack reads one track object whose begin-object was consumed. The
// handle sits under "track"; any object-valued property is read as the info
// block, whatever its name.
func (d *decoder) decodeTrack(path string) (Track, error) {
	var t Track
	for {
		key, done, err := d.nextKey(path)
		if err != nil {
			return Track{}, err
		}
		if done {
			return t, nil
		}
		fpath := eng.JoinPointer(path, key.String)
		val, err := d.next(fpath)
		if err != nil {
			return Track{}, err
		}
		switch {
		case val.Kind == eng.KindBeginObject:
			if err := d.decodeTrackInfo(fpath, &t); err != nil {
				return Track{}, err
			}
		case key.String == trackHandleKey:
			if t.Encoded, err = d.readString(fpath, val); err != nil {
				return Track{}, err
			}
		default:
			if err := d.skip(fpath, val); err != nil {
				return Track{}, err
			}
		}
	}
}

func (d *decoder) decodeTrackInfo(path string, t *Track) error {
	for {
		key, done, err := d.nextKey(path)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		fpath := eng.JoinPointer(path, key.String)
		field := trackInfoFields.lookup(key.String, d.opt.FieldMatch)
		if field == noField {
			if err := d.unknownField(&trackInfoFields, fpath, key); err != nil {
				return err
			}
			continue
		}
		val, err := d.next(fpath)
		if err != nil {
			return err
		}
		switch field {
		case infoIdentifier:
			t.Identifier, err = d.readString(fpath, val)
		case infoIsSeekable:
			t.IsSeekable, err = d.readBool(fpath, val)
		case infoAuthor:
			t.Author, err = d.readString(fpath, val)
		case infoLength:
			t.Length, err = d.readInt(fpath, val, 64)
		case infoIsStream:
			t.IsStream, err = d.readBool(fpath, val)
		case infoTitle:
			t.Title, err = d.readString(fpath, val)
		case infoURI:
			t.URI, err = d.readString(fpath, val)
		}
		if err != nil {
			return err
		}
	}
}
