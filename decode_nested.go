package lavasearch

import (
	eng "github.com/reoring/lavasearch/internal/engine"
)

// beginObject checks that tok opens an object. A null value yields ok=false
// without error so the caller leaves its field unset.
func (d *decoder) beginObject(path string, tok eng.Token) (ok bool, err error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return true, nil
	case eng.KindNull:
		return false, nil
	}
	return false, d.typeMismatch(path, "object", tok)
}

func (d *decoder) decodePlaylist(path string, tok eng.Token) (*PlaylistInfo, error) {
	if ok, err := d.beginObject(path, tok); !ok {
		return nil, err
	}
	pl := &PlaylistInfo{}
	for {
		key, done, err := d.nextKey(path)
		if err != nil {
			return nil, err
		}
		if done {
			return pl, nil
		}
		fpath := eng.JoinPointer(path, key.String)
		field := playlistFields.lookup(key.String, d.opt.FieldMatch)
		if field == noField {
			if err := d.unknownField(&playlistFields, fpath, key); err != nil {
				return nil, err
			}
			continue
		}
		val, err := d.next(fpath)
		if err != nil {
			return nil, err
		}
		switch field {
		case playlistName:
			pl.Name, err = d.readString(fpath, val)
		case playlistSelectedTrack:
			pl.SelectedTrack, err = d.readInt32(fpath, val)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (d *decoder) decodeException(path string, tok eng.Token) (*RestException, error) {
	if ok, err := d.beginObject(path, tok); !ok {
		return nil, err
	}
	ex := &RestException{}
	for {
		key, done, err := d.nextKey(path)
		if err != nil {
			return nil, err
		}
		if done {
			return ex, nil
		}
		fpath := eng.JoinPointer(path, key.String)
		field := exceptionFields.lookup(key.String, d.opt.FieldMatch)
		if field == noField {
			if err := d.unknownField(&exceptionFields, fpath, key); err != nil {
				return nil, err
			}
			continue
		}
		val, err := d.next(fpath)
		if err != nil {
			return nil, err
		}
		switch field {
		case exceptionMessage:
			ex.Message, err = d.readString(fpath, val)
		case exceptionSeverity:
			ex.Severity, err = d.readString(fpath, val)
		}
		if err != nil {
			return nil, err
		}
	}
}
