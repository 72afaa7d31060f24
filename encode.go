package lavasearch

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	json "github.com/goccy/go-json"
)

// Wire shapes for the encoding direction. Decoding never goes through these.
type wireResponse struct {
	LoadType     string         `json:"loadType,omitempty"`
	PlaylistInfo *PlaylistInfo  `json:"playlistInfo,omitempty"`
	Exception    *RestException `json:"exception,omitempty"`
	Tracks       []wireTrack    `json:"tracks,omitempty"`
}

type wireTrack struct {
	Track string        `json:"track"`
	Info  wireTrackInfo `json:"info"`
}

type wireTrackInfo struct {
	Identifier string `json:"identifier"`
	IsSeekable bool   `json:"isSeekable"`
	Author     string `json:"author"`
	Length     int64  `json:"length"`
	IsStream   bool   `json:"isStream"`
	Title      string `json:"title"`
	URI        string `json:"uri"`
}

// ErrUnencodableLoadType is returned by Marshal for a pass-through load type
// outside ASCII. A lone byte >= 0x80 is not valid UTF-8 and would not decode
// back to the same code.
var ErrUnencodableLoadType = errors.New("lavasearch: load type is not encodable")

// wireLoadType renders known codes by their canonical name and other ASCII
// codes as the raw byte, which decodes back to the same code.
func wireLoadType(t LoadType) (string, error) {
	switch {
	case t == 0:
		return "", nil
	case t.Known():
		return t.String(), nil
	case t >= utf8.RuneSelf:
		return "", fmt.Errorf("%w: %#x", ErrUnencodableLoadType, byte(t))
	}
	return string(rune(t)), nil
}

func toWire(r *SearchResult) (wireResponse, error) {
	lt, err := wireLoadType(r.LoadType)
	if err != nil {
		return wireResponse{}, err
	}
	w := wireResponse{
		LoadType:     lt,
		PlaylistInfo: r.Playlist,
		Exception:    r.Exception,
	}
	if n := r.Tracks.Len(); n > 0 {
		w.Tracks = make([]wireTrack, 0, n)
		for t := range r.Tracks.All() {
			w.Tracks = append(w.Tracks, wireTrack{
				Track: t.Encoded,
				Info: wireTrackInfo{
					Identifier: t.Identifier,
					IsSeekable: t.IsSeekable,
					Author:     t.Author,
					Length:     t.Length,
					IsStream:   t.IsStream,
					Title:      t.Title,
					URI:        t.URI,
				},
			})
		}
	}
	return w, nil
}

// Marshal encodes r in the wire shape Decode reads.
func Marshal(r *SearchResult) ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	w, err := toWire(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// Encode writes r to w in the wire shape Decode reads.
func Encode(w io.Writer, r *SearchResult) error {
	b, err := Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// MarshalJSON implements json.Marshaler.
func (r *SearchResult) MarshalJSON() ([]byte, error) { return Marshal(r) }

// UnmarshalJSON implements json.Unmarshaler with the streaming decoder and
// default Options.
func (r *SearchResult) UnmarshalJSON(b []byte) error {
	res, err := DecodeBytes(b)
	if err != nil {
		return err
	}
	*r = *res
	return nil
}
