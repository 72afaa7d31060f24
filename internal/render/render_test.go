package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reoring/lavasearch"
)

func sample() *lavasearch.SearchResult {
	return &lavasearch.SearchResult{
		LoadType: lavasearch.PlaylistLoaded,
		Playlist: &lavasearch.PlaylistInfo{Name: "Mix", SelectedTrack: 1},
		Tracks: lavasearch.NewTrackSet(lavasearch.Track{
			Encoded: "QAAA", Identifier: "abc", Title: "Song", Author: "X", Length: 61000, IsSeekable: true, URI: "http://x",
		}),
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), FormatYAML))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "PLAYLIST_LOADED", doc.LoadType)
	require.NotNil(t, doc.Playlist)
	assert.Equal(t, "Mix", doc.Playlist.Name)
	require.Len(t, doc.Tracks, 1)
	assert.Equal(t, "1m1s", doc.Tracks[0].Duration)
	assert.Nil(t, doc.Exception)
}

func TestWrite_JSONIsDecodable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), FormatJSON))

	res, err := lavasearch.DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, res.Equal(sample()))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, `loadType=PLAYLIST_LOADED tracks=1 playlist="Mix"`, Summary(sample()))
	assert.Equal(t, "loadType=- tracks=0", Summary(&lavasearch.SearchResult{}))

	failed := &lavasearch.SearchResult{
		LoadType:  lavasearch.LoadFailed,
		Exception: &lavasearch.RestException{Message: "nope", Severity: "COMMON"},
	}
	assert.Equal(t, `loadType=LOAD_FAILED tracks=0 exception="nope" severity=COMMON`, Summary(failed))
}
