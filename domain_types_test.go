package lavasearch_test

import (
	"testing"
	"time"

	"github.com/reoring/lavasearch"
)

func TestLoadType_String(t *testing.T) {
	cases := map[lavasearch.LoadType]string{
		lavasearch.TrackLoaded:        "TRACK_LOADED",
		lavasearch.PlaylistLoaded:     "PLAYLIST_LOADED",
		lavasearch.SearchResultLoaded: "SEARCH_RESULT",
		lavasearch.NoMatches:          "NO_MATCHES",
		lavasearch.LoadFailed:         "LOAD_FAILED",
		lavasearch.LoadType('Z'):      "LoadType(90)",
		lavasearch.LoadType(0):        "",
	}
	for lt, want := range cases {
		if got := lt.String(); got != want {
			t.Fatalf("%d: want %q, got %q", byte(lt), want, got)
		}
	}
}

func TestTrackSet(t *testing.T) {
	a := lavasearch.Track{Encoded: "A", Length: 1}
	b := lavasearch.Track{Encoded: "B", Length: 2}

	var s lavasearch.TrackSet
	if s.Len() != 0 || s.Contains(a) {
		t.Fatalf("zero set should be empty")
	}
	if !s.Add(a) || !s.Add(b) || s.Add(a) {
		t.Fatalf("unexpected Add results")
	}
	if s.Len() != 2 || !s.Contains(b) {
		t.Fatalf("set contents: %+v", s.Tracks())
	}

	other := lavasearch.NewTrackSet(b, a, b)
	if !s.Equal(other) || !other.Equal(s) {
		t.Fatalf("sets should be equal regardless of order")
	}
	other.Add(lavasearch.Track{Encoded: "C"})
	if s.Equal(other) {
		t.Fatalf("sets of different size should differ")
	}

	n := 0
	for range s.All() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("iteration should stop on break")
	}

	// Tracks returns a copy
	ts := s.Tracks()
	ts[0].Encoded = "mutated"
	if !s.Contains(a) {
		t.Fatalf("Tracks must not alias the set")
	}
}

func TestTrack_Duration(t *testing.T) {
	if got := (lavasearch.Track{Length: 1500}).Duration(); got != 1500*time.Millisecond {
		t.Fatalf("got %v", got)
	}
}

func TestSearchResult_Equal(t *testing.T) {
	x := &lavasearch.SearchResult{LoadType: lavasearch.PlaylistLoaded, Playlist: &lavasearch.PlaylistInfo{Name: "a"}}
	y := &lavasearch.SearchResult{LoadType: lavasearch.PlaylistLoaded, Playlist: &lavasearch.PlaylistInfo{Name: "a"}}
	if !x.Equal(y) {
		t.Fatalf("expected equal")
	}
	y.Playlist.Name = "b"
	if x.Equal(y) {
		t.Fatalf("expected playlist difference")
	}
	y.Playlist = nil
	if x.Equal(y) {
		t.Fatalf("expected nil/non-nil difference")
	}
	var nilRes *lavasearch.SearchResult
	if !nilRes.Equal(nil) || nilRes.Equal(x) {
		t.Fatalf("nil handling")
	}
}
