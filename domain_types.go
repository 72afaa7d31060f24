package lavasearch

import (
	"fmt"
	"iter"
	"time"
)

// LoadType is the outcome tag of a load or search request. Its value is the
// first byte of the wire string ("TRACK_LOADED" -> 'T').
type LoadType byte

const (
	// Returned when a single track is loaded.
	TrackLoaded LoadType = 'T'
	// Returned when a playlist is loaded.
	PlaylistLoaded LoadType = 'P'
	// Returned when a search produced a list of candidates.
	SearchResultLoaded LoadType = 'S'
	// Returned if no matches/sources could be found for a given identifier.
	NoMatches LoadType = 'N'
	// Returned if the server failed to load something.
	LoadFailed LoadType = 'L'
)

// Known reports whether t is one of the defined outcomes.
func (t LoadType) Known() bool {
	switch t {
	case TrackLoaded, PlaylistLoaded, SearchResultLoaded, NoMatches, LoadFailed:
		return true
	}
	return false
}

func (t LoadType) String() string {
	switch t {
	case TrackLoaded:
		return "TRACK_LOADED"
	case PlaylistLoaded:
		return "PLAYLIST_LOADED"
	case SearchResultLoaded:
		return "SEARCH_RESULT"
	case NoMatches:
		return "NO_MATCHES"
	case LoadFailed:
		return "LOAD_FAILED"
	case 0:
		return ""
	}
	return fmt.Sprintf("LoadType(%d)", byte(t))
}

// PlaylistInfo is only meaningful when LoadType is PlaylistLoaded.
type PlaylistInfo struct {
	Name          string `json:"name" yaml:"name"`
	SelectedTrack int32  `json:"selectedTrack" yaml:"selectedTrack"`
}

// RestException carries the failure reported with LoadFailed.
type RestException struct {
	Message  string `json:"message" yaml:"message"`
	Severity string `json:"severity" yaml:"severity"`
}

// Track is one playable item. Encoded is the opaque handle the server expects
// back on playback requests. Track is comparable; two tracks are the same
// track when every field matches.
type Track struct {
	Encoded    string
	Identifier string
	Title      string
	Author     string
	Length     int64 // milliseconds
	IsSeekable bool
	IsStream   bool
	URI        string
}

// Duration converts Length to a time.Duration.
func (t Track) Duration() time.Duration { return time.Duration(t.Length) * time.Millisecond }

// TrackSet is a set of tracks keyed by full value equality. Iteration follows
// first insertion, but callers should treat the set as unordered. The zero
// value is an empty set ready to use.
type TrackSet struct {
	index map[Track]struct{}
	items []Track
}

// NewTrackSet builds a set from tracks, dropping duplicates.
func NewTrackSet(tracks ...Track) TrackSet {
	var s TrackSet
	for _, t := range tracks {
		s.Add(t)
	}
	return s
}

// Add inserts t and reports whether it was not already present.
func (s *TrackSet) Add(t Track) bool {
	if s.index == nil {
		s.index = make(map[Track]struct{})
	}
	if _, ok := s.index[t]; ok {
		return false
	}
	s.index[t] = struct{}{}
	s.items = append(s.items, t)
	return true
}

func (s TrackSet) Len() int { return len(s.items) }

func (s TrackSet) Contains(t Track) bool {
	_, ok := s.index[t]
	return ok
}

// Tracks returns a copy of the members.
func (s TrackSet) Tracks() []Track { return append([]Track(nil), s.items...) }

// All iterates over the members.
func (s TrackSet) All() iter.Seq[Track] {
	return func(yield func(Track) bool) {
		for _, t := range s.items {
			if !yield(t) {
				return
			}
		}
	}
}

// Equal reports set equality, ignoring order.
func (s TrackSet) Equal(o TrackSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, t := range s.items {
		if !o.Contains(t) {
			return false
		}
	}
	return true
}

// SearchResult is the decoded response. Which of Playlist, Exception and
// Tracks is meaningful depends on LoadType; the decoder fills whatever the
// payload carries.
type SearchResult struct {
	LoadType  LoadType
	Playlist  *PlaylistInfo
	Exception *RestException
	Tracks    TrackSet
}

// Equal compares two results field by field, with set semantics for Tracks.
func (r *SearchResult) Equal(o *SearchResult) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.LoadType != o.LoadType || !r.Tracks.Equal(o.Tracks) {
		return false
	}
	if (r.Playlist == nil) != (o.Playlist == nil) || (r.Playlist != nil && *r.Playlist != *o.Playlist) {
		return false
	}
	if (r.Exception == nil) != (o.Exception == nil) || (r.Exception != nil && *r.Exception != *o.Exception) {
		return false
	}
	return true
}
