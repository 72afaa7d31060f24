package lavasearch

// fieldPolicy decides what happens to keys a fieldTable does not know.
type fieldPolicy int

const (
	// closedFields rejects unknown keys with a schema error.
	closedFields fieldPolicy = iota
	// openFields skips unknown keys together with their values.
	openFields
)

const noField = -1

// fieldTable maps object keys to handler indexes. The index of a name in
// names is the value lookup returns for it.
type fieldTable struct {
	policy fieldPolicy
	names  []string
	// exact forces full-name matching regardless of Options.FieldMatch.
	exact bool
}

func (ft *fieldTable) lookup(key string, m FieldMatch) int {
	if m == MatchDiscriminator && !ft.exact {
		if key == "" {
			return noField
		}
		for i, n := range ft.names {
			if n[0] == key[0] {
				return i
			}
		}
		return noField
	}
	for i, n := range ft.names {
		if n == key {
			return i
		}
	}
	return noField
}

const (
	rootLoadType = iota
	rootPlaylistInfo
	rootException
	rootTracks
)

var rootFields = fieldTable{
	policy: closedFields,
	names:  []string{"loadType", "playlistInfo", "exception", "tracks"},
}

const (
	playlistName = iota
	playlistSelectedTrack
)

var playlistFields = fieldTable{
	policy: openFields,
	names:  []string{"name", "selectedTrack"},
}

const (
	exceptionMessage = iota
	exceptionSeverity
)

var exceptionFields = fieldTable{
	policy: openFields,
	names:  []string{"message", "severity"},
}

const (
	infoIdentifier = iota
	infoIsSeekable
	infoAuthor
	infoLength
	infoIsStream
	infoTitle
	infoURI
)

var trackInfoFields = fieldTable{
	policy: openFields,
	exact:  true,
	names:  []string{"identifier", "isSeekable", "author", "length", "isStream", "title", "uri"},
}

// trackHandleKey names the opaque handle inside a track object.
const trackHandleKey = "track"
