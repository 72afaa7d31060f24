// Package lavasearch decodes the load/search responses of an audio-search
// server (Lavalink-style loadtracks payloads) straight from a JSON token
// stream into typed values, without building an intermediate map tree.
//
// The decoder provides:
//
//   - A single-pass hand-written walk over Source tokens (go-json by default,
//     encoding/json via StdJSONDriver, or any custom Source)
//   - A closed root schema (unknown top-level fields fail) and open nested
//     schemas (unknown fields inside playlistInfo, exception and track info
//     are skipped and reported through Options.OnIssue)
//   - Structural and schema errors as *DecodeError with JSON Pointer paths
//   - Track deduplication by full value equality through TrackSet
//   - Duplicate-key, depth and size enforcement
//
// Typical usage:
//
//	res, err := lavasearch.DecodeBytes(payload)
//	if errors.Is(err, lavasearch.ErrSchema) { ... }
//	for t := range res.Tracks.All() { ... }
//
//	wire, err := lavasearch.Marshal(res)
package lavasearch
