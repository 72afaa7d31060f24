// Package render formats decoded search results for the CLI.
package render

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/lavasearch"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

type document struct {
	LoadType  string                    `yaml:"loadType,omitempty"`
	Playlist  *lavasearch.PlaylistInfo  `yaml:"playlistInfo,omitempty"`
	Exception *lavasearch.RestException `yaml:"exception,omitempty"`
	Tracks    []trackDocument           `yaml:"tracks,omitempty"`
}

type trackDocument struct {
	Encoded    string `yaml:"encoded"`
	Identifier string `yaml:"identifier"`
	Title      string `yaml:"title"`
	Author     string `yaml:"author"`
	Duration   string `yaml:"duration"`
	Seekable   bool   `yaml:"seekable"`
	Stream     bool   `yaml:"stream"`
	URI        string `yaml:"uri"`
}

func toDocument(res *lavasearch.SearchResult) document {
	doc := document{
		LoadType:  res.LoadType.String(),
		Playlist:  res.Playlist,
		Exception: res.Exception,
	}
	for t := range res.Tracks.All() {
		doc.Tracks = append(doc.Tracks, trackDocument{
			Encoded:    t.Encoded,
			Identifier: t.Identifier,
			Title:      t.Title,
			Author:     t.Author,
			Duration:   t.Duration().String(),
			Seekable:   t.IsSeekable,
			Stream:     t.IsStream,
			URI:        t.URI,
		})
	}
	return doc
}

// Write renders res to w. YAML is a human-oriented view; JSON is the wire
// shape, indented.
func Write(w io.Writer, res *lavasearch.SearchResult, f Format) error {
	switch f {
	case FormatJSON:
		raw, err := lavasearch.Marshal(res)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(res)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", f)
}

// Summary is a one-line description used by the check command.
func Summary(res *lavasearch.SearchResult) string {
	lt := res.LoadType.String()
	if lt == "" {
		lt = "-"
	}
	s := fmt.Sprintf("loadType=%s tracks=%d", lt, res.Tracks.Len())
	if res.Playlist != nil {
		s += fmt.Sprintf(" playlist=%q", res.Playlist.Name)
	}
	if res.Exception != nil {
		s += fmt.Sprintf(" exception=%q severity=%s", res.Exception.Message, res.Exception.Severity)
	}
	return s
}
