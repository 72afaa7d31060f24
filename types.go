package lavasearch

import (
	eng "github.com/reoring/lavasearch/internal/engine"
)

// FieldMatch selects how object keys are routed to field handlers.
type FieldMatch int

const (
	// MatchFullName compares complete key names.
	MatchFullName FieldMatch = iota
	// MatchDiscriminator routes on the first byte of the key only. The four
	// root names are prefix-unambiguous today; a future field sharing a first
	// byte with an existing one would be misrouted in this mode.
	MatchDiscriminator
)

func (m FieldMatch) String() string {
	if m == MatchDiscriminator {
		return "discriminator"
	}
	return "full"
}

// LoadTypePolicy controls validation of the loadType code.
type LoadTypePolicy int

const (
	// LoadTypePassthrough stores the first byte of the wire value as is.
	LoadTypePassthrough LoadTypePolicy = iota
	// LoadTypeChecked rejects codes outside the known LoadType set.
	LoadTypeChecked
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// Options bundles decoding options. The zero value decodes with full-name
// matching, pass-through load types and no limits.
type Options struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	FieldMatch FieldMatch
	LoadTypes  LoadTypePolicy
	// OnIssue receives non-fatal issues: skipped unknown keys inside nested
	// objects, skipped non-object track entries and duplicate keys in Warn
	// mode. It is called synchronously from the decoding goroutine.
	OnIssue func(Issue)
}

func lastOpt(opts []Options) Options {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return Options{}
}

func (o Options) enforce() eng.EnforceOptions {
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(o.Strictness.OnDuplicateKey),
		MaxDepth:    o.MaxDepth,
		MaxBytes:    o.MaxBytes,
	}
	if o.OnIssue != nil {
		sink := o.OnIssue
		eo.IssueSink = func(si eng.SimpleIssue) {
			if si.Code == eng.CodeDuplicateKey {
				sink(Issue{Path: si.Path, Code: CodeDuplicateKey, Message: si.Message, Offset: -1})
			}
		}
	}
	return eo
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
