package engine

// Shape tracks container nesting for tokenizers that report object keys and
// string values alike. Drivers feed it every delimiter and scalar so it can
// tell which strings are keys.
type Shape struct {
	stack []shapeFrame
}

type shapeFrame struct {
	object       bool
	expectingKey bool
}

// Open records a begin-object or begin-array delimiter.
func (s *Shape) Open(object bool) {
	s.stack = append(s.stack, shapeFrame{object: object, expectingKey: object})
}

// Close records an end delimiter; the closed container counts as a value of
// its parent.
func (s *Shape) Close() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.Value()
}

// Value records a completed scalar value.
func (s *Shape) Value() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

// StringKind classifies a string token as KindKey or KindString.
func (s *Shape) StringKind() Kind {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return KindKey
		}
	}
	s.Value()
	return KindString
}

// Depth returns the number of open containers.
func (s *Shape) Depth() int { return len(s.stack) }
