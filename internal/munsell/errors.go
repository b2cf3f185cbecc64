package munsell

import "fmt"

// ParseError reports malformed notation or sequence parameters.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// MissingSampleError reports coordinates the database cannot resolve.
type MissingSampleError struct {
	Hue, Value, Chroma float64
}

func (e *MissingSampleError) Error() string {
	return fmt.Sprintf("no sample for hue %.1f value %.1f chroma %.1f", e.Hue, e.Value, e.Chroma)
}

// DataLoadError reports a missing or corrupt reference dataset. Line is 0 when
// the failure is not tied to a row.
type DataLoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }
