package sanitize

import (
	"fmt"
	"strings"
)

// Reasons recorded in a Coercion.
const (
	ReasonMissing    = "missing"
	ReasonWrongType  = "wrong type"
	ReasonUnknown    = "unknown value"
	ReasonDropped    = "non-string elements dropped"
	ReasonNotObject  = "not an object"
	ReasonGenerated  = "generated"
	ReasonBlank      = "blank"
	ReasonTruncated  = "truncated to integer"
	ReasonOutOfRange = "out of range"
	ReasonDefaulted  = "defaulted"
	ReasonSkipped    = "element skipped"
)

// Coercion records one field that did not arrive in the expected shape and
// was replaced or normalised.
type Coercion struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (c Coercion) String() string {
	return fmt.Sprintf("%s: %s", c.Field, c.Reason)
}

// Report lists every coercion applied while sanitizing a value. An empty
// report means the input was already a valid entity.
type Report struct {
	Coercions []Coercion `json:"coercions,omitempty"`
}

func (r *Report) add(field, reason string) {
	r.Coercions = append(r.Coercions, Coercion{Field: field, Reason: reason})
}

func (r *Report) merge(other Report) {
	r.Coercions = append(r.Coercions, other.Coercions...)
}

// RootNotObject reports whether the whole document was not a JSON object,
// in which case every collection came from defaults.
func (r Report) RootNotObject() bool {
	for _, c := range r.Coercions {
		if c.Field == documentField && c.Reason == ReasonNotObject {
			return true
		}
	}
	return false
}

// Clean reports whether no coercion was needed.
func (r Report) Clean() bool {
	return len(r.Coercions) == 0
}

func (r Report) String() string {
	parts := make([]string, 0, len(r.Coercions))
	for _, c := range r.Coercions {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, "; ")
}
