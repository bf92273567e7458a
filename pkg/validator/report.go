package validator

import (
	"fmt"
	"sort"
	"strings"
)

// Report accumulates validation errors as a mapping from field name to
// messages. It is the recoverable half of the error model: everything in a
// Report goes back to the user for redisplay and never unwinds the stack.
type Report map[string][]string

// NewReport returns an empty report.
func NewReport() Report {
	return make(Report)
}

// Add appends a message for the named field.
func (r Report) Add(field, message string) {
	r[field] = append(r[field], message)
}

// Has reports whether the named field collected any errors.
func (r Report) Has(field string) bool {
	return len(r[field]) > 0
}

// Get returns the messages collected for the named field.
func (r Report) Get(field string) []string {
	return r[field]
}

// Fields returns the sorted names of fields that collected errors.
func (r Report) Fields() []string {
	fields := make([]string, 0, len(r))
	for field := range r {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty reports whether the report collected no errors.
func (r Report) IsEmpty() bool {
	return len(r) == 0
}

// String renders the report for logs and test failures.
func (r Report) String() string {
	if r.IsEmpty() {
		return "validation passed"
	}

	var parts []string
	for _, field := range r.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(r[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, " | ")
}
