package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/habito/internal/constants"
)

// fieldOrder is the order in which rules are evaluated and reported
var fieldOrder = []string{
	constants.FieldID,
	constants.FieldName,
	constants.FieldWeeklyFrequency,
	constants.FieldDailyGoalMinutes,
	constants.FieldStartDate,
	constants.FieldActive,
}

// FieldErrors maps a field key to the human-readable messages of every rule it failed
type FieldErrors map[string][]string

// Add appends a message for the given field
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Messages returns the messages reported for field, or nil
func (fe FieldErrors) Messages(field string) []string {
	return fe[field]
}

// Has reports whether field has at least one message
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// Fields returns the failing field keys in rule order. Unknown keys sort last, alphabetically.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	var extra []string
	for _, f := range fieldOrder {
		if fe.Has(f) {
			fields = append(fields, f)
		}
	}
	for f, msgs := range fe {
		if len(msgs) > 0 && !isKnownField(f) {
			extra = append(extra, f)
		}
	}
	sort.Strings(extra)
	return append(fields, extra...)
}

func (fe FieldErrors) Error() string {
	var parts []string
	for _, f := range fe.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func isKnownField(field string) bool {
	for _, f := range fieldOrder {
		if f == field {
			return true
		}
	}
	return false
}
