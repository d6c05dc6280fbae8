package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habito/internal/constants"
)

// Today returns the date string (YYYY-MM-DD) of now
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

// FormatDisplayDate turns a YYYY-MM-DD date into DD/MM/YYYY.
// Strings that do not parse are returned unchanged.
func FormatDisplayDate(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(constants.DisplayDateFormat)
}

// FormatStatus returns the label shown for a habit's active flag
func FormatStatus(active bool) string {
	if active {
		return "Ativo"
	}
	return "Inativo"
}

// FormatFrequency returns e.g. "5x por semana"
func FormatFrequency(perWeek int) string {
	return fmt.Sprintf("%dx por semana", perWeek)
}

// FormatGoal returns e.g. "30 min/dia"
func FormatGoal(minutes int) string {
	return fmt.Sprintf("%d min/dia", minutes)
}

// ParseCount reads a whole number typed into a form field. Anything that is
// not an integer reads as 0 so the range rules report it.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
