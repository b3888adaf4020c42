// Package dateutils normalizes locale-specific date strings into ISO form.
// The pipeline assumes the Brazilian day-first convention; ambiguous input
// is always read as DD/MM.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISO layout used across the pipeline.
const LayoutISO = "2006-01-02"

var (
	dayMonthYear = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})$`)
	dayMonth     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	isoDate      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
)

// ParseDate parses DD/MM/YYYY, DD-MM-YYYY, YYYY-MM-DD (time-of-day
// truncated) and DD/MM with implied current year. Two-digit years are
// expanded by prefixing "20". Unparseable input yields an error, never a
// guessed "today".
func ParseDate(raw string) (time.Time, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	if m := isoDate.FindStringSubmatch(cleaned); m != nil {
		return time.Parse(LayoutISO, m[0])
	}

	if m := dayMonthYear.FindStringSubmatch(cleaned); m != nil {
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		y, _ := strconv.Atoi(year)
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[1])
		return parseParts(raw, y, month, day)
	}

	if m := dayMonth.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[1])
		return parseParts(raw, time.Now().Year(), month, day)
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", raw)
}

// parseParts round-trips through time.Parse so impossible dates such as
// 31/02 are rejected instead of being normalized forward.
func parseParts(raw string, year, month, day int) (time.Time, error) {
	t, err := time.Parse(LayoutISO, fmt.Sprintf("%04d-%02d-%02d", year, month, day))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return t, nil
}

// NormalizeDate converts a locale-specific date string to ISO YYYY-MM-DD.
// An empty result means the input was unparseable.
func NormalizeDate(raw string) string {
	t, err := ParseDate(raw)
	if err != nil {
		return ""
	}
	return t.Format(LayoutISO)
}
