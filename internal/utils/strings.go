package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitSeatList splits comma/semicolon separated seat strings into cleaned slices.
func SplitSeatList(raw string) []string {
	out := []string{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p))
	}
	return out
}

// SplitCSV splits a comma separated list, trimming each item and dropping
// blanks. Used for vibe tags and member id inputs.
func SplitCSV(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Initials builds a two-letter avatar fallback from first and last name.
func Initials(first, last string) string {
	var b strings.Builder
	if f := strings.TrimSpace(first); f != "" {
		b.WriteString(strings.ToUpper(f[:1]))
	}
	if l := strings.TrimSpace(last); l != "" {
		b.WriteString(strings.ToUpper(l[:1]))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
