package export

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order when reading stored timestamps
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp reads a stored result timestamp
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a stored timestamp with a date pattern. Values that
// cannot be parsed are returned unchanged.
func FormatTimestamp(value, pattern string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		return value
	}
	return FormatDate(t, pattern)
}

// patternTokens maps date pattern letters (yyyy, MM, dd, HH, mm, ss, ...)
// to Go reference layouts. Longest tokens first.
var patternTokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"MMMM", "January"},
	{"EEEE", "Monday"},
	{"MMM", "Jan"},
	{"EEE", "Mon"},
	{"SSS", ".000"},
	{"yy", "06"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"d", "2"},
	{"H", "15"},
	{"h", "3"},
	{"m", "4"},
	{"s", "5"},
	{"a", "PM"},
}

// FormatDate renders t (in UTC) with a date pattern such as
// "yyyy-MM-dd'T'HH:mm:ss'Z'". Text between single quotes is literal and
// '' is a quote. "PPP" renders a long date such as "May 1st, 2024".
// Unknown letters are copied as is.
func FormatDate(t time.Time, pattern string) string {
	t = t.UTC()
	var b strings.Builder

	for i := 0; i < len(pattern); {
		if pattern[i] == '\'' {
			i = writeQuoted(&b, pattern, i+1)
			continue
		}

		if strings.HasPrefix(pattern[i:], "PPP") {
			b.WriteString(longDate(t))
			i += 3
			continue
		}

		matched := false
		for _, tok := range patternTokens {
			if strings.HasPrefix(pattern[i:], tok.token) {
				out := t.Format(tok.layout)
				if tok.token == "SSS" {
					out = strings.TrimPrefix(out, ".")
				}
				b.WriteString(out)
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// writeQuoted copies quoted text starting at i, where '' stands for a
// quote, and returns the index after the closing quote
func writeQuoted(b *strings.Builder, pattern string, i int) int {
	for i < len(pattern) {
		if pattern[i] == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			return i + 1
		}
		b.WriteByte(pattern[i])
		i++
	}
	return i
}

func longDate(t time.Time) string {
	return t.Format("January ") + ordinal(t.Day()) + t.Format(", 2006")
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
