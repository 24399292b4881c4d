package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay wraps an error message to maxWidth, keeping at most
// maxErrorLines lines and marking truncation with "..."
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}
	if maxWidth < 20 {
		maxWidth = 20
	}

	var lines []string
	line := errorPrefix
	truncated := false
	for i, word := range words {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > maxWidth && line != errorPrefix {
			lines = append(lines, line)
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
			line = word
			continue
		}
		if line == errorPrefix {
			line += word
		} else {
			line += " " + word
		}
	}
	if !truncated {
		lines = append(lines, line)
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}
	return strings.Join(lines, "\n")
}
