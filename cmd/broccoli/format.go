// ABOUTME: Small parsing and column-formatting helpers shared by commands.
// ABOUTME: Covers id arguments, truncation, and right padding.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	r := []rune(s)
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
