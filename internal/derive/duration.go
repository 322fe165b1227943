// Package derive holds the pure computations shared by the collection store,
// the query engine and the statistics: duration parsing, genre tokenization,
// rating tiers and date handling.
package derive

import (
	"fmt"
	"strconv"
	"strings"
)

// ExtractMinutes returns the first run of ASCII digits in text as a number of
// minutes, or 0 when there is none.
func ExtractMinutes(text string) int {
	start := strings.IndexFunc(text, isDigit)
	if start < 0 {
		return 0
	}
	end := start
	for end < len(text) && isDigit(rune(text[end])) {
		end++
	}
	minutes, err := strconv.Atoi(text[start:end])
	if err != nil {
		return 0
	}
	return minutes
}

// FormatDuration renders a duration string as "2h05m", "1h" or "45m".
// Returns "N/A" when no minutes can be extracted.
func FormatDuration(text string) string {
	total := ExtractMinutes(text)
	if total == 0 {
		return "N/A"
	}

	hours, minutes := total/60, total%60
	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%02dm", minutes)
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
