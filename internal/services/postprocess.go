package services

import (
	"fmt"
	"regexp"
	"strings"
)

var actionMarkers = []string{"1.", "2.", "3.", "4.", "5.", "-", "•"}

var dollarAmountPattern = regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d{2})?)`)

// ExtractActions scans strategy text line by line and collects actionable
// items: lines starting with a numbered marker 1.-5., "-" or "•", marker
// stripped, kept only if the cleaned text is longer than 10 characters.
// At most 5 actions are returned, in document order.
func ExtractActions(strategy string) []string {
	actions := []string{}

	for _, line := range strings.Split(strategy, "\n") {
		line = strings.TrimSpace(line)

		matched := false
		for _, marker := range actionMarkers {
			if strings.HasPrefix(line, marker) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		action := strings.TrimSpace(strings.TrimLeft(line, "123456789.-• "))
		if len(action) > 10 {
			actions = append(actions, action)
		}
		if len(actions) == 5 {
			break
		}
	}

	return actions
}

// EstimateEarnings derives an earnings label for the response. An explicit
// dollar amount in the prompt wins over any temporal keyword; otherwise the
// label comes from a fixed keyword-to-range table.
func EstimateEarnings(prompt, strategy string) string {
	if match := dollarAmountPattern.FindStringSubmatch(prompt); match != nil {
		targetAmount := strings.ReplaceAll(match[1], ",", "")
		return fmt.Sprintf("Target: $%s (as specified)", targetAmount)
	}

	promptLower := strings.ToLower(prompt)

	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(promptLower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("day", "today", "quickly"):
		return "$50-200 (short-term)"
	case containsAny("week", "weekly"):
		return "$200-1000 (weekly potential)"
	case containsAny("month", "monthly"):
		return "$1000-5000 (monthly potential)"
	default:
		return "$100-500 (typical range)"
	}
}
