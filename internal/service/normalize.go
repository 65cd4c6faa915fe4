package service

import "strings"

// normalizeModelJSON strips the markdown code fence models sometimes wrap
// strict-JSON answers in, despite being told not to. Pure string transform;
// the caller parses the result.
func normalizeModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "```json"):
		s = s[len("```json"):]
	case strings.HasPrefix(s, "```"):
		s = s[len("```"):]
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
