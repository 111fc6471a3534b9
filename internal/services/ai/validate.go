package ai

import (
	"regexp"
	"strings"
)

// The validation predicate is a denylist of known noise shapes, not a
// whitelist: anything that does not match one of these patterns is allowed
// through to analysis.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^[a-z]{1,5}$`),                     // lone short words: "hello", "hi", "test"
	regexp.MustCompile(`^[^a-zA-Z]*$`),                         // no letters at all
	regexp.MustCompile(`(?i)^(what|how|why|when|where)\s*$`),   // bare interrogatives
	regexp.MustCompile(`(?i)^(yes|no|ok|okay|thanks|thank you)\s*$`), // acknowledgements
}

// ValidateQuestion reports whether the question is worth analyzing. Rejected
// questions never reach the completion API.
func ValidateQuestion(question string) bool {
	trimmed := strings.TrimSpace(question)
	if len(trimmed) < 3 {
		return false
	}
	for _, p := range noisePatterns {
		if p.MatchString(trimmed) {
			return false
		}
	}
	return true
}

// Phrases in a completion that signal the model found the question unclear.
// A match downgrades the turn to text-only.
var unclearIndicators = []string{
	"unclear",
	"not clear",
	"please clarify",
	"provide more context",
	"not specific enough",
	"could you clarify",
	"more information needed",
}

func isUnclearResponse(response string) bool {
	lower := strings.ToLower(response)
	for _, phrase := range unclearIndicators {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
