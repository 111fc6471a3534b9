package ai

import "testing"

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     bool
	}{
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too short", "hi", false},
		{"lone short word", "hello", false},
		{"lone short word padded", "  test  ", false},
		{"digits only", "12345", false},
		{"punctuation only", "???!!!", false},
		{"bare interrogative", "What", false},
		{"bare interrogative lowercase", "why", false},
		{"acknowledgement", "thanks", false},
		{"acknowledgement two words", "thank you", false},
		{"real question", "What's driving our revenue growth?", true},
		{"short but substantive", "top products", true},
		{"interrogative with subject", "what changed in churn this month", true},
		{"six letter word passes length gate", "churns", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateQuestion(tt.question); got != tt.want {
				t.Errorf("ValidateQuestion(%q) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}

func TestIsUnclearResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{"clean analysis", "Revenue grew 15.3% quarter over quarter.", false},
		{"unclear flag", "Your question is unclear, could you be more specific?", true},
		{"clarify flag mixed case", "Could You Clarify which segment you mean?", true},
		{"more context flag", "Please provide more context about the time period.", true},
		{"word embedded mid-sentence", "It is not clear which product you mean.", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUnclearResponse(tt.response); got != tt.want {
				t.Errorf("isUnclearResponse(%q) = %v, want %v", tt.response, got, tt.want)
			}
		})
	}
}
