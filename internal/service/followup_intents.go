package service

import "strings"

// followUpIntent es la intención detectada en un turno de seguimiento.
type followUpIntent int

const (
	intentNewSymptoms followUpIntent = iota
	intentQuestion
	intentClosing
	intentOther
)

var followUpSymptomKeywords = []string{
	"pain", "ache", "hurt", "fever", "cough",
	"nausea", "dizzy", "tired", "bleeding", "rash",
}

var followUpQuestionKeywords = []string{
	"why", "how", "what", "when", "should i", "can i",
}

var followUpClosingKeywords = []string{
	"thank", "bye", "goodbye", "no more", "that's all",
}

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}

// classifyFollowUpIntent decide la rama de seguimiento por membresía de
// keywords. La precedencia es fija: síntomas > pregunta > despedida > otro.
func classifyFollowUpIntent(text string) followUpIntent {
	lower := strings.ToLower(text)

	if containsAny(lower, followUpSymptomKeywords) || strings.Contains(lower, "symptom") {
		return intentNewSymptoms
	}
	if containsAny(lower, followUpQuestionKeywords) {
		return intentQuestion
	}
	if containsAny(lower, followUpClosingKeywords) {
		return intentClosing
	}
	return intentOther
}
