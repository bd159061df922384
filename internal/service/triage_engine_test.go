package service

import (
	"reflect"
	"strings"
	"testing"

	"triage-bot/internal/domain"
	"triage-bot/internal/i18n"
)

func newTestEngine() *TriageEngine {
	return NewTriageEngine(i18n.NewTranslator())
}

func TestTriage_Totality(t *testing.T) {
	engine := newTestEngine()

	inputs := []string{
		"",
		"   ",
		"xyz nonsense words",
		strings.Repeat("lorem ipsum dolor ", 5000),
		"me duele la cabeza 🤕 ありがとう",
		"\x00\x01\x02",
	}

	valid := map[domain.UrgencyLevel]bool{
		domain.UrgencyEmergency:  true,
		domain.UrgencyUrgent:     true,
		domain.UrgencyOutpatient: true,
		domain.UrgencySelfCare:   true,
	}

	for _, input := range inputs {
		result := engine.Triage(input, "en")
		if !valid[result.Urgency] {
			t.Fatalf("unexpected urgency %q for input %q", result.Urgency, input)
		}
		if result.Confidence <= 0 || result.Confidence > 1 {
			t.Fatalf("confidence out of (0,1]: %v for input %q", result.Confidence, input)
		}
		if result.RedFlags == nil {
			t.Fatalf("expected non-nil red flags for input %q", input)
		}
	}
}

func TestTriage_DefaultFallback(t *testing.T) {
	engine := newTestEngine()

	for _, input := range []string{"", "xyz nonsense words"} {
		result := engine.Triage(input, "en")
		if result.Urgency != domain.UrgencyOutpatient {
			t.Fatalf("expected outpatient fallback for %q, got %q", input, result.Urgency)
		}
		if result.Confidence != 0.5 {
			t.Fatalf("expected confidence 0.5 for %q, got %v", input, result.Confidence)
		}
		if len(result.RedFlags) != 0 {
			t.Fatalf("expected no red flags for %q, got %v", input, result.RedFlags)
		}
	}
}

func TestTriage_RedFlagPrecedence(t *testing.T) {
	engine := newTestEngine()

	// Keywords de niveles menores presentes, la señal de alarma domina igual.
	result := engine.Triage("I have a mild headache, a runny nose and chest pain", "en")
	if result.Urgency != domain.UrgencyEmergency {
		t.Fatalf("expected emergency, got %q", result.Urgency)
	}
	if result.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", result.Confidence)
	}
	if len(result.RedFlags) == 0 || result.RedFlags[0] != "chest pain" {
		t.Fatalf("expected chest pain red flag, got %v", result.RedFlags)
	}
}

func TestTriage_ConfidencePerTier(t *testing.T) {
	engine := newTestEngine()

	cases := []struct {
		input      string
		urgency    domain.UrgencyLevel
		confidence float64
	}{
		{"crushing chest pain", domain.UrgencyEmergency, 0.9},
		{"I have a high fever since yesterday", domain.UrgencyUrgent, 0.8},
		{"runny nose and sneezing", domain.UrgencyOutpatient, 0.7},
		{"feeling tired all week", domain.UrgencySelfCare, 0.6},
		{"qwerty asdf", domain.UrgencyOutpatient, 0.5},
	}

	for _, tc := range cases {
		result := engine.Triage(tc.input, "en")
		if result.Urgency != tc.urgency {
			t.Fatalf("input %q: expected %q, got %q", tc.input, tc.urgency, result.Urgency)
		}
		if result.Confidence != tc.confidence {
			t.Fatalf("input %q: expected confidence %v, got %v", tc.input, tc.confidence, result.Confidence)
		}
	}
}

func TestTriage_Scenarios(t *testing.T) {
	engine := newTestEngine()

	result := engine.Triage("I have a mild headache and slight fatigue.", "en")
	if result.Urgency != domain.UrgencySelfCare {
		t.Fatalf("mild headache: expected self-care, got %q", result.Urgency)
	}
	if len(result.RedFlags) != 0 {
		t.Fatalf("mild headache: expected no red flags, got %v", result.RedFlags)
	}

	// "fever for 3 days" no contiene la frase urgente literal
	// "fever for more than 3 days": cae al match ambulatorio "sore throat".
	result = engine.Triage("I've had fever for 3 days and sore throat.", "en")
	if result.Urgency != domain.UrgencyOutpatient {
		t.Fatalf("fever 3 days: expected outpatient, got %q", result.Urgency)
	}
	if result.Confidence != 0.7 {
		t.Fatalf("fever 3 days: expected confidence 0.7, got %v", result.Confidence)
	}

	result = engine.Triage("I have severe chest pain and difficulty breathing.", "en")
	if result.Urgency != domain.UrgencyEmergency {
		t.Fatalf("chest pain: expected emergency, got %q", result.Urgency)
	}
	var hasChest, hasBreathing bool
	for _, flag := range result.RedFlags {
		if flag == "chest pain" {
			hasChest = true
		}
		if flag == "difficulty breathing" {
			hasBreathing = true
		}
	}
	if !hasChest || !hasBreathing {
		t.Fatalf("expected chest pain and breathing flags, got %v", result.RedFlags)
	}

	result = engine.Triage("My child has high fever, cough, and difficulty breathing.", "en")
	if result.Urgency != domain.UrgencyEmergency {
		t.Fatalf("child breathing: expected emergency, got %q", result.Urgency)
	}
}

func TestTriage_VoiceCorrections(t *testing.T) {
	engine := newTestEngine()

	result := engine.Triage("I woke up with chest pane", "en")
	if result.Urgency != domain.UrgencyEmergency {
		t.Fatalf("chest pane: expected emergency after correction, got %q", result.Urgency)
	}

	result = engine.Triage("help, I can't breath", "en")
	if result.Urgency != domain.UrgencyEmergency {
		t.Fatalf("can't breath: expected emergency after correction, got %q", result.Urgency)
	}
}

func TestTriage_Idempotence(t *testing.T) {
	engine := newTestEngine()

	const input = "I have severe chest pain and a rash"
	first := engine.Triage(input, "en")
	second := engine.Triage(input, "en")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestTriage_LanguageOnlyAffectsRendering(t *testing.T) {
	engine := newTestEngine()

	en := engine.Triage("sudden weakness", "en")
	es := engine.Triage("sudden weakness", "es")
	if en.Urgency != es.Urgency || en.Confidence != es.Confidence {
		t.Fatalf("classification changed with language: %+v vs %+v", en, es)
	}
	if en.Condition == es.Condition {
		t.Fatalf("expected localized condition labels, got %q twice", en.Condition)
	}
}

func TestCheckRedFlags(t *testing.T) {
	engine := newTestEngine()

	found, flags := engine.CheckRedFlags("severe bleeding and a seizure")
	if !found {
		t.Fatalf("expected red flags")
	}
	if len(flags) != 2 {
		t.Fatalf("expected 2 flags, got %v", flags)
	}

	found, flags = engine.CheckRedFlags("just a bit sleepy")
	if found || len(flags) != 0 {
		t.Fatalf("expected no flags, got %v", flags)
	}
}
