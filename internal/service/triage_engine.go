package service

import (
	"strings"

	"triage-bot/internal/domain"
	"triage-bot/internal/i18n"
)

// Confianza fija por nivel. El frontend y los tests dependen de estos
// valores exactos, no se calculan a partir de la cantidad de matches.
const (
	confidenceEmergency  = 0.9
	confidenceUrgent     = 0.8
	confidenceOutpatient = 0.7
	confidenceSelfCare   = 0.6
	confidenceDefault    = 0.5
)

// TriageEngine clasifica texto libre de síntomas en un nivel de urgencia.
// Es puro: no guarda estado entre llamadas y nunca devuelve error; cualquier
// input, incluso vacío o basura, degrada al fallback ambulatorio.
type TriageEngine struct {
	tr *i18n.Translator
}

func NewTriageEngine(tr *i18n.Translator) *TriageEngine {
	return &TriageEngine{tr: tr}
}

// normalizeSymptomText baja a minúsculas y aplica la tabla de correcciones
// de voz en orden. El matching siempre corre contra esta forma normalizada.
func normalizeSymptomText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, c := range voiceCorrections {
		text = strings.ReplaceAll(text, c.from, c.to)
	}
	return text
}

// matchRedFlags junta todas las frases de alarma presentes, en orden de
// catálogo. La recolección es exhaustiva: se usa para explicar la decisión.
func matchRedFlags(normalized string) []string {
	found := []string{}
	for _, entry := range redFlagCatalog {
		for _, phrase := range entry.Phrases {
			if strings.Contains(normalized, phrase) {
				found = append(found, phrase)
			}
		}
	}
	return found
}

// firstMatch devuelve la primera categoría del catálogo con alguna frase
// contenida en el texto. El orden de definición decide el desempate.
func firstMatch(catalog []CategoryCatalog, normalized string) (SymptomCategory, bool) {
	for _, entry := range catalog {
		for _, phrase := range entry.Phrases {
			if strings.Contains(normalized, phrase) {
				return entry.Category, true
			}
		}
	}
	return "", false
}

// CheckRedFlags expone el escaneo de señales de alarma sobre texto crudo.
func (e *TriageEngine) CheckRedFlags(text string) (bool, []string) {
	flags := matchRedFlags(normalizeSymptomText(text))
	return len(flags) > 0, flags
}

// Triage clasifica el texto y arma el resultado completo. El idioma solo
// afecta el render de los strings de salida, nunca la clasificación.
func (e *TriageEngine) Triage(text, lang string) domain.TriageResult {
	normalized := normalizeSymptomText(text)

	var (
		urgency      domain.UrgencyLevel
		conditionKey string
		confidence   float64
	)

	redFlags := matchRedFlags(normalized)
	if len(redFlags) > 0 {
		urgency = domain.UrgencyEmergency
		conditionKey = "condition_emergency"
		confidence = confidenceEmergency
	} else if cat, ok := firstMatch(urgentCatalog, normalized); ok {
		urgency = domain.UrgencyUrgent
		conditionKey = "condition_urgent_" + string(cat)
		confidence = confidenceUrgent
	} else if cat, ok := firstMatch(outpatientCatalog, normalized); ok {
		urgency = domain.UrgencyOutpatient
		conditionKey = "condition_outpatient_" + string(cat)
		confidence = confidenceOutpatient
	} else if cat, ok := firstMatch(selfCareCatalog, normalized); ok {
		urgency = domain.UrgencySelfCare
		conditionKey = "condition_selfcare_" + string(cat)
		confidence = confidenceSelfCare
	} else {
		// Fallback conservador: lo inclasificable nunca es autocuidado.
		urgency = domain.UrgencyOutpatient
		conditionKey = "condition_general"
		confidence = confidenceDefault
	}

	recommendations, nextSteps := e.tierGuidance(urgency, lang)

	return domain.TriageResult{
		Urgency:         urgency,
		Condition:       e.tr.Translate(conditionKey, lang, nil),
		Confidence:      confidence,
		Recommendations: recommendations,
		NextSteps:       nextSteps,
		RedFlags:        redFlags,
	}
}

// tierGuidance arma recomendaciones y siguientes pasos fijos por nivel.
func (e *TriageEngine) tierGuidance(urgency domain.UrgencyLevel, lang string) ([]string, []string) {
	var recKeys, stepKeys []string
	switch urgency {
	case domain.UrgencyEmergency:
		recKeys = []string{"emergency_rec_1", "emergency_rec_2", "emergency_rec_3"}
		stepKeys = []string{"emergency_step_1", "emergency_step_2", "emergency_step_3"}
	case domain.UrgencyUrgent:
		recKeys = []string{"urgent_rec_1", "urgent_rec_2", "urgent_rec_3"}
		stepKeys = []string{"urgent_step_1", "urgent_step_2", "urgent_step_3", "urgent_step_4"}
	case domain.UrgencyOutpatient:
		recKeys = []string{"outpatient_rec_1", "outpatient_rec_2", "outpatient_rec_3"}
		stepKeys = []string{"outpatient_step_1", "outpatient_step_2", "outpatient_step_3", "outpatient_step_4"}
	default:
		recKeys = []string{"selfcare_rec_1", "selfcare_rec_2", "selfcare_rec_3"}
		stepKeys = []string{"selfcare_step_1", "selfcare_step_2", "selfcare_step_3", "selfcare_step_4"}
	}

	recommendations := make([]string, 0, len(recKeys))
	for _, key := range recKeys {
		recommendations = append(recommendations, e.tr.Translate(key, lang, nil))
	}
	nextSteps := make([]string, 0, len(stepKeys))
	for _, key := range stepKeys {
		nextSteps = append(nextSteps, e.tr.Translate(key, lang, nil))
	}
	return recommendations, nextSteps
}
