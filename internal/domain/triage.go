package domain

// UrgencyLevel es la enumeración cerrada de niveles de urgencia clínica.
// Los valores string son los que viajan por el wire.
type UrgencyLevel string

const (
	UrgencySelfCare   UrgencyLevel = "self-care"
	UrgencyOutpatient UrgencyLevel = "outpatient"
	UrgencyUrgent     UrgencyLevel = "urgent"
	UrgencyEmergency  UrgencyLevel = "emergency"
)

// Severity ordena los niveles de más a menos severo para desempates.
func (u UrgencyLevel) Severity() int {
	switch u {
	case UrgencyEmergency:
		return 3
	case UrgencyUrgent:
		return 2
	case UrgencyOutpatient:
		return 1
	case UrgencySelfCare:
		return 0
	default:
		return -1
	}
}

// TriageResult es el valor inmutable que produce una clasificación.
type TriageResult struct {
	Urgency         UrgencyLevel `json:"urgency"`
	Condition       string       `json:"condition"`
	Confidence      float64      `json:"confidence"`
	Recommendations []string     `json:"recommendations"`
	NextSteps       []string     `json:"next_steps"`
	RedFlags        []string     `json:"red_flags"`
}
