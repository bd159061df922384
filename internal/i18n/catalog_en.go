package i18n

// Catálogo inglés. Es también el idioma de fallback, así que toda clave
// usada por el motor o el bot tiene que existir acá.
var catalogEN = map[string]string{
	// Niveles de urgencia para mostrar al usuario.
	"emergency":  "Emergency",
	"urgent":     "Urgent",
	"outpatient": "Outpatient",
	"self_care":  "Self-Care",

	// Conversación del bot.
	"bot_greeting_1":      "Hello! I'm your healthcare triage assistant. I'm here to help assess your symptoms and guide you to appropriate care.",
	"bot_greeting_2":      "Please describe your symptoms or health concerns in your own words. For example: 'I have a headache and feel tired' or 'My child has fever and cough'.",
	"bot_greeting_3":      "Important: If this is a life-threatening emergency, please call emergency services (911/108) immediately.",
	"symptom_acknowledge": "Thank you for sharing your symptoms. Let me assess this information.",
	"emergency_alert_1":   "🚨 MEDICAL EMERGENCY DETECTED 🚨",
	"emergency_alert_2":   "Your symptoms indicate a potential medical emergency.",
	"emergency_alert_3":   "Please call emergency services immediately (911/108) or go to the nearest emergency room.",
	"emergency_alert_4":   "Do not delay seeking immediate medical attention.",
	"emergency_services":  "Emergency services: {numbers}",
	"assessment_result":   "Assessment: {condition}",
	"urgency_level":       "Urgency Level: {urgency}",
	"recommendations_header": "Recommendations:",
	"next_steps_header":      "Suggested next steps:",
	"followup_question":      "Do you have any questions about this assessment, or would you like to discuss any other symptoms?",

	// Recomendaciones y siguientes pasos por nivel.
	"emergency_rec_1":  "This may be a medical emergency",
	"emergency_rec_2":  "Do not delay seeking immediate medical attention",
	"emergency_rec_3":  "Do not drive yourself - call for emergency transport if needed",
	"emergency_step_1": "Call emergency services immediately (911/108)",
	"emergency_step_2": "Go to the nearest emergency room",
	"emergency_step_3": "Contact emergency contacts or family members",

	"urgent_rec_1":  "Your symptoms require prompt medical attention",
	"urgent_rec_2":  "Seek care within the next 24 hours",
	"urgent_rec_3":  "Monitor symptoms closely for any worsening",
	"urgent_step_1": "Contact your primary care doctor",
	"urgent_step_2": "Visit an urgent care clinic",
	"urgent_step_3": "Consider telemedicine consultation",
	"urgent_step_4": "Go to ER if symptoms worsen",

	"outpatient_rec_1":  "Your symptoms should be evaluated by a healthcare provider",
	"outpatient_rec_2":  "Schedule an appointment within the next few days",
	"outpatient_rec_3":  "Monitor symptoms and note any changes",
	"outpatient_step_1": "Schedule telemedicine consultation",
	"outpatient_step_2": "Book appointment with primary care doctor",
	"outpatient_step_3": "Visit local clinic",
	"outpatient_step_4": "Try home remedies while waiting for appointment",

	"selfcare_rec_1":  "Your symptoms appear mild and may be managed at home",
	"selfcare_rec_2":  "Continue monitoring your symptoms",
	"selfcare_rec_3":  "Seek medical attention if symptoms worsen or persist",
	"selfcare_step_1": "Rest and stay hydrated",
	"selfcare_step_2": "Use over-the-counter remedies as appropriate",
	"selfcare_step_3": "Monitor symptoms for 24-48 hours",
	"selfcare_step_4": "Contact healthcare provider if no improvement",

	// Etiquetas de condición por categoría.
	"condition_emergency":                   "Emergency condition detected",
	"condition_urgent_infection":            "Urgent infection condition",
	"condition_urgent_pain":                 "Urgent pain condition",
	"condition_urgent_respiratory":          "Urgent respiratory condition",
	"condition_urgent_pediatric_urgent":     "Urgent pediatric condition",
	"condition_outpatient_mild_infection":   "Outpatient mild infection condition",
	"condition_outpatient_digestive":        "Outpatient digestive condition",
	"condition_outpatient_skin":             "Outpatient skin condition",
	"condition_outpatient_musculoskeletal":  "Outpatient musculoskeletal condition",
	"condition_selfcare_minor":              "Minor self-care condition",
	"condition_general":                     "General symptoms requiring evaluation",

	// Recursos útiles por nivel.
	"helpful_emergency":  "Emergency contacts: Call 911 (US) or 108 (India) immediately.",
	"helpful_urgent":     "Find urgent care centers: Use Google Maps to search \"urgent care near me\" or contact your doctor's office.",
	"helpful_outpatient": "Telemedicine options: Many healthcare providers offer video consultations. Contact your insurance provider for covered options.",
	"helpful_selfcare":   "Health information: Reliable sources include CDC.gov, Mayo Clinic, or your healthcare provider's patient portal.",

	// Respuestas de seguimiento.
	"followup_assessment_explanation": "Based on the symptoms you described, my assessment considers several factors including severity, duration, and potential red flags for emergency conditions.",
	"followup_emergency_explanation":  "Your symptoms matched emergency warning signs that require immediate medical attention for your safety.",
	"followup_urgent_explanation":     "Your symptoms suggest a condition that should be evaluated promptly to prevent complications.",
	"followup_manageable_explanation": "Your symptoms appear to be manageable with appropriate care and monitoring.",
	"followup_goodbye_1":              "You're welcome! Remember to seek medical attention if your symptoms worsen or you develop new concerning symptoms.",
	"followup_goodbye_2":              "Take care, and don't hesitate to use this service again if needed. Stay safe!",
	"followup_general_1":              "I understand your concern. If you have specific questions about your symptoms or the recommendations, please feel free to ask.",
	"followup_general_2":              "You can also describe any new or additional symptoms you might be experiencing.",
	"default_response":                "I understand. Is there anything else you'd like to discuss about your health?",

	// Reporte clínico.
	"report_title":            "Triage Session Report",
	"report_session":          "Session: {session_id}",
	"report_patient":          "Patient: {user_id}",
	"report_date":             "Date: {date}",
	"report_symptoms_header":  "Reported symptoms:",
	"report_no_symptoms":      "No symptoms recorded.",
	"report_assessment_header": "Triage assessment:",
	"report_no_assessment":    "No assessment performed.",
	"report_confidence":       "Confidence: {confidence}",
	"report_red_flags_header": "Red flags:",
	"report_disclaimer":       "This is an AI-powered triage tool. It is not a substitute for professional medical advice.",

	// Mensajes de los webhooks de mensajería.
	"sms_fallback":  "Sorry, I'm having technical difficulties. Please try again later.",
	"sms_truncated": "[Message truncated - reply for more info]",
}
