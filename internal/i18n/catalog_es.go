package i18n

// Catálogo español. Las claves que falten acá caen al catálogo inglés.
var catalogES = map[string]string{
	"emergency":  "Emergencia",
	"urgent":     "Urgente",
	"outpatient": "Ambulatorio",
	"self_care":  "Autocuidado",

	"bot_greeting_1":      "¡Hola! Soy tu asistente de triaje médico. Estoy aquí para ayudarte a evaluar tus síntomas y guiarte hacia la atención apropiada.",
	"bot_greeting_2":      "Por favor describe tus síntomas o preocupaciones de salud con tus propias palabras. Por ejemplo: \"Tengo dolor de cabeza y me siento cansado\" o \"Mi hijo tiene fiebre y tos\".",
	"bot_greeting_3":      "Importante: Si esta es una emergencia que pone en peligro la vida, llama a los servicios de emergencia (911/108) inmediatamente.",
	"symptom_acknowledge": "Gracias por compartir tus síntomas. Déjame evaluar esta información.",
	"emergency_alert_1":   "🚨 EMERGENCIA MÉDICA DETECTADA 🚨",
	"emergency_alert_2":   "Tus síntomas indican una posible emergencia médica.",
	"emergency_alert_3":   "Llama a los servicios de emergencia inmediatamente (911/108) o acude a la sala de emergencias más cercana.",
	"emergency_alert_4":   "No demores en buscar atención médica inmediata.",
	"emergency_services":  "Servicios de emergencia: {numbers}",
	"assessment_result":   "Evaluación: {condition}",
	"urgency_level":       "Nivel de urgencia: {urgency}",
	"recommendations_header": "Recomendaciones:",
	"next_steps_header":      "Siguientes pasos sugeridos:",
	"followup_question":      "¿Tienes alguna pregunta sobre esta evaluación, o te gustaría hablar de otros síntomas?",

	"emergency_rec_1":  "Esto puede ser una emergencia médica",
	"emergency_rec_2":  "No demores en buscar atención médica inmediata",
	"emergency_rec_3":  "No conduzcas tú mismo - pide transporte de emergencia si es necesario",
	"emergency_step_1": "Llama a los servicios de emergencia inmediatamente (911/108)",
	"emergency_step_2": "Acude a la sala de emergencias más cercana",
	"emergency_step_3": "Contacta a tus contactos de emergencia o familiares",

	"urgent_rec_1":  "Tus síntomas requieren atención médica pronta",
	"urgent_rec_2":  "Busca atención dentro de las próximas 24 horas",
	"urgent_rec_3":  "Vigila de cerca cualquier empeoramiento de los síntomas",
	"urgent_step_1": "Contacta a tu médico de cabecera",
	"urgent_step_2": "Visita una clínica de atención urgente",
	"urgent_step_3": "Considera una consulta de telemedicina",
	"urgent_step_4": "Acude a emergencias si los síntomas empeoran",

	"outpatient_rec_1":  "Tus síntomas deberían ser evaluados por un profesional de salud",
	"outpatient_rec_2":  "Agenda una cita dentro de los próximos días",
	"outpatient_rec_3":  "Vigila los síntomas y anota cualquier cambio",
	"outpatient_step_1": "Agenda una consulta de telemedicina",
	"outpatient_step_2": "Reserva cita con tu médico de cabecera",
	"outpatient_step_3": "Visita la clínica local",
	"outpatient_step_4": "Prueba remedios caseros mientras esperas la cita",

	"selfcare_rec_1":  "Tus síntomas parecen leves y pueden manejarse en casa",
	"selfcare_rec_2":  "Continúa monitoreando tus síntomas",
	"selfcare_rec_3":  "Busca atención médica si los síntomas empeoran o persisten",
	"selfcare_step_1": "Descansa y mantente hidratado",
	"selfcare_step_2": "Usa remedios de venta libre según corresponda",
	"selfcare_step_3": "Monitorea los síntomas por 24-48 horas",
	"selfcare_step_4": "Contacta a un profesional de salud si no hay mejoría",

	"condition_emergency":                  "Condición de emergencia detectada",
	"condition_urgent_infection":           "Condición urgente de infección",
	"condition_urgent_pain":                "Condición urgente de dolor",
	"condition_urgent_respiratory":         "Condición urgente respiratoria",
	"condition_urgent_pediatric_urgent":    "Condición urgente pediátrica",
	"condition_outpatient_mild_infection":  "Condición ambulatoria de infección leve",
	"condition_outpatient_digestive":       "Condición ambulatoria digestiva",
	"condition_outpatient_skin":            "Condición ambulatoria de piel",
	"condition_outpatient_musculoskeletal": "Condición ambulatoria musculoesquelética",
	"condition_selfcare_minor":             "Condición menor de autocuidado",
	"condition_general":                    "Síntomas generales que requieren evaluación",

	"helpful_emergency":  "Contactos de emergencia: Llama al 911 (EE.UU.) o 108 (India) inmediatamente.",
	"helpful_urgent":     "Encuentra centros de atención urgente: Usa Google Maps para buscar \"atención urgente cerca de mí\" o contacta el consultorio de tu médico.",
	"helpful_outpatient": "Opciones de telemedicina: Muchos proveedores de salud ofrecen videoconsultas. Contacta a tu aseguradora para conocer opciones cubiertas.",
	"helpful_selfcare":   "Información de salud: Fuentes confiables incluyen CDC.gov, Mayo Clinic o el portal de pacientes de tu proveedor de salud.",

	"followup_assessment_explanation": "Según los síntomas que describiste, mi evaluación considera varios factores incluyendo severidad, duración y posibles señales de alarma de condiciones de emergencia.",
	"followup_emergency_explanation":  "Tus síntomas coincidieron con señales de alarma de emergencia que requieren atención médica inmediata por tu seguridad.",
	"followup_urgent_explanation":     "Tus síntomas sugieren una condición que debería evaluarse pronto para prevenir complicaciones.",
	"followup_manageable_explanation": "Tus síntomas parecen manejables con el cuidado y monitoreo apropiados.",
	"followup_goodbye_1":              "¡De nada! Recuerda buscar atención médica si tus síntomas empeoran o desarrollas nuevos síntomas preocupantes.",
	"followup_goodbye_2":              "Cuídate, y no dudes en usar este servicio de nuevo si lo necesitas. ¡Mantente a salvo!",
	"followup_general_1":              "Entiendo tu preocupación. Si tienes preguntas específicas sobre tus síntomas o las recomendaciones, no dudes en preguntar.",
	"followup_general_2":              "También puedes describir cualquier síntoma nuevo o adicional que estés experimentando.",
	"default_response":                "Entiendo. ¿Hay algo más que te gustaría discutir sobre tu salud?",

	"report_title":            "Reporte de Sesión de Triaje",
	"report_session":          "Sesión: {session_id}",
	"report_patient":          "Paciente: {user_id}",
	"report_date":             "Fecha: {date}",
	"report_symptoms_header":  "Síntomas reportados:",
	"report_no_symptoms":      "Sin síntomas registrados.",
	"report_assessment_header": "Evaluación de triaje:",
	"report_no_assessment":    "Sin evaluación realizada.",
	"report_confidence":       "Confianza: {confidence}",
	"report_red_flags_header": "Señales de alarma:",
	"report_disclaimer":       "Esta es una herramienta de triaje con IA. No sustituye el consejo médico profesional.",

	"sms_fallback":  "Lo siento, estoy teniendo dificultades técnicas. Por favor intenta de nuevo más tarde.",
	"sms_truncated": "[Mensaje truncado - responde para más información]",
}
