package service

// SymptomCategory es una sub-agrupación nombrada de frases dentro del
// catálogo de un nivel de urgencia.
type SymptomCategory string

const (
	CategoryChestPain          SymptomCategory = "chest_pain"
	CategoryBreathing          SymptomCategory = "breathing"
	CategoryNeurological       SymptomCategory = "neurological"
	CategoryBleeding           SymptomCategory = "bleeding"
	CategoryTrauma             SymptomCategory = "trauma"
	CategoryAllergic           SymptomCategory = "allergic"
	CategoryPediatricEmergency SymptomCategory = "pediatric_emergency"

	CategoryInfection       SymptomCategory = "infection"
	CategoryPain            SymptomCategory = "pain"
	CategoryRespiratory     SymptomCategory = "respiratory"
	CategoryPediatricUrgent SymptomCategory = "pediatric_urgent"

	CategoryMildInfection   SymptomCategory = "mild_infection"
	CategoryDigestive       SymptomCategory = "digestive"
	CategorySkin            SymptomCategory = "skin"
	CategoryMusculoskeletal SymptomCategory = "musculoskeletal"

	CategoryMinor SymptomCategory = "minor"
)

// CategoryCatalog asocia una categoría con sus frases literales. Los
// catálogos son slices para que el orden de iteración sea parte de la
// definición: la primera frase de la primera categoría que matchea gana.
type CategoryCatalog struct {
	Category SymptomCategory
	Phrases  []string
}

// Señales de alarma: cualquier match escala incondicionalmente a emergencia.
var redFlagCatalog = []CategoryCatalog{
	{CategoryChestPain, []string{
		"chest pain", "chest tightness", "crushing chest pain",
		"squeezing chest", "pressure in chest",
	}},
	{CategoryBreathing, []string{
		"difficulty breathing", "shortness of breath", "can't breathe",
		"gasping for air", "wheezing severely",
	}},
	{CategoryNeurological, []string{
		"sudden weakness", "facial drooping", "slurred speech",
		"severe headache", "confusion", "loss of consciousness",
		"seizure", "stroke symptoms",
	}},
	{CategoryBleeding, []string{
		"severe bleeding", "uncontrolled bleeding", "heavy bleeding",
		"bleeding that won't stop",
	}},
	{CategoryTrauma, []string{
		"head injury", "severe injury", "broken bone visible",
		"deep cut", "severe burn",
	}},
	{CategoryAllergic, []string{
		"severe allergic reaction", "anaphylaxis", "swollen throat",
		"difficulty swallowing due to swelling",
	}},
	{CategoryPediatricEmergency, []string{
		"infant fever over 100.4", "baby not responding",
		"child difficulty breathing", "severe dehydration in child",
	}},
}

// Condiciones urgentes: visita clínica dentro de 24 horas.
var urgentCatalog = []CategoryCatalog{
	{CategoryInfection, []string{
		"high fever", "fever over 101", "fever for more than 3 days",
		"severe sore throat", "difficulty swallowing",
	}},
	{CategoryPain, []string{
		"severe abdominal pain", "intense pain", "unbearable pain",
		"sudden severe pain",
	}},
	{CategoryRespiratory, []string{
		"persistent cough with fever", "coughing up blood",
		"chest congestion with fever",
	}},
	{CategoryPediatricUrgent, []string{
		"child fever over 102", "child vomiting repeatedly",
		"child severe cough", "child rash with fever",
	}},
}

// Condiciones ambulatorias: telemedicina o visita a clínica.
var outpatientCatalog = []CategoryCatalog{
	{CategoryMildInfection, []string{
		"sore throat", "mild fever", "runny nose", "congestion",
		"cough without fever", "ear pain",
	}},
	{CategoryDigestive, []string{
		"nausea", "mild stomach pain", "indigestion", "heartburn",
	}},
	{CategorySkin, []string{
		"rash", "itchy skin", "minor cut", "bruise",
	}},
	{CategoryMusculoskeletal, []string{
		"muscle ache", "joint pain", "back pain", "strain",
	}},
}

// Condiciones de autocuidado.
var selfCareCatalog = []CategoryCatalog{
	{CategoryMinor, []string{
		"mild headache", "fatigue", "tired", "stress",
		"minor ache", "slight discomfort",
	}},
}

// Correcciones de errores típicos de transcripción de voz, aplicadas como
// reemplazo literal de substrings en el orden de la tabla.
var voiceCorrections = []struct {
	from string
	to   string
}{
	{"chest pane", "chest pain"},
	{"difficultly breathing", "difficulty breathing"},
	{"shortness of breathe", "shortness of breath"},
	{"head egg", "headache"},
	{"head ache", "headache"},
	{"stomach egg", "stomach ache"},
	{"feel dizzy", "dizzy"},
	{"throwing up", "vomiting"},
	{"can't breath", "difficulty breathing"},
	{"cannot breath", "difficulty breathing"},
	{"high temperature", "fever"},
	{"running temperature", "fever"},
	{"heart attack", "chest pain"},
	{"stroke symptoms", "sudden weakness"},
}
