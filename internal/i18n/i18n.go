package i18n

import "strings"

// LanguageInfo describe un idioma soportado por el bot.
type LanguageInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	RTL        bool   `json:"rtl"`
}

const fallbackLanguage = "en"

// Translator resuelve claves de mensaje contra los catálogos estáticos.
// No tiene estado mutable: el idioma llega explícito en cada llamada.
type Translator struct {
	catalogs  map[string]map[string]string
	languages []LanguageInfo
}

// NewTranslator construye el traductor con los catálogos embebidos.
func NewTranslator() *Translator {
	return &Translator{
		catalogs: map[string]map[string]string{
			"en": catalogEN,
			"es": catalogES,
		},
		languages: []LanguageInfo{
			{Code: "en", Name: "English", NativeName: "English"},
			{Code: "es", Name: "Spanish", NativeName: "Español"},
		},
	}
}

// Translate resuelve una clave con cadena de fallback: idioma pedido,
// luego inglés, luego la clave cruda. Nunca falla.
func (t *Translator) Translate(key, lang string, params map[string]string) string {
	if catalog, ok := t.catalogs[lang]; ok {
		if tpl, ok := catalog[key]; ok {
			return interpolate(tpl, params)
		}
	}
	if tpl, ok := t.catalogs[fallbackLanguage][key]; ok {
		return interpolate(tpl, params)
	}
	return interpolate(key, params)
}

// Supported indica si existe catálogo para el código de idioma.
func (t *Translator) Supported(lang string) bool {
	_, ok := t.catalogs[lang]
	return ok
}

// Languages lista los idiomas disponibles.
func (t *Translator) Languages() []LanguageInfo {
	out := make([]LanguageInfo, len(t.languages))
	copy(out, t.languages)
	return out
}

// interpolate sustituye marcadores estilo {name} por los valores de params.
func interpolate(tpl string, params map[string]string) string {
	if len(params) == 0 {
		return tpl
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
