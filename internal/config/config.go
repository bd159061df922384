package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort         string `env:"HTTP_PORT" envDefault:"8080"`
	DefaultLanguage  string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	EmergencyNumbers string `env:"EMERGENCY_NUMBERS" envDefault:"911 (US) or 108 (India)"`
	ReportFontPath   string `env:"REPORT_FONT_PATH"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
