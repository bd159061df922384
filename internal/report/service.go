package report

import (
	"bytes"
	"fmt"

	"github.com/signintech/gopdf"
	"go.uber.org/zap"

	"triage-bot/internal/domain"
	"triage-bot/internal/i18n"
)

const reportFontName = "DejaVu"

// Rutas habituales de DejaVuSans según la distro del contenedor.
var defaultFontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// Service genera el PDF de resumen de sesión para revisión clínica.
type Service struct {
	logger   *zap.Logger
	tr       *i18n.Translator
	fontPath string
}

func NewService(logger *zap.Logger, tr *i18n.Translator, fontPath string) *Service {
	return &Service{logger: logger, tr: tr, fontPath: fontPath}
}

// RenderSessionReport arma el documento A4 con los datos del resumen.
func (s *Service) RenderSessionReport(summary domain.SessionSummary, lang string) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := s.loadFont(&pdf); err != nil {
		return nil, err
	}

	t := func(key string, params map[string]string) string {
		return s.tr.Translate(key, lang, params)
	}

	if err := pdf.SetFont(reportFontName, "", 18); err != nil {
		return nil, err
	}
	pdf.Cell(nil, t("report_title", nil))
	pdf.Br(28)

	if err := pdf.SetFont(reportFontName, "", 11); err != nil {
		return nil, err
	}
	pdf.Cell(nil, t("report_session", map[string]string{"session_id": summary.SessionID}))
	pdf.Br(14)
	pdf.Cell(nil, t("report_patient", map[string]string{"user_id": summary.UserID}))
	pdf.Br(14)
	pdf.Cell(nil, t("report_date", map[string]string{"date": summary.CreatedAt.Format("2006-01-02 15:04 MST")}))
	pdf.Br(22)

	if err := pdf.SetFont(reportFontName, "", 13); err != nil {
		return nil, err
	}
	pdf.Cell(nil, t("report_symptoms_header", nil))
	pdf.Br(14)
	if err := pdf.SetFont(reportFontName, "", 10); err != nil {
		return nil, err
	}
	if summary.Symptoms == "" {
		pdf.Cell(nil, t("report_no_symptoms", nil))
		pdf.Br(12)
	} else {
		s.writeWrapped(&pdf, summary.Symptoms)
	}
	pdf.Br(14)

	if err := pdf.SetFont(reportFontName, "", 13); err != nil {
		return nil, err
	}
	pdf.Cell(nil, t("report_assessment_header", nil))
	pdf.Br(14)
	if err := pdf.SetFont(reportFontName, "", 10); err != nil {
		return nil, err
	}
	if summary.TriageResult == nil {
		pdf.Cell(nil, t("report_no_assessment", nil))
		pdf.Br(12)
	} else {
		result := summary.TriageResult
		pdf.Cell(nil, t("urgency_level", map[string]string{"urgency": string(result.Urgency)}))
		pdf.Br(12)
		pdf.Cell(nil, t("assessment_result", map[string]string{"condition": result.Condition}))
		pdf.Br(12)
		pdf.Cell(nil, t("report_confidence", map[string]string{"confidence": fmt.Sprintf("%.0f%%", result.Confidence*100)}))
		pdf.Br(16)

		pdf.Cell(nil, t("recommendations_header", nil))
		pdf.Br(12)
		for _, rec := range result.Recommendations {
			s.writeWrapped(&pdf, "- "+rec)
		}
		pdf.Br(8)
		pdf.Cell(nil, t("next_steps_header", nil))
		pdf.Br(12)
		for _, step := range result.NextSteps {
			s.writeWrapped(&pdf, "- "+step)
		}

		if len(result.RedFlags) > 0 {
			pdf.Br(8)
			pdf.Cell(nil, t("report_red_flags_header", nil))
			pdf.Br(12)
			for _, flag := range result.RedFlags {
				s.writeWrapped(&pdf, "- "+flag)
			}
		}
	}

	pdf.SetY(800)
	if err := pdf.SetFont(reportFontName, "", 8); err != nil {
		return nil, err
	}
	pdf.Cell(nil, t("report_disclaimer", nil))

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// loadFont intenta la ruta configurada y después las rutas conocidas.
func (s *Service) loadFont(pdf *gopdf.GoPdf) error {
	paths := defaultFontPaths
	if s.fontPath != "" {
		paths = append([]string{s.fontPath}, paths...)
	}

	var lastErr error
	for _, path := range paths {
		err := pdf.AddTTFFont(reportFontName, path)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	s.logger.Error("report font load failed", zap.Error(lastErr))
	return fmt.Errorf("load report font: %w", lastErr)
}

func (s *Service) writeWrapped(pdf *gopdf.GoPdf, text string) {
	lines, err := pdf.SplitText(text, 480)
	if err != nil {
		lines = []string{text}
	}
	for _, line := range lines {
		pdf.Cell(nil, line)
		pdf.Br(12)
	}
}
