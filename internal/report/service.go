package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/signintech/gopdf"

	"community-seva/internal/donation"
	"community-seva/internal/platform/sentinel"
)

// Notifier delivers messages and files to a chat.
// *telegram.Client satisfies it.
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, fileData []byte, fileName, caption string) error
}

const fontFamily = "DejaVu"

// Common DejaVuSans locations on Alpine and Debian images.
var defaultFontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

const (
	pageMargin   = 50.0
	textWidth    = 495.0
	pageBottom   = 790.0
	lineSpacing  = 4.0
	sectionSpace = 12.0
)

type Service struct {
	notifier Notifier
	chatID   int64
	fonts    []string
	logger   *slog.Logger
}

// NewService builds the report service. notifier may be nil, and chatID zero,
// when coordinator delivery is not configured; rendering still works.
func NewService(notifier Notifier, chatID int64, fontPath string, logger *slog.Logger) *Service {
	fonts := defaultFontPaths
	if fontPath != "" {
		fonts = append([]string{fontPath}, defaultFontPaths...)
	}
	return &Service{
		notifier: notifier,
		chatID:   chatID,
		fonts:    fonts,
		logger:   logger,
	}
}

// Enabled reports whether coordinator delivery is configured.
func (s *Service) Enabled() bool {
	return s.notifier != nil && s.chatID != 0
}

// Render lays the screening out as an A4 PDF.
func (s *Service) Render(ctx context.Context, sc donation.Screening) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.SetMargins(pageMargin, pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	if err := s.loadFont(ctx, pdf); err != nil {
		return nil, err
	}

	for _, l := range Layout(sc) {
		if l.Size == 0 {
			pdf.Br(sectionSpace)
			continue
		}
		if err := pdf.SetFont(fontFamily, "", l.Size); err != nil {
			return nil, fmt.Errorf("set font: %w", err)
		}
		wrapped, err := pdf.SplitText(l.Text, textWidth)
		if err != nil {
			return nil, fmt.Errorf("split text: %w", err)
		}
		for _, w := range wrapped {
			if pdf.GetY() > pageBottom {
				pdf.AddPage()
			}
			pdf.SetX(pageMargin)
			if err := pdf.Cell(nil, w); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
			pdf.Br(float64(l.Size) + lineSpacing)
		}
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Service) loadFont(ctx context.Context, pdf *gopdf.GoPdf) error {
	var errs []error
	for _, path := range s.fonts {
		err := pdf.AddTTFFont(fontFamily, path)
		if err == nil {
			s.logger.DebugContext(ctx, "report font loaded", "path", path)
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("failed to load font for PDF, install ttf-dejavu or set REPORT_FONT_PATH: %w", errors.Join(errs...))
}

// SendCoordinatorReport renders the screening and uploads it to the
// coordinator chat.
func (s *Service) SendCoordinatorReport(ctx context.Context, sc donation.Screening) error {
	if !s.Enabled() {
		return fmt.Errorf("coordinator reports: %w", sentinel.ErrUnavailable)
	}

	data, err := s.Render(ctx, sc)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("screening_%s.pdf", sc.ID)
	if err := s.notifier.SendDocument(ctx, s.chatID, data, fileName, Caption(sc)); err != nil {
		s.logger.ErrorContext(ctx, "coordinator report delivery failed",
			"screening_id", sc.ID,
			"error", err,
		)
		return err
	}

	s.logger.InfoContext(ctx, "coordinator report delivered",
		"screening_id", sc.ID,
		"chat_id", s.chatID,
		"bytes", len(data),
	)
	return nil
}

// NotifyCoordinator sends a plain text message to the coordinator chat.
func (s *Service) NotifyCoordinator(ctx context.Context, text string) error {
	if !s.Enabled() {
		return fmt.Errorf("coordinator notifications: %w", sentinel.ErrUnavailable)
	}
	return s.notifier.SendMessage(ctx, s.chatID, text)
}

// Line is one paragraph of the rendered report. A zero Size is a spacer.
type Line struct {
	Text string
	Size int
}

func heading(text string) Line    { return Line{Text: text, Size: 18} }
func subheading(text string) Line { return Line{Text: text, Size: 14} }
func body(text string) Line       { return Line{Text: text, Size: 11} }

var spacer = Line{}

// Layout returns the report content in reading order.
func Layout(sc donation.Screening) []Line {
	lines := []Line{
		heading("Blood Donation Eligibility Screening"),
		spacer,
		body("Screening ID: " + sc.ID.String()),
		body("Evaluated: " + sc.EvaluatedAt.Format("02 Jan 2006 15:04 MST")),
		body("Blood group: " + string(sc.BloodGroup)),
		body("Components: " + components(sc)),
		spacer,
	}

	if sc.Verdict.Eligible {
		lines = append(lines, subheading("Result: ELIGIBLE"))
		lines = append(lines, body("The donor meets every screening criterion."))
	} else {
		lines = append(lines, subheading("Result: NOT ELIGIBLE"))
	}

	if sc.NextEligibleDate != nil {
		lines = append(lines, body("Next eligible date: "+sc.NextEligibleDate.Format(time.DateOnly)))
	}

	if len(sc.Verdict.Reasons) > 0 {
		lines = append(lines, spacer, subheading("Reasons:"))
		for _, r := range sc.Verdict.Reasons {
			lines = append(lines, body("- "+r))
		}
	}

	return lines
}

// Caption is the short summary attached to a delivered report.
func Caption(sc donation.Screening) string {
	status := "eligible"
	if !sc.Verdict.Eligible {
		status = fmt.Sprintf("not eligible (%d reasons)", len(sc.Verdict.Reasons))
	}
	return fmt.Sprintf("Donor screening %s: %s, blood group %s", sc.ID, status, sc.BloodGroup)
}

func components(sc donation.Screening) string {
	if len(sc.Components) == 0 {
		return "none selected"
	}
	names := make([]string, len(sc.Components))
	for i, c := range sc.Components {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
