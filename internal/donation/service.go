package donation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"community-seva/internal/donation/metrics"
	"community-seva/internal/eligibility"
)

// Evaluator screens an intake. *eligibility.Evaluator satisfies it.
type Evaluator interface {
	Evaluate(in eligibility.DonorIntake) eligibility.Verdict
}

// ReportService renders verdict reports and delivers them to the coordinator.
type ReportService interface {
	Render(ctx context.Context, s Screening) ([]byte, error)
	SendCoordinatorReport(ctx context.Context, s Screening) error
}

type Service interface {
	Screen(ctx context.Context, in eligibility.DonorIntake) (*Screening, error)
	Report(ctx context.Context, in eligibility.DonorIntake) (*Screening, []byte, error)
	SendReport(ctx context.Context, in eligibility.DonorIntake) (*Screening, error)
}

type service struct {
	evaluator Evaluator
	reportSvc ReportService
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires the screening service. The clock should be the one the
// evaluator uses so evaluated_at matches the interval reference.
func NewService(evaluator Evaluator, report ReportService, m *metrics.Metrics, logger *slog.Logger, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		evaluator: evaluator,
		reportSvc: report,
		metrics:   m,
		logger:    logger,
		now:       now,
	}
}

func (s *service) Screen(ctx context.Context, in eligibility.DonorIntake) (*Screening, error) {
	start := time.Now()
	verdict := s.evaluator.Evaluate(in)
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	screening := newScreening(in, verdict, s.now())

	s.metrics.IncrementOutcome(screening.Result())
	for _, rule := range verdict.Rules {
		s.metrics.IncrementRuleFailure(string(rule))
	}

	rules := make([]string, len(verdict.Rules))
	for i, r := range verdict.Rules {
		rules[i] = string(r)
	}
	s.logger.InfoContext(ctx, "donor screened",
		"screening_id", screening.ID,
		"result", screening.Result(),
		"blood_group", screening.BloodGroup,
		"failed_rules", rules,
	)

	return screening, nil
}

func (s *service) Report(ctx context.Context, in eligibility.DonorIntake) (*Screening, []byte, error) {
	screening, err := s.Screen(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := s.reportSvc.Render(ctx, *screening)
	if err != nil {
		return nil, nil, fmt.Errorf("render report %s: %w", screening.ID, err)
	}
	return screening, pdf, nil
}

func (s *service) SendReport(ctx context.Context, in eligibility.DonorIntake) (*Screening, error) {
	screening, err := s.Screen(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := s.reportSvc.SendCoordinatorReport(ctx, *screening); err != nil {
		s.metrics.IncrementReportDelivery("failed")
		return nil, fmt.Errorf("send report %s: %w", screening.ID, err)
	}
	s.metrics.IncrementReportDelivery("sent")

	s.logger.InfoContext(ctx, "screening report sent to coordinator",
		"screening_id", screening.ID,
		"result", screening.Result(),
	)
	return screening, nil
}
