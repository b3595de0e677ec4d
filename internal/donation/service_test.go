package donation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-seva/internal/donation/metrics"
	"community-seva/internal/eligibility"
	"community-seva/internal/platform/sentinel"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type stubReports struct {
	rendered []Screening
	sent     []Screening
	pdf      []byte
	err      error
}

func (s *stubReports) Render(_ context.Context, sc Screening) ([]byte, error) {
	s.rendered = append(s.rendered, sc)
	if s.err != nil {
		return nil, s.err
	}
	return s.pdf, nil
}

func (s *stubReports) SendCoordinatorReport(_ context.Context, sc Screening) error {
	s.sent = append(s.sent, sc)
	return s.err
}

func newTestService(reports ReportService) (Service, *metrics.Metrics) {
	clock := func() time.Time { return fixedNow }
	m := metrics.New(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(eligibility.NewEvaluator(eligibility.WithClock(clock)), reports, m, logger, clock), m
}

func eligibleIntake() eligibility.DonorIntake {
	req := validRequest()
	return req.ToIntake()
}

func TestService_Screen(t *testing.T) {
	t.Run("eligible donor", func(t *testing.T) {
		svc, m := newTestService(&stubReports{})

		sc, err := svc.Screen(context.Background(), eligibleIntake())
		require.NoError(t, err)

		assert.True(t, sc.Verdict.Eligible)
		assert.Empty(t, sc.Verdict.Reasons)
		assert.Nil(t, sc.NextEligibleDate)
		assert.Equal(t, fixedNow, sc.EvaluatedAt)
		assert.Equal(t, eligibility.GroupOPos, sc.BloodGroup)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ScreeningOutcome.WithLabelValues(ResultEligible)))
	})

	t.Run("deferred donor counts every failed rule", func(t *testing.T) {
		svc, m := newTestService(&stubReports{})
		in := eligibleIntake()
		in.Age = "17"
		in.BloodPressure = "200/120"

		sc, err := svc.Screen(context.Background(), in)
		require.NoError(t, err)

		assert.False(t, sc.Verdict.Eligible)
		assert.Len(t, sc.Verdict.Reasons, 3)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ScreeningOutcome.WithLabelValues(ResultDeferred)))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleFailures.WithLabelValues("age")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleFailures.WithLabelValues("systolic")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleFailures.WithLabelValues("diastolic")))
	})

	t.Run("recent donor gets next eligible date", func(t *testing.T) {
		svc, _ := newTestService(&stubReports{})
		in := eligibleIntake()
		in.DonatedPreviously = eligibility.DonatedYes
		in.LastDonationDate = "2026-10-09"

		sc, err := svc.Screen(context.Background(), in)
		require.NoError(t, err)

		require.NotNil(t, sc.NextEligibleDate)
		assert.Equal(t, "2027-01-07", sc.NextEligibleDate.Format(time.DateOnly))
	})

	t.Run("past interval has no next date", func(t *testing.T) {
		svc, _ := newTestService(&stubReports{})
		in := eligibleIntake()
		in.DonatedPreviously = eligibility.DonatedYes
		in.LastDonationDate = "2026-01-01"

		sc, err := svc.Screen(context.Background(), in)
		require.NoError(t, err)

		assert.True(t, sc.Verdict.Eligible)
		assert.Nil(t, sc.NextEligibleDate)
	})

	t.Run("screenings get distinct ids", func(t *testing.T) {
		svc, _ := newTestService(&stubReports{})

		a, err := svc.Screen(context.Background(), eligibleIntake())
		require.NoError(t, err)
		b, err := svc.Screen(context.Background(), eligibleIntake())
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestService_Report(t *testing.T) {
	reports := &stubReports{pdf: []byte("%PDF-1.4")}
	svc, _ := newTestService(reports)

	sc, pdf, err := svc.Report(context.Background(), eligibleIntake())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	require.Len(t, reports.rendered, 1)
	assert.Equal(t, sc.ID, reports.rendered[0].ID)
}

func TestService_SendReport(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		reports := &stubReports{}
		svc, m := newTestService(reports)

		sc, err := svc.SendReport(context.Background(), eligibleIntake())
		require.NoError(t, err)

		require.Len(t, reports.sent, 1)
		assert.Equal(t, sc.ID, reports.sent[0].ID)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportDeliveries.WithLabelValues("sent")))
	})

	t.Run("not configured", func(t *testing.T) {
		reports := &stubReports{err: sentinel.ErrUnavailable}
		svc, m := newTestService(reports)

		_, err := svc.SendReport(context.Background(), eligibleIntake())
		require.Error(t, err)
		assert.True(t, errors.Is(err, sentinel.ErrUnavailable))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportDeliveries.WithLabelValues("failed")))
	})
}
