package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"concursos/internal/concursos/catalog"
	"concursos/internal/concursos/metrics"
	"concursos/internal/concursos/models"
	dErrors "concursos/pkg/domain-errors"
)

// ServiceSuite exercises both lookups end to end against the bundled seed.
//
// Justification: the seed is small enough to pin every outcome exactly,
// including the duplicate opening code that must resolve to SEDU.
type ServiceSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	c, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = c
	s.service = New(c, WithLatency(0))
}

func issuers(items []models.Opening) []string {
	out := make([]string, 0, len(items))
	for _, o := range items {
		out = append(out, o.IssuingBody+" "+o.NoticeNumber)
	}
	return out
}

func names(items []models.Candidate) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.Name)
	}
	return out
}

func (s *ServiceSuite) TestLookupOpeningsByNationalID() {
	ctx := context.Background()

	s.Run("candidate with one compatible opening", func() {
		res := s.service.LookupOpeningsByNationalID(ctx, "182.845.084-34")
		s.True(res.Found)
		s.Equal(models.StatusSuccess, res.Status)
		s.Empty(res.Message)
		s.Equal([]string{"SEJUS 15/2017"}, issuers(res.Items))
		s.Equal([]string{"carpinteiro"}, res.Criteria)
		s.NoError(res.Err())
	})

	s.Run("matches keep seed order", func() {
		res := s.service.LookupOpeningsByNationalID(ctx, "31166797347")
		s.True(res.Found)
		s.Equal([]string{"SEDU 9/2016", "SEJUS 15/2017"}, issuers(res.Items))
	})

	s.Run("malformed id is a validation error", func() {
		res := s.service.LookupOpeningsByNationalID(ctx, "invalid-key")
		s.False(res.Found)
		s.Equal(models.StatusValidationError, res.Status)
		s.Equal("invalid id", res.Message)
		s.NotNil(res.Items)
		s.Empty(res.Items)
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeValidation))
	})

	s.Run("checksum failure is a validation error", func() {
		res := s.service.LookupOpeningsByNationalID(ctx, "123.456.789-10")
		s.Equal(models.StatusValidationError, res.Status)
	})

	s.Run("valid but unknown id is not found", func() {
		res := s.service.LookupOpeningsByNationalID(ctx, "111.444.777-35")
		s.False(res.Found)
		s.Equal(models.StatusNotFound, res.Status)
		s.Equal("candidate not found", res.Message)
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestLookupOpenings_NoMatches() {
	c, err := catalog.New(
		[]models.Candidate{{Name: "Ana", NationalID: "11144477735", Professions: []string{"físico"}}},
		s.catalog.Openings(),
	)
	s.Require().NoError(err)

	res := New(c, WithLatency(0)).LookupOpeningsByNationalID(context.Background(), "11144477735")
	s.False(res.Found)
	s.Equal(models.StatusNoMatches, res.Status)
	s.Equal("no compatible opening for these professions", res.Message)
	s.Equal([]string{"físico"}, res.Criteria)
	s.NoError(res.Err(), "no matches is not an error")
}

func (s *ServiceSuite) TestLookupCandidatesByCode() {
	ctx := context.Background()

	s.Run("duplicate code resolves to the first opening", func() {
		res := s.service.LookupCandidatesByCode(ctx, "61828450843")
		s.True(res.Found)
		s.Equal([]string{"Jackie Dawson", "Cory Mendoza"}, names(res.Items))
		s.Equal([]string{"analista de sistemas", "marceneiro"}, res.Criteria)
	})

	s.Run("empty code is required", func() {
		for _, code := range []string{"", "   ", "\t\n"} {
			res := s.service.LookupCandidatesByCode(ctx, code)
			s.False(res.Found)
			s.Equal(models.StatusValidationError, res.Status)
			s.Equal("code is required", res.Message)
		}
	})

	s.Run("unknown code is not found", func() {
		res := s.service.LookupCandidatesByCode(ctx, "00000000000")
		s.Equal(models.StatusNotFound, res.Status)
		s.Equal("opening not found", res.Message)
	})

	s.Run("codes are case sensitive", func() {
		c, err := catalog.New(nil, []models.Opening{{IssuingBody: "X", NoticeNumber: "1", Code: "AbC", Vacancies: []string{"x"}}})
		s.Require().NoError(err)
		res := New(c, WithLatency(0)).LookupCandidatesByCode(ctx, "abc")
		s.Equal(models.StatusNotFound, res.Status)
	})

	s.Run("no compatible candidate is not an error", func() {
		res := s.service.LookupCandidatesByCode(ctx, " 95655123539 ")
		s.False(res.Found)
		s.Equal(models.StatusNoMatches, res.Status)
		s.Equal("no compatible candidate for this opening", res.Message)
		s.NoError(res.Err())
	})
}

func (s *ServiceSuite) TestMatchingIgnoresCaseAndAccents() {
	c, err := catalog.New(
		[]models.Candidate{{Name: "Ana", NationalID: "11144477735", Professions: []string{" PROFESSOR DE MATEMATICA "}}},
		s.catalog.Openings(),
	)
	s.Require().NoError(err)

	res := New(c, WithLatency(0)).LookupOpeningsByNationalID(context.Background(), "111.444.777-35")
	s.True(res.Found)
	s.Equal([]string{"SEJUS 15/2017", "SEJUS 17/2017"}, issuers(res.Items))
}

func (s *ServiceSuite) TestSimulatedLatency() {
	var mu sync.Mutex
	var slept []time.Duration
	record := func(d time.Duration) {
		mu.Lock()
		slept = append(slept, d)
		mu.Unlock()
	}

	s.Run("default delay applies to every outcome", func() {
		svc := New(s.catalog, WithSleeper(record))
		svc.LookupOpeningsByNationalID(context.Background(), "invalid-key")
		svc.LookupCandidatesByCode(context.Background(), "")
		s.Equal([]time.Duration{DefaultLatency, DefaultLatency}, slept)
	})

	s.Run("zero latency skips the suspension", func() {
		slept = nil
		svc := New(s.catalog, WithLatency(0), WithSleeper(record))
		svc.LookupOpeningsByNationalID(context.Background(), "18284508434")
		s.Empty(slept)
	})

	s.Run("cancelled context still completes", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		svc := New(s.catalog, WithLatency(time.Millisecond))
		res := svc.LookupOpeningsByNationalID(ctx, "18284508434")
		s.True(res.Found)
	})
}

func (s *ServiceSuite) TestMetrics() {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	svc := New(s.catalog, WithLatency(0), WithMetrics(m))

	svc.LookupOpeningsByNationalID(context.Background(), "18284508434")
	svc.LookupOpeningsByNationalID(context.Background(), "bad")
	svc.LookupCandidatesByCode(context.Background(), "95655123539")

	s.Equal(1.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues(metrics.KindOpenings, "success")))
	s.Equal(1.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues(metrics.KindOpenings, "validation_error")))
	s.Equal(1.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues(metrics.KindCandidates, "no_matches")))
}
