package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"concursos/internal/concursos/metrics"
	"concursos/internal/concursos/models"
	dErrors "concursos/pkg/domain-errors"
)

// gate blocks each simulated delay until the test releases it.
type gate struct {
	entered chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) sleep(time.Duration) {
	g.entered <- struct{}{}
	<-g.release
}

func (s *ServiceSuite) TestSessionBusyFlag() {
	g := newGate()
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	sess := New(s.catalog, WithSleeper(g.sleep), WithMetrics(m)).NewSession()
	s.False(sess.Busy(), "idle before first call")

	done := make(chan models.LookupResult[models.Opening])
	go func() {
		done <- sess.LookupOpeningsByNationalID(context.Background(), "invalid-key")
	}()

	<-g.entered
	s.True(sess.Busy())
	s.Equal(1.0, testutil.ToFloat64(m.SessionsInFlight))
	g.release <- struct{}{}

	res := <-done
	s.False(sess.Busy(), "reset on the error path")
	s.Equal(0.0, testutil.ToFloat64(m.SessionsInFlight))
	s.Equal("invalid id", res.Message)
}

func (s *ServiceSuite) TestSessionErrorSlot() {
	ctx := context.Background()
	sess := New(s.catalog, WithLatency(0)).NewSession()
	s.NoError(sess.Err())

	s.Run("validation error is reported", func() {
		sess.LookupCandidatesByCode(ctx, "")
		s.True(dErrors.HasCode(sess.Err(), dErrors.CodeValidation))
		s.Equal("code is required", sess.Err().Error())
	})

	s.Run("success clears the previous error", func() {
		sess.LookupOpeningsByNationalID(ctx, "18284508434")
		s.NoError(sess.Err())
	})

	s.Run("not found is reported", func() {
		sess.LookupOpeningsByNationalID(ctx, "11144477735")
		s.True(dErrors.HasCode(sess.Err(), dErrors.CodeNotFound))
	})

	s.Run("no matches is not reported", func() {
		sess.LookupCandidatesByCode(ctx, "95655123539")
		s.NoError(sess.Err())
	})
}

func (s *ServiceSuite) TestSessionClearsErrorAtCallStart() {
	g := newGate()
	sess := New(s.catalog, WithSleeper(g.sleep)).NewSession()

	go sess.LookupCandidatesByCode(context.Background(), "unknown")
	<-g.entered
	g.release <- struct{}{}
	s.Eventually(func() bool { return !sess.Busy() }, time.Second, time.Millisecond)
	s.Require().Error(sess.Err())

	done := make(chan struct{})
	go func() {
		sess.LookupCandidatesByCode(context.Background(), "61828450843")
		close(done)
	}()
	<-g.entered
	s.NoError(sess.Err(), "cleared while the next call is in progress")
	g.release <- struct{}{}
	<-done
	s.NoError(sess.Err())
}

func (s *ServiceSuite) TestBatch() {
	ctx := context.Background()

	s.Run("outcomes keep request order", func() {
		res, err := s.service.Batch(ctx, BatchRequest{
			CPFs:  []string{"182.845.084-34", "invalid-key", "111.444.777-35", "311.667.973-47"},
			Codes: []string{"61828450843", "", "95655123539"},
		})
		s.Require().NoError(err)
		s.Require().Len(res.Openings, 4)
		s.Require().Len(res.Candidates, 3)

		s.Equal("182.845.084-34", res.Openings[0].CPF)
		s.Equal(models.StatusSuccess, res.Openings[0].Result.Status)
		s.NoError(res.Openings[0].Err)
		s.Equal(models.StatusValidationError, res.Openings[1].Result.Status)
		s.True(dErrors.HasCode(res.Openings[1].Err, dErrors.CodeValidation))
		s.Equal(models.StatusNotFound, res.Openings[2].Result.Status)
		s.Len(res.Openings[3].Result.Items, 2)

		s.Equal([]string{"Jackie Dawson", "Cory Mendoza"}, names(res.Candidates[0].Result.Items))
		s.Equal(models.StatusValidationError, res.Candidates[1].Result.Status)
		s.Equal(models.StatusNoMatches, res.Candidates[2].Result.Status)
		s.NoError(res.Candidates[2].Err)
	})

	s.Run("empty batch is rejected", func() {
		_, err := s.service.Batch(ctx, BatchRequest{})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("oversized batch is rejected", func() {
		cpfs := make([]string, MaxBatchQueries)
		for i := range cpfs {
			cpfs[i] = "18284508434"
		}
		_, err := s.service.Batch(ctx, BatchRequest{CPFs: cpfs, Codes: []string{"x"}})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		res, err := s.service.Batch(ctx, BatchRequest{CPFs: cpfs})
		s.Require().NoError(err)
		s.Len(res.Openings, MaxBatchQueries)
	})
}

func (s *ServiceSuite) TestBatchRunsConcurrently() {
	g := newGate()
	svc := New(s.catalog, WithSleeper(g.sleep))

	done := make(chan *BatchResult)
	go func() {
		res, _ := svc.Batch(context.Background(), BatchRequest{CPFs: []string{"18284508434", "31166797347"}})
		done <- res
	}()

	// Both lookups reach the delay before either is released.
	<-g.entered
	<-g.entered
	g.release <- struct{}{}
	g.release <- struct{}{}

	res := <-done
	s.True(res.Openings[0].Result.Found)
	s.True(res.Openings[1].Result.Found)
}
