package e2e

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"concursos/internal/concursos/catalog"
	"concursos/internal/concursos/handler"
	"concursos/internal/concursos/service"
	"concursos/internal/platform/health"
	httptransport "concursos/internal/transport/http"
	request "concursos/pkg/platform/middleware/request"
)

var opts = godog.Options{
	Output: colors.Colored(os.Stdout),
	Format: "pretty",
	Paths:  []string{"features"},
}

func init() {
	godog.BindCommandLineFlags("godog.", &opts)
}

// TestFeatures runs the Gherkin features against BASE_URL, or against an
// in-process server over the bundled seed when BASE_URL is unset.
func TestFeatures(t *testing.T) {
	flag.Parse()
	opts.TestingT = t

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		srv, err := newInProcessServer()
		if err != nil {
			t.Fatal(err)
		}
		defer srv.Close()
		baseURL = srv.URL
	}

	suite := godog.TestSuite{
		ScenarioInitializer: func(sc *godog.ScenarioContext) { InitializeScenario(sc, baseURL) },
		Options:             &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func newInProcessServer() (*httptest.Server, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	healthHandler := health.New("e2e")
	healthHandler.RegisterCheck("catalog", cat.Ready)

	router := httptransport.NewRouter(httptransport.Dependencies{
		Logger:         logger,
		Lookups:        handler.New(handler.NewSessions(service.New(cat, service.WithLatency(time.Millisecond))), logger),
		Health:         healthHandler,
		HTTPMetrics:    request.NewMetricsWithRegisterer(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		RequestTimeout: 5 * time.Second,
	})
	return httptest.NewServer(router), nil
}

func InitializeScenario(sc *godog.ScenarioContext, baseURL string) {
	tc := NewTestContext(baseURL)

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*tc = *NewTestContext(baseURL)
		return ctx, nil
	})

	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if err != nil {
			fmt.Printf("Scenario failed: %s\nLast Response: %s\n", sc.Name, string(tc.LastResponseBody))
		}
		return ctx, nil
	})

	RegisterSteps(sc, tc)
}
