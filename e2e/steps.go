package e2e

import (
	"github.com/cucumber/godog"

	"concursos/e2e/steps/common"
	"concursos/e2e/steps/lookup"
)

// RegisterSteps registers all step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	lookup.RegisterSteps(ctx, tc)
}
