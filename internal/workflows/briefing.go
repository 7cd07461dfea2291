package workflows

import (
	"sort"
	"strings"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/usecases"
)

// BriefingInput is the input for the briefing prefetch workflow.
type BriefingInput struct {
	Destination string
}

// BriefingResult lists which briefing parts were cached.
type BriefingResult struct {
	Warmed []string
	Failed map[string]string
}

// DestinationBriefingWorkflow resolves the destination and then warms the
// weather, exchange rate and sights caches in parallel. A part that fails is
// recorded in the result; only an unknown destination fails the workflow.
func DestinationBriefingWorkflow(ctx workflow.Context, input BriefingInput) (*BriefingResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting briefing prefetch", "destination", input.Destination)

	actOpts := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, actOpts)

	var country domain.Country
	if err := workflow.ExecuteActivity(ctx, "ResolveDestination", input.Destination).Get(ctx, &country); err != nil {
		return nil, err
	}

	futures := map[string]workflow.Future{
		usecases.PartWeather: workflow.ExecuteActivity(ctx, "WarmWeather", country.Location),
		usecases.PartPlaces:  workflow.ExecuteActivity(ctx, "WarmPlaces", country.Location),
	}
	if country.Currency != "" && !strings.EqualFold(country.Currency, "USD") {
		futures[usecases.PartExchange] = workflow.ExecuteActivity(ctx, "WarmExchangeRate", country.Currency)
	}

	// Map iteration order is random; sort so replays see the same sequence.
	parts := make([]string, 0, len(futures))
	for p := range futures {
		parts = append(parts, p)
	}
	sort.Strings(parts)

	res := &BriefingResult{Warmed: []string{}, Failed: map[string]string{}}
	for _, p := range parts {
		if err := futures[p].Get(ctx, nil); err != nil {
			logger.Warn("briefing part not warmed", "part", p, "error", err)
			res.Failed[p] = err.Error()
			continue
		}
		res.Warmed = append(res.Warmed, p)
	}

	logger.Info("Briefing prefetch finished", "warmed", len(res.Warmed), "failed", len(res.Failed))
	return res, nil
}
