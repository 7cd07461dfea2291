package workflows

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/pkg/metrics"
)

// Prefetcher starts a briefing prefetch for each flight search. Searches for
// the same destination within one hour share a single workflow run.
type Prefetcher struct {
	client    client.Client
	taskQueue string
}

func NewPrefetcher(c client.Client, taskQueue string) *Prefetcher {
	return &Prefetcher{client: c, taskQueue: taskQueue}
}

// PrefetchWorkflowID names the prefetch run for destination in the hour of t.
func PrefetchWorkflowID(destination string, t time.Time) string {
	dest := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(destination)), " ", "-")
	return fmt.Sprintf("briefing-%s-%s", dest, t.UTC().Format("2006010215"))
}

// HandleFlightSearched is an EventSubscriber handler.
func (p *Prefetcher) HandleFlightSearched(ctx context.Context, event *domain.FlightSearched) error {
	searchedAt := event.SearchedAt
	if searchedAt.IsZero() {
		searchedAt = time.Now()
	}
	id := PrefetchWorkflowID(event.Entry.Destination, searchedAt)

	opts := client.StartWorkflowOptions{
		ID:                       id,
		TaskQueue:                p.taskQueue,
		WorkflowExecutionTimeout: 5 * time.Minute,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}
	_, err := p.client.ExecuteWorkflow(ctx, opts, DestinationBriefingWorkflow, BriefingInput{Destination: event.Entry.Destination})
	if err != nil {
		var already *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &already) {
			metrics.BriefingPrefetches.WithLabelValues("deduplicated").Inc()
			return nil
		}
		metrics.BriefingPrefetches.WithLabelValues("error").Inc()
		return fmt.Errorf("start prefetch %s: %w", id, err)
	}

	metrics.BriefingPrefetches.WithLabelValues("started").Inc()
	slog.InfoContext(ctx, "briefing prefetch started", "workflow_id", id, "destination", event.Entry.Destination)
	return nil
}
