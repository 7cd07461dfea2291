package workflows

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

func newEnv(t *testing.T) *testsuite.TestWorkflowEnvironment {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(DestinationBriefingWorkflow)
	env.RegisterActivity(&BriefingActivities{})
	return env
}

var japan = domain.Country{Key: "Japan", Name: "Japan", Location: domain.GeoPoint{Lat: 36, Lon: 138}, Currency: "JPY"}

func TestDestinationBriefingWorkflow_WarmsEveryPart(t *testing.T) {
	env := newEnv(t)
	env.OnActivity("ResolveDestination", mock.Anything, "Japan").Return(japan, nil)
	env.OnActivity("WarmWeather", mock.Anything, japan.Location).Return(nil)
	env.OnActivity("WarmPlaces", mock.Anything, japan.Location).Return(nil)
	env.OnActivity("WarmExchangeRate", mock.Anything, "JPY").Return(nil)

	env.ExecuteWorkflow(DestinationBriefingWorkflow, BriefingInput{Destination: "Japan"})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var res BriefingResult
	require.NoError(t, env.GetWorkflowResult(&res))
	assert.Equal(t, []string{"exchange", "places", "weather"}, res.Warmed)
	assert.Empty(t, res.Failed)
}

func TestDestinationBriefingWorkflow_PartFailureIsolated(t *testing.T) {
	env := newEnv(t)
	env.OnActivity("ResolveDestination", mock.Anything, "Japan").Return(japan, nil)
	env.OnActivity("WarmWeather", mock.Anything, mock.Anything).Return(errors.New("open-meteo down"))
	env.OnActivity("WarmPlaces", mock.Anything, mock.Anything).Return(nil)
	env.OnActivity("WarmExchangeRate", mock.Anything, mock.Anything).Return(nil)

	env.ExecuteWorkflow(DestinationBriefingWorkflow, BriefingInput{Destination: "Japan"})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var res BriefingResult
	require.NoError(t, env.GetWorkflowResult(&res))
	assert.Equal(t, []string{"exchange", "places"}, res.Warmed)
	assert.Contains(t, res.Failed["weather"], "open-meteo down")
}

func TestDestinationBriefingWorkflow_SkipsExchangeForDollarCountries(t *testing.T) {
	env := newEnv(t)
	us := domain.Country{Key: "United States", Location: domain.GeoPoint{Lat: 39.8, Lon: -98.6}, Currency: "USD"}
	env.OnActivity("ResolveDestination", mock.Anything, "United States").Return(us, nil)
	env.OnActivity("WarmWeather", mock.Anything, mock.Anything).Return(nil)
	env.OnActivity("WarmPlaces", mock.Anything, mock.Anything).Return(nil)

	env.ExecuteWorkflow(DestinationBriefingWorkflow, BriefingInput{Destination: "United States"})

	require.NoError(t, env.GetWorkflowError())
	var res BriefingResult
	require.NoError(t, env.GetWorkflowResult(&res))
	assert.Equal(t, []string{"places", "weather"}, res.Warmed)
}

func TestDestinationBriefingWorkflow_UnknownDestinationFails(t *testing.T) {
	env := newEnv(t)
	env.OnActivity("ResolveDestination", mock.Anything, "Atlantis").
		Return(domain.Country{}, permanent(domain.ErrNotFound))

	env.ExecuteWorkflow(DestinationBriefingWorkflow, BriefingInput{Destination: "Atlantis"})

	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
}

func TestPermanent(t *testing.T) {
	transient := &domain.ProviderStatusError{Provider: "erapi", Code: 503}
	assert.Same(t, error(transient), permanent(transient))

	wrapped := permanent(&domain.ProviderStatusError{Provider: "geoapify", Code: 401})
	var appErr *temporal.ApplicationError
	require.ErrorAs(t, wrapped, &appErr)
	assert.True(t, appErr.NonRetryable())
	assert.Equal(t, "provider_status", appErr.Type())

	assert.ErrorIs(t, permanent(domain.ErrNotFound), domain.ErrNotFound)
}

func TestPrefetchWorkflowID(t *testing.T) {
	at := time.Date(2026, 3, 7, 14, 59, 0, 0, time.UTC)
	assert.Equal(t, "briefing-united-states-2026030714", PrefetchWorkflowID(" United States", at))
	assert.Equal(t, PrefetchWorkflowID("Japan", at), PrefetchWorkflowID("japan", at.Add(-30*time.Minute)))
	assert.NotEqual(t, PrefetchWorkflowID("Japan", at), PrefetchWorkflowID("Japan", at.Add(time.Minute)))
}

func TestPrefetcher_StartsAndDeduplicates(t *testing.T) {
	c := &mocks.Client{}
	event := &domain.FlightSearched{
		Entry:      domain.SearchEntry{Destination: "Japan"},
		SearchedAt: time.Date(2026, 3, 7, 14, 5, 0, 0, time.UTC),
	}

	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, BriefingInput{Destination: "Japan"}).
		Return(&mocks.WorkflowRun{}, nil).Once()
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", "")).Once()

	p := NewPrefetcher(c, "briefing-prefetch")
	require.NoError(t, p.HandleFlightSearched(context.Background(), event))
	require.NoError(t, p.HandleFlightSearched(context.Background(), event))
	c.AssertNumberOfCalls(t, "ExecuteWorkflow", 2)
}

func TestPrefetcher_PropagatesStartErrors(t *testing.T) {
	c := &mocks.Client{}
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("frontend unavailable"))

	p := NewPrefetcher(c, "briefing-prefetch")
	err := p.HandleFlightSearched(context.Background(), &domain.FlightSearched{Entry: domain.SearchEntry{Destination: "Peru"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "briefing-peru-")
}
