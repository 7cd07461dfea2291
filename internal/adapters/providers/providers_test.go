package providers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/flyworld/internal/adapters/providers"
	"github.com/samirrijal/flyworld/internal/core/domain"
)

var bilbao = domain.GeoPoint{Lat: 43.263, Lon: -2.935}

func testOptions() providers.Options {
	return providers.Options{
		Timeout:        time.Second,
		MaxRetries:     3,
		UserAgent:      "flyworld-test",
		InitialBackoff: time.Millisecond,
	}
}

func serve(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenMeteo_Current(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "43.263", r.URL.Query().Get("latitude"))
		assert.Equal(t, "-2.935", r.URL.Query().Get("longitude"))
		assert.Equal(t, "true", r.URL.Query().Get("current_weather"))
		assert.Equal(t, "flyworld-test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"current_weather":{"temperature":18.4,"weathercode":61}}`))
	})

	w, err := providers.NewOpenMeteo(srv.URL, testOptions()).Current(context.Background(), bilbao)
	require.NoError(t, err)
	assert.Equal(t, 18.4, w.TemperatureC)
	assert.Equal(t, 61, w.Code)
}

func TestOpenMeteo_MissingFieldsIsMalformed(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":18.4}}`))
	})

	_, err := providers.NewOpenMeteo(srv.URL, testOptions()).Current(context.Background(), bilbao)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestClient_InvalidJSONIsMalformed(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	})

	_, err := providers.NewOpenMeteo(srv.URL, testOptions()).Current(context.Background(), bilbao)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"current_weather":{"temperature":1,"weathercode":0}}`))
	})

	_, err := providers.NewOpenMeteo(srv.URL, testOptions()).Current(context.Background(), bilbao)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad coordinates", http.StatusBadRequest)
	})

	_, err := providers.NewOpenMeteo(srv.URL, testOptions()).Current(context.Background(), bilbao)

	var se *domain.ProviderStatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Equal(t, "bad coordinates", se.Body)
	assert.ErrorIs(t, err, domain.ErrProviderStatus)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	opts := testOptions()
	opts.MaxRetries = 2
	_, err := providers.NewOpenMeteo(srv.URL, opts).Current(context.Background(), bilbao)
	assert.ErrorIs(t, err, domain.ErrProviderStatus)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Timeout(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
	})

	opts := testOptions()
	opts.Timeout = 20 * time.Millisecond
	opts.MaxRetries = 0
	_, err := providers.NewOpenMeteo(srv.URL, opts).Current(context.Background(), bilbao)
	assert.ErrorIs(t, err, domain.ErrProviderTimeout)
}

func TestClient_ContextDeadlineIsTimeout(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := providers.NewOpenMeteo(srv.URL, testOptions()).Current(ctx, bilbao)
	assert.ErrorIs(t, err, domain.ErrProviderTimeout)
}

func TestClient_UnreachableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	opts := testOptions()
	opts.MaxRetries = 1
	_, err := providers.NewOpenMeteo(addr, opts).Current(context.Background(), bilbao)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestTimeAPI_LocalTime(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/TimeZone/coordinate", r.URL.Path)
		w.Write([]byte(`{"timeZone":"Europe/Madrid","currentLocalTime":"2026-03-07T14:05:33.1234567"}`))
	})

	lt, err := providers.NewTimeAPI(srv.URL, testOptions()).LocalTime(context.Background(), bilbao)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Madrid", lt.TimeZone)
	assert.Equal(t, "07/03 14:05", lt.Time.Format("02/01 15:04"))
}

func TestTimeAPI_MissingTime(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"timeZone":"Europe/Madrid"}`))
	})

	_, err := providers.NewTimeAPI(srv.URL, testOptions()).LocalTime(context.Background(), bilbao)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestERAPI_USDRate(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/latest/USD", r.URL.Path)
		w.Write([]byte(`{"result":"success","rates":{"USD":1,"EUR":0.92,"JPY":151.3}}`))
	})
	p := providers.NewERAPI(srv.URL, testOptions())

	r, err := p.USDRate(context.Background(), "eur")
	require.NoError(t, err)
	assert.Equal(t, 0.92, r)

	_, err = p.USDRate(context.Background(), "XXX")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestERAPI_ErrorResult(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	})

	_, err := providers.NewERAPI(srv.URL, testOptions()).USDRate(context.Background(), "EUR")
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestGeoapify_Sights(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v2/places", r.URL.Path)
		assert.Equal(t, "tourism.sights", q.Get("categories"))
		assert.Equal(t, "circle:-2.935,43.263,10000", q.Get("filter"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "key-123", q.Get("apiKey"))
		w.Write([]byte(`{"features":[
			{"properties":{"name":"Guggenheim","lat":43.268,"lon":-2.934}},
			{"properties":{"lat":43.1,"lon":-2.9}},
			{"properties":{"name":"Casco Viejo","lat":43.257,"lon":-2.923}}
		]}`))
	})

	places, err := providers.NewGeoapify(srv.URL, "key-123", testOptions()).Sights(context.Background(), bilbao, 10000, 5)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Guggenheim", places[0].Name)
	assert.Equal(t, "Casco Viejo", places[1].Name)
}

func TestGeoapify_RequiresKey(t *testing.T) {
	_, err := providers.NewGeoapify("http://unused", "", testOptions()).Sights(context.Background(), bilbao, 10000, 5)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestNominatim_Search(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Bilbao", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"display_name":"Bilbao, Biscay, Spain","lat":"43.2630","lon":"-2.9350"}]`))
	})

	p, err := providers.NewNominatim(srv.URL, testOptions()).Search(context.Background(), "Bilbao")
	require.NoError(t, err)
	assert.Equal(t, "Bilbao, Biscay, Spain", p.Name)
	assert.Equal(t, bilbao, p.Location)
}

func TestNominatim_NoMatch(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := providers.NewNominatim(srv.URL, testOptions()).Search(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNominatim_RateLimited(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"display_name":"x","lat":"1","lon":"2"}]`))
	})
	p := providers.NewNominatim(srv.URL, testOptions())

	// The second request has to wait for a token that never arrives in time.
	_, err := p.Search(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = p.Search(ctx, "b")
	assert.Error(t, err)
}
