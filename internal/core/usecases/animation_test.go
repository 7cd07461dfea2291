package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/usecases"
	"github.com/samirrijal/flyworld/internal/pkg/geospatial"
)

func TestFrames(t *testing.T) {
	path := geospatial.Interpolate(domain.GeoPoint{Lat: 0, Lon: 0}, domain.GeoPoint{Lat: 0, Lon: 90}, 10)
	frames := usecases.Frames(path)

	require.Len(t, frames, 11)
	for i, f := range frames {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, path[i].Lat, f.Lat)
		assert.Equal(t, i == 10, f.Done)
		assert.InDelta(t, 90, f.HeadingDeg, 1e-6, "frame %d heads east", i)
	}
	assert.Equal(t, frames[9].BearingRad, frames[10].BearingRad)
}

func TestFrames_SinglePoint(t *testing.T) {
	frames := usecases.Frames(domain.GreatCirclePath{{Lat: 1, Lon: 2}})
	require.Len(t, frames, 1)
	assert.True(t, frames[0].Done)
	assert.Equal(t, 0.0, frames[0].BearingRad)

	assert.Nil(t, usecases.Frames(nil))
}

func TestAnimate_EmitsEveryFrame(t *testing.T) {
	path := geospatial.Interpolate(domain.GeoPoint{Lat: 10, Lon: 10}, domain.GeoPoint{Lat: 20, Lon: 20}, 5)

	var got []domain.Frame
	err := usecases.Animate(context.Background(), path, time.Millisecond, func(f domain.Frame) error {
		got = append(got, f)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.True(t, got[5].Done)
}

func TestAnimate_StopsWhenContextDone(t *testing.T) {
	path := geospatial.Interpolate(domain.GeoPoint{Lat: 10, Lon: 10}, domain.GeoPoint{Lat: 20, Lon: 20}, 100)
	ctx, cancel := context.WithCancel(context.Background())

	count := 0
	err := usecases.Animate(ctx, path, time.Millisecond, func(f domain.Frame) error {
		count++
		if count == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, count)
}

func TestAnimate_StopsOnEmitError(t *testing.T) {
	path := geospatial.Interpolate(domain.GeoPoint{Lat: 10, Lon: 10}, domain.GeoPoint{Lat: 20, Lon: 20}, 10)
	gone := errors.New("client gone")

	count := 0
	err := usecases.Animate(context.Background(), path, 0, func(f domain.Frame) error {
		count++
		return gone
	})
	assert.ErrorIs(t, err, gone)
	assert.Equal(t, 1, count)
}
