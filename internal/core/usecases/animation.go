package usecases

import (
	"context"
	"time"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/pkg/geospatial"
)

// DefaultFrameDelay is the pause between two animation frames.
const DefaultFrameDelay = 40 * time.Millisecond

// Frames turns a path into animation frames. Frame i points toward point
// i+1 and the last frame keeps the final bearing.
func Frames(path domain.GreatCirclePath) []domain.Frame {
	if len(path) == 0 {
		return nil
	}
	bearings := geospatial.PathBearings(path)

	frames := make([]domain.Frame, len(path))
	for i, p := range path {
		var theta float64
		switch {
		case i < len(bearings):
			theta = bearings[i]
		case len(bearings) > 0:
			theta = bearings[len(bearings)-1]
		}
		frames[i] = domain.Frame{
			Index:      i,
			Lat:        p.Lat,
			Lon:        p.Lon,
			BearingRad: theta,
			HeadingDeg: geospatial.CompassDegrees(theta),
			Done:       i == len(path)-1,
		}
	}
	return frames
}

// Animate emits the frames of path one by one, pausing delay between them.
// It stops with ctx.Err() as soon as ctx is done, and with emit's error if
// emit fails.
func Animate(ctx context.Context, path domain.GreatCirclePath, delay time.Duration, emit func(domain.Frame) error) error {
	frames := Frames(path)

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(f); err != nil {
			return err
		}
		if i == len(frames)-1 || delay <= 0 {
			continue
		}
		timer.Reset(delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
