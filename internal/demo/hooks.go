package demo

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// FPSLogger returns a hook that logs the frame rate about once per second.
// now is injectable for tests; nil uses time.Now.
func FPSLogger(log *zap.Logger, now func() time.Time) FrameHook {
	if now == nil {
		now = time.Now
	}
	start := now()
	var count int
	return func(frame uint64) error {
		count++
		elapsed := now().Sub(start)
		if elapsed < time.Second {
			return nil
		}
		log.Debug("fps",
			zap.Float64("fps", float64(count)/elapsed.Seconds()),
			zap.String("frame_time", fmt.Sprintf("%.2fms", elapsed.Seconds()*1000/float64(count))),
			zap.Uint64("frame", frame),
		)
		count = 0
		start = now()
		return nil
	}
}

// MotionTracer returns a hook that logs every body's transform at debug
// level once every `every` frames.
func MotionTracer(log *zap.Logger, v *Variant, every uint64) FrameHook {
	return func(frame uint64) error {
		if every == 0 || frame%every != 0 || !log.Core().Enabled(zap.DebugLevel) {
			return nil
		}
		for _, b := range v.Motion.Bodies() {
			fields := []zap.Field{
				zap.Uint64("frame", frame),
				zap.String("body", b.Name),
				zap.Float64s("rotation", []float64{b.Transform.Rotation.X, b.Transform.Rotation.Y, b.Transform.Rotation.Z}),
				zap.Float64s("position", []float64{b.Transform.Position.X, b.Transform.Position.Y, b.Transform.Position.Z}),
			}
			if b.Orbit != nil {
				x, y, z := b.Orbit.Directions()
				fields = append(fields,
					zap.Stringer("dir_x", x),
					zap.Stringer("dir_y", y),
					zap.Stringer("dir_z", z),
				)
			}
			log.Debug("motion", fields...)
		}
		return nil
	}
}
