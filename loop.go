package main

import (
	"context"
	"math"
	"time"

	"tagaro/scene"
)

const (
	orbitRadius = 5.0
	orbitFrames = 120
)

// frameState is where the game wants the listener and master volume on a
// given frame: a slow orbit around the origin and a volume that breathes
// between 0.5 and 1.
func frameState(frame int) (scene.Point, float64) {
	angle := 2 * math.Pi * float64(frame%orbitFrames) / orbitFrames
	pos := scene.Point{X: orbitRadius * math.Cos(angle), Y: orbitRadius * math.Sin(angle)}
	vol := 0.75 + 0.25*math.Cos(angle)
	return pos, vol
}

// runFrames pushes the listener and volume into s once per tick until frames
// have run or ctx is done, and returns the number of frames completed.
func runFrames(ctx context.Context, s scene.Scene, frames int, tick time.Duration) int {
	var ticker *time.Ticker
	if tick > 0 {
		ticker = time.NewTicker(tick)
		defer ticker.Stop()
	}

	done := 0
	for done < frames {
		if ctx.Err() != nil {
			return done
		}
		pos, vol := frameState(done)
		s.SetListenerPos(pos)
		s.SetVolume(vol)
		done++

		if ticker != nil && done < frames {
			select {
			case <-ctx.Done():
				return done
			case <-ticker.C:
			}
		}
	}
	return done
}
