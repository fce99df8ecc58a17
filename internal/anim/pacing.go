package anim

import "time"

// PaceDelay returns how long to sleep so a tick that took elapsed fills
// interval. Ticks that overran get no delay and no catch-up.
func PaceDelay(interval, elapsed time.Duration) time.Duration {
	if elapsed >= interval {
		return 0
	}
	return interval - elapsed
}

// clock abstracts time for frame pacing.
type clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
