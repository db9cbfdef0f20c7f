package utils

import "time"

type DeltaTimer struct {
	time.Time
}

func (d *DeltaTimer) Next() time.Duration {
	// acquire timestamp exactly once to ensure we're not accumulating error
	now := time.Now()

	defer d.Set(now)
	if d.IsZero() {
		return 0
	}
	return now.Sub(d.Time)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.Time = t
}

// Seconds converts a frame delta into the float seconds used by the
// camera and shader uniforms.
func Seconds(dt time.Duration) float32 {
	return float32(dt.Nanoseconds()) * 1e-9
}
