package config

import "time"

// InitialDelay returns the fall interval at level 1.
func (t Timing) InitialDelay() time.Duration {
	return time.Duration(t.InitialDelayMS) * time.Millisecond
}

// MinDelay returns the shortest fall interval the game will use.
func (t Timing) MinDelay() time.Duration {
	d := time.Duration(t.MinDelayMS) * time.Millisecond
	if d <= 0 {
		return time.Millisecond
	}
	return d
}

// Accelerate returns the fall interval after one level up.
func (t Timing) Accelerate(d time.Duration) time.Duration {
	next := time.Duration(float64(d) * t.DelayFactor)
	if next < t.MinDelay() {
		return t.MinDelay()
	}
	return next
}

// DelayAtLevel returns the fall interval in effect at the given level.
func (t Timing) DelayAtLevel(level int) time.Duration {
	d := t.InitialDelay()
	for i := 1; i < level; i++ {
		d = t.Accelerate(d)
	}
	return d
}
