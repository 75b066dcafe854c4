package sprite

import (
	"encoding/json"
	"fmt"
)

// PlayDuration is how long a queue entry plays: a bounded number of seconds,
// or Forever for the default/idle animation. A tagged value is used instead of
// a float sentinel so unbounded playback never hits float-max comparisons.
type PlayDuration struct {
	seconds   float32
	unbounded bool
}

// Forever plays until something else advances the queue.
var Forever = PlayDuration{unbounded: true}

// Seconds builds a bounded duration. Negative values saturate to zero.
func Seconds(s float32) PlayDuration {
	if s < 0 {
		s = 0
	}
	return PlayDuration{seconds: s}
}

// Unbounded reports whether the duration never elapses.
func (d PlayDuration) Unbounded() bool { return d.unbounded }

// Seconds returns the bounded length; zero for Forever.
func (d PlayDuration) Seconds() float32 {
	if d.unbounded {
		return 0
	}
	return d.seconds
}

// Elapsed reports whether t seconds of playback have exhausted the duration.
// Forever never elapses.
func (d PlayDuration) Elapsed(t float32) bool {
	return !d.unbounded && t >= d.seconds
}

// cap limits an effect length to the hosting play duration. An unbounded host
// cannot cap anything.
func (d PlayDuration) cap(effect float32) float32 {
	if d.unbounded || effect < d.seconds {
		return effect
	}
	return d.seconds
}

// minus computes the effect start offset total-capped. Subtracting from an
// unbounded duration stays unbounded, so an end-anchored effect hosted by a
// Forever entry defers indefinitely.
func (d PlayDuration) minus(s float32) PlayDuration {
	if d.unbounded {
		return Forever
	}
	return Seconds(d.seconds - s)
}

type durationJSON struct {
	Seconds   float32 `json:"seconds,omitempty"`
	Unbounded bool    `json:"unbounded,omitempty"`
}

// MarshalJSON encodes the tagged value.
func (d PlayDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(durationJSON{Seconds: d.seconds, Unbounded: d.unbounded})
}

// UnmarshalJSON decodes the tagged value, clamping negatives like Seconds.
func (d *PlayDuration) UnmarshalJSON(data []byte) error {
	var raw durationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("play duration: %w", err)
	}
	if raw.Unbounded {
		*d = Forever
		return nil
	}
	*d = Seconds(raw.Seconds)
	return nil
}

func (d PlayDuration) String() string {
	if d.unbounded {
		return "forever"
	}
	return fmt.Sprintf("%gs", d.seconds)
}
