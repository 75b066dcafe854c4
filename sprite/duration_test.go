package sprite

import (
	"encoding/json"
	"testing"
)

func TestPlayDuration(t *testing.T) {
	if Seconds(-2) != Seconds(0) {
		t.Errorf("negative durations saturate to zero")
	}
	if !Seconds(1.5).Elapsed(1.5) {
		t.Errorf("a bounded duration elapses at exactly its length")
	}
	if Seconds(1.5).Elapsed(1.4) {
		t.Errorf("a bounded duration must not elapse early")
	}
	if Forever.Elapsed(1e12) {
		t.Errorf("Forever never elapses")
	}
	if got := Forever.cap(0.5); got != 0.5 {
		t.Errorf("an unbounded host leaves the effect length alone, got %g", got)
	}
	if got := Seconds(0.3).cap(0.5); got != 0.3 {
		t.Errorf("effect length caps to the host duration, got %g", got)
	}
	if !Forever.minus(0.5).Unbounded() {
		t.Errorf("subtracting from Forever stays unbounded")
	}
	if got := Seconds(1.5).minus(0.5); got != Seconds(1) {
		t.Errorf("start offset = %v, want 1s", got)
	}
}

func TestPlayDurationJSON(t *testing.T) {
	cases := []struct {
		name string
		in   PlayDuration
	}{
		{"bounded", Seconds(2.5)},
		{"zero", Seconds(0)},
		{"unbounded", Forever},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := json.Marshal(c.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var out PlayDuration
			if err := json.Unmarshal(data, &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out != c.in {
				t.Fatalf("round trip changed %v into %v", c.in, out)
			}
		})
	}
}
