package sprite

// effectsState is the per-animation-instance bookkeeping for the attached
// effect: how long it has run, the capped window length, when an end-anchored
// effect should begin, and the active/played flags. It transitions
// inactive -> active -> inactive(+played) at most once per instance.
type effectsState struct {
	EffectTime float32      `json:"effect_time"`
	Duration   float32      `json:"duration"`
	StartTime  PlayDuration `json:"start_time"`
	Active     bool         `json:"active"`
	Played     bool         `json:"played"`
}

func (s *effectsState) reset() {
	s.EffectTime = 0
	s.Duration = 0
	s.StartTime = PlayDuration{}
	s.Active = false
	s.Played = false
}

// progress is the normalized [0,1] fraction of the effect window elapsed.
// A zero-length window reads as fully complete so it never blocks anything.
func (s *effectsState) progress() float32 {
	if s.Duration <= 0 {
		return 1
	}
	p := s.EffectTime / s.Duration
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
