package sprite

import (
	"encoding/json"
	"fmt"
)

// snapshot is the persisted form of the whole aggregate. Every field that
// influences subsequent ticks is present, so a deserialized sprite continues
// bit-for-bit identically to the instance it was taken from. Custom effect
// transforms and easing functions carry function identities and are not part
// of the snapshot; the host re-attaches them after loading.
//
// Persistence requires the key type to be usable as a JSON map key, i.e. a
// string or integer kind.
type snapshot[K comparable] struct {
	TileWidth     float32         `json:"tile_width"`
	TileHeight    float32         `json:"tile_height"`
	Animations    map[K]Animation `json:"animations"`
	DefaultKey    K               `json:"default_key"`
	Queue         []QueueEntry[K] `json:"queue"`
	CurrentFrame  int             `json:"current_frame"`
	LoopTime      float32         `json:"loop_time"`
	AnimationTime float32         `json:"animation_time"`
	QueueTime     float32         `json:"queue_time"`
	PlayingTime   float32         `json:"playing_time"`
	Paused        bool            `json:"paused"`
	CurrentKey    K               `json:"current_key"`
	PreviousKey   *K              `json:"previous_key,omitempty"`
	Effects       effectsState    `json:"effects"`
}

// MarshalJSON serializes the full playback state.
func (s *Sprite[K]) MarshalJSON() ([]byte, error) {
	snap := snapshot[K]{
		TileWidth:     s.tileWidth,
		TileHeight:    s.tileHeight,
		Animations:    s.animations,
		DefaultKey:    s.defaultKey,
		Queue:         s.queue,
		CurrentFrame:  s.currentFrame,
		LoopTime:      s.loopTime,
		AnimationTime: s.animTime,
		QueueTime:     s.queueTime,
		PlayingTime:   s.playingTime,
		Paused:        s.paused,
		CurrentKey:    s.currentKey,
		Effects:       s.fx,
	}
	if s.hasPrev {
		prev := s.prevKey
		snap.PreviousKey = &prev
	}
	return json.Marshal(snap)
}

// UnmarshalJSON restores the full playback state.
func (s *Sprite[K]) UnmarshalJSON(data []byte) error {
	var snap snapshot[K]
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("sprite state: %w", err)
	}
	s.tileWidth = snap.TileWidth
	s.tileHeight = snap.TileHeight
	s.animations = snap.Animations
	if s.animations == nil {
		s.animations = map[K]Animation{}
	}
	s.defaultKey = snap.DefaultKey
	s.queue = snap.Queue
	s.currentFrame = snap.CurrentFrame
	s.loopTime = snap.LoopTime
	s.animTime = snap.AnimationTime
	s.queueTime = snap.QueueTime
	s.playingTime = snap.PlayingTime
	s.paused = snap.Paused
	s.currentKey = snap.CurrentKey
	if snap.PreviousKey != nil {
		s.prevKey = *snap.PreviousKey
		s.hasPrev = true
	} else {
		var zero K
		s.prevKey = zero
		s.hasPrev = false
	}
	s.fx = snap.Effects
	return nil
}
