// Package sprite implements a queue-driven animation player for tile-based
// spritesheets. A Sprite owns a catalog of named animations, a queue of
// (animation, duration) entries played back to back, and the timers that
// advance frames and drive the per-animation effect window. Ticking is fully
// explicit: callers feed in delta time, so identical inputs replay to
// identical frame and effect outputs.
package sprite

// QueueEntry is one scheduled playback: which animation and for how long.
type QueueEntry[K comparable] struct {
	Key      K            `json:"key"`
	Duration PlayDuration `json:"duration"`
}

// Sprite is the aggregate playback state for one animated spritesheet.
// The key type needs equality and hashing only; games typically use a string
// or a small integer state enum.
type Sprite[K comparable] struct {
	tileWidth  float32
	tileHeight float32
	animations map[K]Animation
	defaultKey K
	queue      []QueueEntry[K]

	currentFrame int
	loopTime     float32 // resets every whole-frame step
	animTime     float32 // total time in the current animation instance
	queueTime    float32 // time since the front queue entry began
	playingTime  float32 // lifetime total, reset only by Reset

	paused     bool
	currentKey K
	prevKey    K
	hasPrev    bool
	fx         effectsState
}

// New creates a Sprite with the mandatory default animation. tileWidth and
// tileHeight are the pixel dimensions of one frame cell on the sheet.
func New[K comparable](tileWidth, tileHeight float32, defaultKey K, defaultAnimation Animation) *Sprite[K] {
	s := &Sprite[K]{
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		animations: map[K]Animation{defaultKey: defaultAnimation},
		defaultKey: defaultKey,
		currentKey: defaultKey,
	}
	return s
}

// Register inserts an animation under key, replacing any previous one.
func (s *Sprite[K]) Register(key K, a Animation) *Sprite[K] {
	s.animations[key] = a
	return s
}

// Delete removes a registered animation. Deleting the key currently playing,
// queued, or set as default is accepted silently: frame-rect queries return
// false and draws no-op until the state advances past the dangling reference.
func (s *Sprite[K]) Delete(key K) *Sprite[K] {
	delete(s.animations, key)
	return s
}

// SetDefault switches the default animation to a previously registered key.
// If the queue is empty the new default starts playing immediately with
// unbounded duration. Returns false without side effects for an unknown key.
func (s *Sprite[K]) SetDefault(key K) bool {
	if _, ok := s.animations[key]; !ok {
		return false
	}
	s.defaultKey = key
	if len(s.queue) == 0 {
		s.start(key, Forever)
	}
	return true
}

// Enqueue schedules a registered animation to play for the given duration.
// If the queue was empty it starts immediately. Returns false without side
// effects for an unknown key.
func (s *Sprite[K]) Enqueue(key K, d PlayDuration) bool {
	if _, ok := s.animations[key]; !ok {
		return false
	}
	s.queue = append(s.queue, QueueEntry[K]{Key: key, Duration: d})
	if len(s.queue) == 1 {
		s.start(key, d)
	}
	return true
}

// AdvanceQueue drops the front entry even mid-playback and zeroes the frame
// and time counters. The descriptor-level effect reset happens on the next
// switch, exactly as it would for a natural queue advance.
func (s *Sprite[K]) AdvanceQueue() *Sprite[K] {
	if len(s.queue) > 0 {
		s.queue = s.queue[1:]
	}
	s.currentFrame = 0
	s.loopTime = 0
	s.animTime = 0
	s.queueTime = 0
	return s
}

// ResetQueue clears every queued entry and zeroes the frame and in-animation
// timers. Lifetime playing time is untouched.
func (s *Sprite[K]) ResetQueue() *Sprite[K] {
	s.queue = s.queue[:0]
	s.currentFrame = 0
	s.loopTime = 0
	s.animTime = 0
	s.queueTime = 0
	return s
}

// ClearQueue drops all queued entries without touching any timer.
func (s *Sprite[K]) ClearQueue() *Sprite[K] {
	s.queue = s.queue[:0]
	return s
}

// Reset clears the queue and all counters, including lifetime playing time.
func (s *Sprite[K]) Reset() *Sprite[K] {
	s.currentFrame = 0
	s.animTime = 0
	s.loopTime = 0
	s.queueTime = 0
	s.playingTime = 0
	return s.ClearQueue()
}

// SetFrame jumps to frame modulo the current animation's total frames,
// allowing discontinuous skips. Returns false if no current animation
// resolves or it has no frames.
func (s *Sprite[K]) SetFrame(frame int) bool {
	a, ok := s.currentAnimation()
	if !ok {
		return false
	}
	total := a.TotalFrames()
	if total == 0 {
		return false
	}
	if frame < 0 {
		frame = 0
	}
	s.currentFrame = frame % total
	return true
}

// Pause stops timers, frame advances and queue transitions. Idempotent.
func (s *Sprite[K]) Pause() *Sprite[K] {
	s.paused = true
	return s
}

// Resume restarts a paused sprite. Idempotent.
func (s *Sprite[K]) Resume() *Sprite[K] {
	s.paused = false
	return s
}

// IsPaused reports whether the sprite is paused.
func (s *Sprite[K]) IsPaused() bool { return s.paused }

// QueueLen returns the number of entries in the animation queue, the front
// entry (currently playing) included.
func (s *Sprite[K]) QueueLen() int { return len(s.queue) }

// QueueEmpty reports whether the queue has drained to the default animation.
func (s *Sprite[K]) QueueEmpty() bool { return len(s.queue) == 0 }

// CurrentAnimationKey is the key of the animation that should be showing:
// the front queue entry, or the default when the queue is empty.
func (s *Sprite[K]) CurrentAnimationKey() K {
	if len(s.queue) > 0 {
		return s.queue[0].Key
	}
	return s.defaultKey
}

// PreviousAnimationKey returns the key that was playing before the last
// switch, if a switch has occurred.
func (s *Sprite[K]) PreviousAnimationKey() (K, bool) {
	return s.prevKey, s.hasPrev
}

// CurrentFrame is the frame index in the current animation's total-frames
// space.
func (s *Sprite[K]) CurrentFrame() int { return s.currentFrame }

// IsLastFrame reports whether the current frame is the final frame of the
// current animation.
func (s *Sprite[K]) IsLastFrame() bool {
	a, ok := s.currentAnimation()
	if !ok {
		return false
	}
	return s.currentFrame == a.TotalFrames()-1
}

// PlayingTime is the lifetime number of seconds this sprite has animated,
// across all animations. Only Reset clears it.
func (s *Sprite[K]) PlayingTime() float32 { return s.playingTime }

// CurrentAnimationTime is the number of seconds the current animation
// instance has been playing.
func (s *Sprite[K]) CurrentAnimationTime() float32 { return s.animTime }

// EffectProgress is the normalized [0,1] progress of the attached effect.
// Reads 1 when no effect is configured or its window has zero length.
func (s *Sprite[K]) EffectProgress() float32 { return s.fx.progress() }

// EffectActive reports whether the current animation's effect is inside its
// window right now.
func (s *Sprite[K]) EffectActive() bool { return s.fx.Active }

// TileSize returns the pixel dimensions of one frame cell.
func (s *Sprite[K]) TileSize() (w, h float32) { return s.tileWidth, s.tileHeight }

// Animation looks up a registered descriptor. The returned value owns its row
// and effect storage, so mutating it leaves the catalog entry untouched.
func (s *Sprite[K]) Animation(key K) (Animation, bool) {
	a, ok := s.animations[key]
	if !ok {
		return Animation{}, false
	}
	a.Rows = append([]int(nil), a.Rows...)
	if a.Effect != nil {
		b := *a.Effect
		b.Effect = b.Effect.Clone()
		a.Effect = &b
	}
	return a, true
}

func (s *Sprite[K]) currentAnimation() (Animation, bool) {
	a, ok := s.animations[s.CurrentAnimationKey()]
	return a, ok
}

// start begins a new animation instance: counters zero, effect window
// recomputed from the entry's play duration.
func (s *Sprite[K]) start(key K, total PlayDuration) {
	s.prevKey = s.currentKey
	s.hasPrev = true
	s.currentKey = key
	s.currentFrame = 0
	s.loopTime = 0
	s.animTime = 0
	s.queueTime = 0
	s.fx.reset()

	a, ok := s.animations[key]
	if !ok || a.Effect == nil {
		return
	}
	capped := total.cap(a.Effect.Target.Duration)
	s.fx.Duration = capped
	if a.Effect.Target.AtEnd {
		// Activates later, once the instance time crosses the start offset.
		// With an unbounded host that crossing never comes.
		s.fx.StartTime = total.minus(capped)
	} else {
		s.fx.Active = true
		s.fx.StartTime = Seconds(0)
	}
}

// Tick advances the sprite by dt seconds: timers, effect activation window,
// whole-frame steps, and finally the queue switch. A queue switch is blocked
// while the effect is active, so a duration shorter than an end-anchored
// effect's tail never cuts the effect off; the switch lands when the effect
// naturally completes. No-op while paused.
func (s *Sprite[K]) Tick(dt float32) {
	if s.paused {
		return
	}
	if dt < 0 {
		dt = 0
	}

	s.playingTime += dt
	s.loopTime += dt
	s.animTime += dt
	s.queueTime += dt

	switchAnimation := len(s.queue) > 0 && s.queue[0].Duration.Elapsed(s.queueTime)

	if a, ok := s.animations[s.currentKey]; ok {
		if b := a.Effect; b != nil && !s.fx.Active && !s.fx.Played {
			if !b.Target.AtEnd || s.fx.StartTime.Elapsed(s.animTime) {
				s.fx.Active = true
				s.fx.EffectTime = 0
			}
		}

		if s.fx.Active {
			s.fx.EffectTime += dt
			if s.fx.EffectTime >= s.fx.Duration {
				s.fx.Active = false
				s.fx.Played = true
			}
		}

		if total := a.TotalFrames(); a.FPS > 0 && total > 0 {
			frameDuration := 1 / float32(a.FPS)
			// Drains arbitrarily large deltas by whole frames, so a slow tick
			// rate skips frames instead of dropping time.
			for s.loopTime >= frameDuration {
				s.currentFrame = (s.currentFrame + 1) % total
				s.loopTime -= frameDuration
			}
		}

		if len(s.queue) > 0 && s.queue[0].Duration.Elapsed(s.queueTime) {
			switchAnimation = true
		}
	}

	if switchAnimation && !s.fx.Active {
		s.queue = s.queue[1:]
		if len(s.queue) > 0 {
			s.start(s.queue[0].Key, s.queue[0].Duration)
		} else {
			s.start(s.defaultKey, Forever)
		}
	}
}
