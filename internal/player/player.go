// Package player binds wall-clock playback position to the time-coded items
// of the current document: jump-to-segment, auto-stop at segment boundaries,
// and play/pause state. The engine never decodes audio; it drives an opaque
// playback handle and consumes its position ticks.
package player

import (
	"log"
	"sync"

	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// State is the controller's playback state.
type State string

const (
	StateIdle    State = "idle"
	StatePaused  State = "loaded-paused"
	StatePlaying State = "loaded-playing"
)

// Playback is the opaque playable-resource handle supplied by the hosting
// environment. The controller commands it; position updates flow back in
// through HandleTick and friends.
type Playback interface {
	Play() error
	Pause()
	Seek(seconds float64)
	Release()
}

// Controller is the audio-sync state machine. Position ticks arrive
// asynchronously, so every entry point takes the one lock; no partially
// applied transition is observable.
type Controller struct {
	mu sync.Mutex

	// current returns the live document; the controller never caches it,
	// segment lookups always run against the latest committed state.
	current func() *transcript.Document

	playback  Playback
	state     State
	time      float64
	duration  float64
	segmentID string
}

// NewController creates an idle controller reading documents from current.
func NewController(current func() *transcript.Document) *Controller {
	return &Controller{
		current: current,
		state:   StateIdle,
	}
}

// LoadAudio swaps in a new playback resource. Any previously held resource
// is released first and all playback fields reset, so nothing can touch the
// old resource after replacement. A nil handle is treated as unloading.
func (c *Controller) LoadAudio(p Playback) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playback != nil {
		c.playback.Pause()
		c.playback.Release()
	}
	c.playback = p
	if p == nil {
		c.state = StateIdle
	} else {
		c.state = StatePaused
	}
	c.time = 0
	c.duration = 0
	c.segmentID = ""
}

// UnloadAudio releases the resource and returns to idle.
func (c *Controller) UnloadAudio() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playback != nil {
		c.playback.Pause()
		c.playback.Release()
		c.playback = nil
	}
	c.state = StateIdle
	c.time = 0
	c.duration = 0
	c.segmentID = ""
}

// TogglePlay flips between paused and playing. No-op while idle.
func (c *Controller) TogglePlay() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StatePlaying:
		c.playback.Pause()
		c.state = StatePaused
	case StatePaused:
		c.play()
	}
}

// play starts the resource; must be called with the lock held.
func (c *Controller) play() {
	if err := c.playback.Play(); err != nil {
		log.Printf("player: play failed: %v", err)
		c.state = StatePaused
		return
	}
	c.state = StatePlaying
}

// Seek moves the playhead, clamped to [0, duration]. Valid in any loaded
// state; no-op while idle.
func (c *Controller) Seek(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seek(t)
}

// seek clamps and applies a position; must be called with the lock held.
func (c *Controller) seek(t float64) {
	if c.state == StateIdle {
		return
	}
	if t < 0 {
		t = 0
	}
	if c.duration > 0 && t > c.duration {
		t = c.duration
	}
	c.playback.Seek(t)
	c.time = t
}

// JumpToSegment binds playback to the item with the given id: seeks to its
// start and begins playing if not already. Items that cannot be found or
// have no numeric start are logged and skipped, never fatal.
func (c *Controller) JumpToSegment(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateIdle {
		log.Printf("player: cannot jump to segment %s: no audio loaded", id)
		return
	}

	doc := c.current()
	if doc == nil {
		log.Printf("player: cannot jump to segment %s: no document", id)
		return
	}
	idx := doc.FindItem(id)
	if idx < 0 {
		log.Printf("player: segment %s not found", id)
		return
	}
	item := doc.Content[idx]
	if item.Start == nil {
		log.Printf("player: segment %s has no start time", id)
		return
	}

	c.segmentID = id
	c.seek(*item.Start)
	if c.state != StatePlaying {
		c.play()
	}
}

// HandleTick consumes an asynchronous position update. The tick value is the
// single source of truth for the playhead; ticks are not assumed to arrive
// at any fixed rate. When a bound segment's end is reached, playback stops
// and the binding clears: "play just this one segment".
func (c *Controller) HandleTick(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateIdle {
		return
	}
	c.time = t

	if c.segmentID == "" {
		return
	}
	doc := c.current()
	if doc == nil {
		return
	}
	idx := doc.FindItem(c.segmentID)
	if idx < 0 {
		// The bound item was edited away; drop the binding.
		c.segmentID = ""
		return
	}
	end := doc.Content[idx].End
	if end != nil && t >= *end {
		c.playback.Pause()
		c.state = StatePaused
		c.segmentID = ""
	}
}

// HandleDurationChange consumes a duration update from the resource.
func (c *Controller) HandleDurationChange(d float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle {
		return
	}
	c.duration = d
}

// HandleEnded consumes the end-of-resource event.
func (c *Controller) HandleEnded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle {
		return
	}
	c.state = StatePaused
	c.time = c.duration
	c.segmentID = ""
}

// DocumentReplaced invalidates segment binding when a new document is
// loaded: playback stops synchronously before the new content is used.
func (c *Controller) DocumentReplaced() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StatePlaying {
		c.playback.Pause()
		c.state = StatePaused
	}
	c.time = 0
	c.segmentID = ""
}

// State returns the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentTime returns the playhead position in seconds.
func (c *Controller) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}

// Duration returns the resource duration in seconds, 0 until known.
func (c *Controller) Duration() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// CurrentSegment returns the bound segment id, empty when none.
func (c *Controller) CurrentSegment() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.segmentID
}
