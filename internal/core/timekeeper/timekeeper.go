package timekeeper

import (
	"sync"
	"time"

	"mindful/internal/core/model"
)

// TimeKeeper drives a State with the countdown and breathing timers.
//
// Every transition happens under one mutex, so timer callbacks and user
// actions are applied one at a time. After each transition both timers are
// re-evaluated: a timer whose condition no longer holds is disarmed, and one
// is armed only while its condition holds.
type TimeKeeper struct {
	mu        sync.Mutex
	config    model.RuntimeConfig
	state     State
	countdown *armedTimer
	breathing *armedTimer
	events    []chan Event
	closed    bool
}

type armedTimer struct {
	stopCh chan struct{}
}

// New creates an idle TimeKeeper.
func New(config model.RuntimeConfig) *TimeKeeper {
	return &TimeKeeper{
		config: config.Normalize(),
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Start begins a fresh run of session, replacing the current one.
func (keeper *TimeKeeper) Start(session model.Session) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.state.Start(session)
	keeper.rearmLocked()
	keeper.emitLocked(EventStateChange, time.Now())
}

// Toggle flips play/pause of the current run.
func (keeper *TimeKeeper) Toggle() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.state.Status() == StatusIdle {
		return
	}
	keeper.state.Toggle()
	keeper.rearmLocked()
	keeper.emitLocked(EventStateChange, time.Now())
}

// Stop ends the current run and returns to idle.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.state.Status() == StatusIdle {
		return
	}
	keeper.state.Stop()
	keeper.rearmLocked()
	keeper.emitLocked(EventStateChange, time.Now())
}

// UpdateConfig changes timer intervals. Armed timers restart with the new
// intervals.
func (keeper *TimeKeeper) UpdateConfig(config model.RuntimeConfig) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.config = config.Normalize()
	if keeper.closed {
		return
	}
	keeper.rearmLocked()
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state.Snapshot()
}

// Armed reports which timers are currently running.
func (keeper *TimeKeeper) Armed() (countdown bool, breathing bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.countdown != nil, keeper.breathing != nil
}

// Close disarms both timers and closes observers. The keeper ignores all
// further calls.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.disarm(&keeper.countdown)
	keeper.disarm(&keeper.breathing)
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) rearmLocked() {
	keeper.disarm(&keeper.countdown)
	keeper.disarm(&keeper.breathing)
	keeper.armLocked()
}

func (keeper *TimeKeeper) armLocked() {
	if keeper.countdown == nil && keeper.state.CountdownArmed() {
		keeper.countdown = keeper.arm(keeper.config.TickInterval, keeper.tick)
	}
	if keeper.breathing == nil && keeper.state.PhaseArmed() {
		keeper.breathing = keeper.arm(keeper.config.PhaseInterval, keeper.advance)
	}
}

// settleLocked disarms timers whose condition stopped holding after a tick.
func (keeper *TimeKeeper) settleLocked() {
	if !keeper.state.CountdownArmed() {
		keeper.disarm(&keeper.countdown)
	}
	if !keeper.state.PhaseArmed() {
		keeper.disarm(&keeper.breathing)
	}
}

func (keeper *TimeKeeper) arm(interval time.Duration, fire func(*armedTimer, time.Time)) *armedTimer {
	timer := &armedTimer{stopCh: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-timer.stopCh:
				return
			case tickTime := <-ticker.C:
				fire(timer, tickTime)
			}
		}
	}()
	return timer
}

func (keeper *TimeKeeper) disarm(slot **armedTimer) {
	if *slot == nil {
		return
	}
	close((*slot).stopCh)
	*slot = nil
}

func (keeper *TimeKeeper) tick(timer *armedTimer, tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	// A tick read just before disarming belongs to a dead timer.
	if keeper.countdown != timer {
		return
	}
	if !keeper.state.Tick() {
		return
	}
	keeper.settleLocked()
	keeper.emitLocked(EventTick, tickTime)
	if keeper.state.Finished() {
		keeper.emitLocked(EventFinished, tickTime)
	}
}

func (keeper *TimeKeeper) advance(timer *armedTimer, tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.breathing != timer {
		return
	}
	if !keeper.state.AdvancePhase() {
		return
	}
	keeper.emitLocked(EventPhase, tickTime)
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, at time.Time) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.state.Snapshot(),
		At:       at,
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
