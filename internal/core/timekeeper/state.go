package timekeeper

import (
	"fmt"

	"mindful/internal/core/model"
)

// Status distinguishes an idle runtime from one holding a session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
)

func (status Status) String() string {
	if status == StatusRunning {
		return "running"
	}
	return "idle"
}

// BreathPhase is one stage of the breathing cycle.
type BreathPhase string

const (
	PhaseInhale BreathPhase = "inhale"
	PhaseHold   BreathPhase = "hold"
	PhaseExhale BreathPhase = "exhale"
	PhasePause  BreathPhase = "pause"
)

var phaseCycle = []BreathPhase{PhaseInhale, PhaseHold, PhaseExhale, PhasePause}

// Next returns the phase that follows in the cycle, wrapping after pause.
func (phase BreathPhase) Next() BreathPhase {
	for index, candidate := range phaseCycle {
		if candidate == phase {
			return phaseCycle[(index+1)%len(phaseCycle)]
		}
	}
	return PhaseInhale
}

// Instruction is the text shown to the user during the phase.
func (phase BreathPhase) Instruction() string {
	switch phase {
	case PhaseHold:
		return "Hold"
	case PhaseExhale:
		return "Breathe Out"
	case PhasePause:
		return "Pause"
	default:
		return "Breathe In"
	}
}

// Scale is the target size of the breathing circle relative to rest.
func (phase BreathPhase) Scale() float32 {
	switch phase {
	case PhaseInhale:
		return 1.5
	case PhaseExhale:
		return 0.75
	default:
		return 1
	}
}

// State is the session runtime. The zero value is Idle.
//
// A nil session means Idle; every other field is only meaningful while a
// session is held, and accessors report rest values otherwise.
type State struct {
	session   *model.Session
	remaining int
	playing   bool
	phase     BreathPhase
}

// Start begins a fresh run of session, replacing any current run.
func (state *State) Start(session model.Session) {
	state.session = &session
	state.remaining = session.DurationSeconds()
	if state.remaining < 0 {
		state.remaining = 0
	}
	state.playing = true
	state.phase = PhaseInhale
}

// Toggle flips play/pause. It does nothing while idle.
func (state *State) Toggle() {
	if state.session == nil {
		return
	}
	state.playing = !state.playing
}

// Stop returns to Idle.
func (state *State) Stop() {
	*state = State{}
}

// Tick consumes one second of the countdown. At zero the runtime pauses
// itself but keeps the session. It reports whether anything changed.
func (state *State) Tick() bool {
	if !state.CountdownArmed() {
		return false
	}
	state.remaining--
	if state.remaining <= 0 {
		state.remaining = 0
		state.playing = false
	}
	return true
}

// AdvancePhase moves the breathing cycle forward by one phase. It reports
// whether anything changed.
func (state *State) AdvancePhase() bool {
	if !state.PhaseArmed() {
		return false
	}
	state.phase = state.Phase().Next()
	return true
}

// CountdownArmed reports whether the one-second timer should be running.
func (state State) CountdownArmed() bool {
	return state.session != nil && state.playing && state.remaining > 0
}

// PhaseArmed reports whether the breathing phase timer should be running.
func (state State) PhaseArmed() bool {
	return state.session != nil && state.playing && state.session.IsBreathing()
}

// Status reports Idle or Running.
func (state State) Status() Status {
	if state.session == nil {
		return StatusIdle
	}
	return StatusRunning
}

// Session returns the active session, if any.
func (state State) Session() (model.Session, bool) {
	if state.session == nil {
		return model.Session{}, false
	}
	return *state.session, true
}

// Remaining returns the seconds left, zero when idle.
func (state State) Remaining() int {
	return state.remaining
}

// Playing reports whether the timers advance.
func (state State) Playing() bool {
	return state.playing
}

// Phase returns the breathing phase, inhale when idle.
func (state State) Phase() BreathPhase {
	if state.session == nil || state.phase == "" {
		return PhaseInhale
	}
	return state.phase
}

// Finished reports whether the countdown has run out for the held session.
func (state State) Finished() bool {
	return state.session != nil && state.remaining == 0
}

// Snapshot copies the state into a plain value for observers.
func (state State) Snapshot() Snapshot {
	snapshot := Snapshot{
		Status:    state.Status(),
		Remaining: state.remaining,
		Playing:   state.playing,
		Phase:     state.Phase(),
	}
	if session, ok := state.Session(); ok {
		snapshot.Session = session
	}
	return snapshot
}

// Snapshot is an immutable view of State.
type Snapshot struct {
	Status    Status
	Session   model.Session
	Remaining int
	Playing   bool
	Phase     BreathPhase
}

// Running reports whether a session is held.
func (snapshot Snapshot) Running() bool {
	return snapshot.Status == StatusRunning
}

// Clock renders the remaining time as m:ss.
func (snapshot Snapshot) Clock() string {
	return FormatClock(snapshot.Remaining)
}

// ShowsBreathing reports whether the breathing guide belongs on screen.
func (snapshot Snapshot) ShowsBreathing() bool {
	return snapshot.Running() && snapshot.Session.IsBreathing()
}

// Progress is the elapsed fraction of the session in [0, 1].
func (snapshot Snapshot) Progress() float64 {
	total := snapshot.Session.DurationSeconds()
	if !snapshot.Running() || total <= 0 {
		return 0
	}
	progress := float64(total-snapshot.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// FormatClock renders seconds as minutes:seconds. Seconds are always two
// digits; minutes are not padded.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
