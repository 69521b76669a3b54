package timekeeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mindful/internal/core/model"
)

const (
	waitFor = 2 * time.Second
	pollAt  = 2 * time.Millisecond
)

func fastKeeper(t *testing.T) *TimeKeeper {
	t.Helper()
	keeper := New(model.RuntimeConfig{
		TickInterval:  2 * time.Millisecond,
		PhaseInterval: 5 * time.Millisecond,
	})
	t.Cleanup(keeper.Close)
	return keeper
}

func TestNewNormalizesConfig(t *testing.T) {
	keeper := New(model.RuntimeConfig{})
	defer keeper.Close()
	require.Equal(t, model.DefaultRuntimeConfig(), keeper.config)
	require.False(t, keeper.Snapshot().Running())
}

func TestStartArmsTimersForBreathing(t *testing.T) {
	keeper := New(model.DefaultRuntimeConfig())
	defer keeper.Close()

	keeper.Start(breathingSession(5))
	countdown, breathing := keeper.Armed()
	require.True(t, countdown)
	require.True(t, breathing)

	snapshot := keeper.Snapshot()
	require.True(t, snapshot.Running())
	require.Equal(t, 300, snapshot.Remaining)
	require.True(t, snapshot.Playing)
	require.Equal(t, PhaseInhale, snapshot.Phase)
}

func TestStartArmsOnlyCountdownForMeditation(t *testing.T) {
	keeper := New(model.DefaultRuntimeConfig())
	defer keeper.Close()

	keeper.Start(meditationSession(5))
	countdown, breathing := keeper.Armed()
	require.True(t, countdown)
	require.False(t, breathing)
}

func TestToggleDisarmsAndRearms(t *testing.T) {
	keeper := New(model.DefaultRuntimeConfig())
	defer keeper.Close()

	keeper.Start(breathingSession(5))
	keeper.Toggle()
	countdown, breathing := keeper.Armed()
	require.False(t, countdown)
	require.False(t, breathing)
	require.False(t, keeper.Snapshot().Playing)

	keeper.Toggle()
	countdown, breathing = keeper.Armed()
	require.True(t, countdown)
	require.True(t, breathing)
}

func TestToggleAndStopAreNoopsWhenIdle(t *testing.T) {
	keeper := New(model.DefaultRuntimeConfig())
	defer keeper.Close()
	events := keeper.Subscribe(4)

	keeper.Toggle()
	keeper.Stop()

	require.Len(t, events, 0)
	countdown, breathing := keeper.Armed()
	require.False(t, countdown)
	require.False(t, breathing)
}

func TestStopDisarmsTimers(t *testing.T) {
	keeper := New(model.DefaultRuntimeConfig())
	defer keeper.Close()

	keeper.Start(breathingSession(5))
	keeper.Stop()

	countdown, breathing := keeper.Armed()
	require.False(t, countdown)
	require.False(t, breathing)
	require.Equal(t, State{}.Snapshot(), keeper.Snapshot())
}

func TestCountdownRunsToZeroAndPauses(t *testing.T) {
	keeper := fastKeeper(t)
	events := keeper.Subscribe(512)

	keeper.Start(meditationSession(1))

	require.Eventually(t, func() bool {
		return keeper.Snapshot().Remaining == 0
	}, waitFor, pollAt)

	snapshot := keeper.Snapshot()
	require.True(t, snapshot.Running())
	require.False(t, snapshot.Playing)
	countdown, breathing := keeper.Armed()
	require.False(t, countdown)
	require.False(t, breathing)

	finished := 0
	ticks := 0
	for len(events) > 0 {
		event := <-events
		switch event.Type {
		case EventTick:
			ticks++
			require.GreaterOrEqual(t, event.Snapshot.Remaining, 0)
		case EventFinished:
			finished++
		}
	}
	require.Equal(t, 60, ticks)
	require.Equal(t, 1, finished)
}

func TestPhaseAdvancesWhilePlaying(t *testing.T) {
	keeper := fastKeeper(t)
	events := keeper.Subscribe(1024)
	keeper.Start(breathingSession(60))

	var phases []BreathPhase
	timeout := time.After(waitFor)
	for len(phases) < 4 {
		select {
		case event := <-events:
			if event.Type == EventPhase {
				phases = append(phases, event.Snapshot.Phase)
			}
		case <-timeout:
			t.Fatalf("saw phases %v before timeout", phases)
		}
	}
	require.Equal(t, []BreathPhase{PhaseHold, PhaseExhale, PhasePause, PhaseInhale}, phases)
}

func TestPausedKeeperDoesNotAdvance(t *testing.T) {
	keeper := fastKeeper(t)
	keeper.Start(breathingSession(60))
	keeper.Toggle()
	frozen := keeper.Snapshot()

	time.Sleep(30 * time.Millisecond)
	require.Equal(t, frozen, keeper.Snapshot())
}

func TestCloseClosesSubscribersAndIgnoresCalls(t *testing.T) {
	keeper := New(model.DefaultRuntimeConfig())
	events := keeper.Subscribe(1)
	keeper.Start(breathingSession(5))
	<-events

	keeper.Close()
	_, open := <-events
	require.False(t, open)

	countdown, breathing := keeper.Armed()
	require.False(t, countdown)
	require.False(t, breathing)

	keeper.Start(meditationSession(1))
	countdown, _ = keeper.Armed()
	require.False(t, countdown)

	late := keeper.Subscribe(1)
	_, open = <-late
	require.False(t, open)

	keeper.Close()
}

func TestStateChangeEventCarriesSnapshot(t *testing.T) {
	keeper := New(model.DefaultRuntimeConfig())
	defer keeper.Close()
	events := keeper.Subscribe(4)

	keeper.Start(breathingSession(5))
	event := <-events
	require.Equal(t, EventStateChange, event.Type)
	require.Equal(t, "b", event.Snapshot.Session.ID)
	require.Equal(t, 300, event.Snapshot.Remaining)

	keeper.Stop()
	event = <-events
	require.Equal(t, EventStateChange, event.Type)
	require.False(t, event.Snapshot.Running())
}

func TestUpdateConfigKeepsState(t *testing.T) {
	keeper := New(model.DefaultRuntimeConfig())
	defer keeper.Close()
	keeper.Start(breathingSession(5))

	keeper.UpdateConfig(model.RuntimeConfig{PhaseInterval: 6 * time.Second})
	require.Equal(t, time.Second, keeper.config.TickInterval)
	require.Equal(t, 6*time.Second, keeper.config.PhaseInterval)
	require.Equal(t, 300, keeper.Snapshot().Remaining)
	countdown, breathing := keeper.Armed()
	require.True(t, countdown)
	require.True(t, breathing)
}
