package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSecondInstanceActivatesFirst(t *testing.T) {
	name := fmt.Sprintf("mindful-test-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer guard.Release()

	activated := make(chan struct{}, 1)
	guard.Serve(func() {
		activated <- struct{}{}
	})

	second, err := AcquireSingleInstance(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)
	require.Nil(t, second)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestReleaseFreesPort(t *testing.T) {
	name := fmt.Sprintf("mindful-release-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NotEmpty(t, guard.Address())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestNilGuardIsSafe(t *testing.T) {
	var guard *InstanceGuard
	require.NoError(t, guard.Release())
	require.Empty(t, guard.Address())
	guard.Serve(nil)
}

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	port := portFromName("Mindful")
	require.Equal(t, port, portFromName("Mindful"))
	require.GreaterOrEqual(t, port, 20000)
	require.LessOrEqual(t, port, 39999)
}
