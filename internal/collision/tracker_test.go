package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(100)

	require.NotNil(t, tracker)
	require.Equal(t, 100, tracker.Threshold())
	require.Zero(t, tracker.MaxChain())
	require.Zero(t, tracker.Events())
	require.False(t, tracker.HasCollision())
}

func TestTracker_ObserveBelowThreshold(t *testing.T) {
	tracker := NewTracker(3)

	for _, chain := range []int{0, 1, 3, 2} {
		require.False(t, tracker.Observe(chain))
	}
	require.Equal(t, 3, tracker.MaxChain())
	require.False(t, tracker.HasCollision())
}

func TestTracker_ReportsFirstEventOnce(t *testing.T) {
	tracker := NewTracker(3)

	require.True(t, tracker.Observe(4))
	require.False(t, tracker.Observe(5))
	require.False(t, tracker.Observe(10))

	require.True(t, tracker.HasCollision())
	require.Equal(t, 3, tracker.Events())
	require.Equal(t, 10, tracker.MaxChain())
}

func TestTracker_Disabled(t *testing.T) {
	tracker := NewTracker(0)

	require.False(t, tracker.Observe(1000))
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1000, tracker.MaxChain())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker(1)
	require.True(t, tracker.Observe(2))

	tracker.Reset()
	require.Zero(t, tracker.Events())
	require.Zero(t, tracker.MaxChain())
	require.Equal(t, 1, tracker.Threshold())
	require.True(t, tracker.Observe(2), "reporting re-arms after Reset")
}
