package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	for _, sentinel := range []error{ErrorNotFound, ErrUnsupportedSnapshotVersion, ErrCorruptSnapshot, ErrNoSession, ErrAdminLocked} {
		wrapped := fmt.Errorf("restore: %w", sentinel)
		require.True(t, errors.Is(wrapped, sentinel), "%v must match through wrapping", sentinel)
	}
}

func TestSentinels_AreDistinct(t *testing.T) {
	require.False(t, errors.Is(ErrUnsupportedSnapshotVersion, ErrCorruptSnapshot))
	require.False(t, errors.Is(ErrNoSession, ErrAdminLocked))
}
