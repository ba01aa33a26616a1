package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusAllowed(t *testing.T) {
	for _, status := range AllowedStatuses() {
		require.True(t, StatusAllowed(status))
	}
	require.False(t, StatusAllowed("cancelled"))
	require.False(t, StatusAllowed(""))
}

func TestNormalizeStatus(t *testing.T) {
	require.Equal(t, StatusInProgress, NormalizeStatus("  In Progress "))
	require.Equal(t, StatusShipped, NormalizeStatus("SHIPPED"))
}
