package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "completed", "failed", "cancelled"} {
		parsed, err := ParseOrderStatus(s)
		require.NoError(t, err)
		require.Equal(t, OrderStatus(s), parsed)
	}

	_, err := ParseOrderStatus("refunded")
	require.Error(t, err)

	_, err = ParseOrderStatus("")
	require.Error(t, err)
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusCancelled, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusFailed, StatusCompleted, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCompleted, false},

		// same-state stays an idempotent success
		{StatusCancelled, StatusCancelled, true},
		{StatusCompleted, StatusCompleted, true},
		{StatusPending, StatusPending, true},
	}

	for _, tc := range cases {
		require.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}
