package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeaseStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "ACTIVE", "EXPIRED", "TERMINATED"} {
		got, err := ParseLeaseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, LeaseStatus(s), got)
	}

	_, err := ParseLeaseStatus("active")
	assert.Error(t, err)
	_, err = ParseLeaseStatus("CANCELLED")
	assert.Error(t, err)
}

func TestLeaseStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to LeaseStatus
		ok       bool
	}{
		{LeasePending, LeaseActive, true},
		{LeaseActive, LeaseExpired, true},
		{LeaseActive, LeaseTerminated, true},
		{LeasePending, LeaseExpired, false},
		{LeasePending, LeaseTerminated, false},
		{LeaseActive, LeasePending, false},
		{LeaseExpired, LeaseActive, false},
		{LeaseExpired, LeaseTerminated, false},
		{LeaseTerminated, LeaseActive, false},
		{LeaseTerminated, LeaseExpired, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}
