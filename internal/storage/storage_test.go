package storage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Success verifies that a fresh arena has the requested capacity
// and is zero-filled.
func TestNew_Success(t *testing.T) {
	t.Parallel()

	buf, err := New(64)
	require.NoError(t, err, "allocation should succeed")
	assert.Equal(t, int64(64), buf.Capacity(), "capacity should match the request")

	view, err := buf.Range(0, 64)
	require.NoError(t, err, "full-range view should succeed")
	for i, b := range view {
		require.Zero(t, b, "byte %d should be zero-initialized", i)
	}
}

// TestNew_Fail_InvalidCapacity verifies that zero and negative capacities
// are rejected.
func TestNew_Fail_InvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1, -512} {
		buf, err := New(capacity)
		require.ErrorIs(t, err, ErrInvalidCapacity, "capacity %d should be rejected", capacity)
		assert.Nil(t, buf, "no arena should be returned for capacity %d", capacity)
	}
}

// TestRange_Table verifies the bounds checking of range views.
func TestRange_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		start   int64
		length  int64
		wantErr bool
	}{
		{"Success_Full", 0, 32, false},
		{"Success_Empty", 0, 0, false},
		{"Success_EmptyAtEnd", 32, 0, false},
		{"Success_Middle", 8, 16, false},
		{"Fail_NegativeStart", -1, 4, true},
		{"Fail_NegativeLength", 0, -4, true},
		{"Fail_PastEnd", 30, 4, true},
		{"Fail_StartPastEnd", 33, 0, true},
		{"Fail_HugeLength", 1, math.MaxInt64, true},
		{"Fail_HugeStart", math.MaxInt64, 1, true},
	}

	buf, err := New(32)
	require.NoError(t, err, "allocation should succeed")

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			view, err := buf.Range(tc.start, tc.length)

			if tc.wantErr {
				require.ErrorIs(t, err, ErrOutOfBounds, "out-of-range view should fail")
				assert.Nil(t, view, "no view should be returned")

				return
			}

			require.NoError(t, err, "in-range view should succeed")
			assert.Len(t, view, int(tc.length), "view should span the requested length")
		})
	}
}

// TestRange_ViewIsMutable verifies that writes through a range view land
// in the arena.
func TestRange_ViewIsMutable(t *testing.T) {
	t.Parallel()

	buf, err := New(16)
	require.NoError(t, err, "allocation should succeed")

	view, err := buf.Range(4, 4)
	require.NoError(t, err, "view should succeed")
	copy(view, "data")

	check, err := buf.Range(0, 16)
	require.NoError(t, err, "full view should succeed")
	assert.Equal(t, "data", string(check[4:8]), "written bytes should land in the arena")
}
