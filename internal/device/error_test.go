package device

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// TestErrno_Table verifies the mapping of device errors (including
// wrapped ones) onto their character device errno values.
func TestErrno_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want unix.Errno
	}{
		{"Success_Nil", nil, 0},
		{"Success_InvalidArgument", ErrInvalidArgument, unix.EINVAL},
		{"Success_NoSpace", ErrNoSpace, unix.ENOSPC},
		{"Success_BadAddress", ErrBadAddress, unix.EFAULT},
		{"Success_WrappedSentinel", fmt.Errorf("wrapped: %w", ErrNoSpace), unix.ENOSPC},
		{"Success_UnknownError", errors.New("something else"), unix.EIO},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Errno(tc.err), "errno mapping should match")
		})
	}
}
