package host

import (
	"testing"

	"github.com/hrasity/pcd/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFops is a no-op dispatch table for registry tests that never reach
// the I/O path.
type stubFops struct{}

func (stubFops) Open(*schema.Session) error    { return nil }
func (stubFops) Release(*schema.Session) error { return nil }
func (stubFops) Read(*schema.Session, schema.UserBuffer, int) (int, error) {
	return 0, nil
}
func (stubFops) Write(*schema.Session, schema.UserBuffer, int) (int, error) {
	return 0, nil
}
func (stubFops) Seek(*schema.Session, int64, schema.Whence) (int64, error) {
	return 0, nil
}

// TestAllocateNumber_Unique verifies that consecutive allocations hand
// out distinct majors and that released majors leave the books.
func TestAllocateNumber_Unique(t *testing.T) {
	t.Parallel()

	h := New()

	first, err := h.AllocateNumber("pcd_devices", 1)
	require.NoError(t, err, "first allocation should succeed")

	second, err := h.AllocateNumber("other_devices", 1)
	require.NoError(t, err, "second allocation should succeed")

	assert.NotEqual(t, first.Major, second.Major, "majors should be unique")
	assert.Equal(t, 2, h.AllocatedNumbers(), "both ranges should be held")

	require.NoError(t, h.ReleaseNumber(first, 1), "release should succeed")
	assert.Equal(t, 1, h.AllocatedNumbers(), "released range should leave the books")

	require.ErrorIs(t, h.ReleaseNumber(first, 1), ErrNotRegistered,
		"double release should fail")
}

// TestReleaseNumber_Fail_CountMismatch verifies that a release must name
// the booked range size.
func TestReleaseNumber_Fail_CountMismatch(t *testing.T) {
	t.Parallel()

	h := New()

	num, err := h.AllocateNumber("pcd_devices", 4)
	require.NoError(t, err, "allocation should succeed")

	require.ErrorIs(t, h.ReleaseNumber(num, 1), ErrInvalidAllocation,
		"a release with the wrong count should be rejected")
	assert.Equal(t, 1, h.AllocatedNumbers(), "the range should stay booked")

	require.NoError(t, h.ReleaseNumber(num, 4), "a matching release should succeed")
	assert.Zero(t, h.AllocatedNumbers(), "the range should leave the books")
}

// TestAllocateNumber_Fail_InvalidRequest verifies the rejection of empty
// names and zero counts.
func TestAllocateNumber_Fail_InvalidRequest(t *testing.T) {
	t.Parallel()

	h := New()

	_, err := h.AllocateNumber("", 1)
	require.ErrorIs(t, err, ErrInvalidAllocation, "empty name should be rejected")

	_, err = h.AllocateNumber("pcd_devices", 0)
	require.ErrorIs(t, err, ErrInvalidAllocation, "zero count should be rejected")
}

// TestDispatch_Lifecycle verifies the add/remove rules of the dispatch
// table: numbers must be allocated first, entries are exclusive, and
// unknown removals fail.
func TestDispatch_Lifecycle(t *testing.T) {
	t.Parallel()

	h := New()

	unallocated := schema.DeviceNumber{Major: 999, Minor: 0}
	require.ErrorIs(t, h.AddDevice(unallocated, stubFops{}), ErrNotRegistered,
		"dispatch registration without an allocated number should fail")

	num, err := h.AllocateNumber("pcd_devices", 1)
	require.NoError(t, err, "allocation should succeed")

	require.ErrorIs(t, h.AddDevice(num, nil), ErrNilFileOperations,
		"nil file operations should be rejected")

	require.NoError(t, h.AddDevice(num, stubFops{}), "registration should succeed")
	require.ErrorIs(t, h.AddDevice(num, stubFops{}), ErrAlreadyRegistered,
		"duplicate registration should fail")

	require.NoError(t, h.RemoveDevice(num), "removal should succeed")
	require.ErrorIs(t, h.RemoveDevice(num), ErrNotRegistered,
		"double removal should fail")
}

// TestClassAndNode_Lifecycle verifies class and node publishing,
// including the node-before-class teardown ordering.
func TestClassAndNode_Lifecycle(t *testing.T) {
	t.Parallel()

	h := New()
	num := schema.DeviceNumber{Major: 240, Minor: 0}

	class, err := h.CreateClass("pcd_class")
	require.NoError(t, err, "class creation should succeed")
	assert.Equal(t, "pcd_class", class.Name(), "class should carry its name")

	_, err = h.CreateClass("pcd_class")
	require.ErrorIs(t, err, ErrAlreadyRegistered, "duplicate class should fail")

	node, err := h.CreateNode(class, num, "pcd")
	require.NoError(t, err, "node creation should succeed")
	assert.Equal(t, "/dev/pcd", node.Path(), "node should live under the device namespace")
	assert.Equal(t, num, node.Number(), "node should resolve to its number")

	_, err = h.CreateNode(class, num, "pcd")
	require.ErrorIs(t, err, ErrAlreadyRegistered, "duplicate node should fail")

	require.ErrorIs(t, h.DestroyClass(class), ErrClassBusy,
		"destroying a class with live nodes should fail")

	require.NoError(t, h.DestroyNode(node), "node destruction should succeed")
	require.ErrorIs(t, h.DestroyNode(node), ErrNotRegistered,
		"double node destruction should fail")

	require.NoError(t, h.DestroyClass(class), "class destruction should now succeed")
	assert.Zero(t, h.PublishedClasses(), "no classes should remain")
	assert.Zero(t, h.PublishedNodes(), "no nodes should remain")
}

// TestClassAndNode_Fail_ForeignHandle verifies that handles from another
// host instance are rejected.
func TestClassAndNode_Fail_ForeignHandle(t *testing.T) {
	t.Parallel()

	h := New()
	other := New()

	class, err := other.CreateClass("pcd_class")
	require.NoError(t, err, "class creation should succeed")

	require.ErrorIs(t, h.DestroyClass(class), ErrForeignHandle,
		"foreign class handles should be rejected")

	_, err = h.CreateNode(class, schema.DeviceNumber{}, "pcd")
	require.ErrorIs(t, err, ErrForeignHandle,
		"node creation under a foreign class should be rejected")
}
