package lifecycle

import (
	"testing"

	"github.com/hrasity/pcd/internal/schema"
	"github.com/stretchr/testify/mock"
)

// fakeClass is a plain [schema.Class] handle for mock returns.
type fakeClass struct {
	name string
}

func (c *fakeClass) Name() string { return c.name }

// fakeNode is a plain [schema.Node] handle for mock returns.
type fakeNode struct {
	path string
	num  schema.DeviceNumber
}

func (n *fakeNode) Path() string                { return n.path }
func (n *fakeNode) Number() schema.DeviceNumber { return n.num }

// mockNumberAllocator is a mock implementation of a
// [schema.NumberAllocator].
type mockNumberAllocator struct {
	mock.Mock
}

func newMockNumberAllocator(t *testing.T) *mockNumberAllocator {
	t.Helper()

	m := &mockNumberAllocator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockNumberAllocator) AllocateNumber(name string, count uint32) (schema.DeviceNumber, error) {
	args := m.Called(name, count)

	num, _ := args.Get(0).(schema.DeviceNumber)

	return num, args.Error(1)
}

func (m *mockNumberAllocator) ReleaseNumber(num schema.DeviceNumber, count uint32) error {
	args := m.Called(num, count)

	return args.Error(0)
}

// mockDispatchTable is a mock implementation of a [schema.DispatchTable].
type mockDispatchTable struct {
	mock.Mock
}

func newMockDispatchTable(t *testing.T) *mockDispatchTable {
	t.Helper()

	m := &mockDispatchTable{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockDispatchTable) AddDevice(num schema.DeviceNumber, fops schema.FileOperations) error {
	args := m.Called(num, fops)

	return args.Error(0)
}

func (m *mockDispatchTable) RemoveDevice(num schema.DeviceNumber) error {
	args := m.Called(num)

	return args.Error(0)
}

// mockClassRegistry is a mock implementation of a [schema.ClassRegistry].
type mockClassRegistry struct {
	mock.Mock
}

func newMockClassRegistry(t *testing.T) *mockClassRegistry {
	t.Helper()

	m := &mockClassRegistry{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockClassRegistry) CreateClass(name string) (schema.Class, error) {
	args := m.Called(name)

	class, _ := args.Get(0).(schema.Class)

	return class, args.Error(1)
}

func (m *mockClassRegistry) DestroyClass(class schema.Class) error {
	args := m.Called(class)

	return args.Error(0)
}

func (m *mockClassRegistry) CreateNode(class schema.Class, num schema.DeviceNumber, name string) (schema.Node, error) {
	args := m.Called(class, num, name)

	node, _ := args.Get(0).(schema.Node)

	return node, args.Error(1)
}

func (m *mockClassRegistry) DestroyNode(node schema.Node) error {
	args := m.Called(node)

	return args.Error(0)
}
