package device

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// mockUserBuffer is a mock implementation of a [schema.UserBuffer].
type mockUserBuffer struct {
	mock.Mock
}

func newMockUserBuffer(t *testing.T) *mockUserBuffer {
	t.Helper()

	m := &mockUserBuffer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockUserBuffer) CopyOut(p []byte) error {
	args := m.Called(p)

	return args.Error(0)
}

func (m *mockUserBuffer) CopyIn(p []byte) error {
	args := m.Called(p)

	return args.Error(0)
}

func (m *mockUserBuffer) Size() int {
	args := m.Called()

	return args.Int(0)
}
