package game

import (
	"github.com/stretchr/testify/mock"
)

// --- Conn ---

type MockConn struct {
	mock.Mock
}

func (m *MockConn) Close() {
	m.Called()
}

func (m *MockConn) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockConn) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockConn) Ping() error {
	args := m.Called()
	return args.Error(0)
}

// --- RandomWordGenerator ---

type MockRandomWordGenerator struct {
	mock.Mock
}

func (m *MockRandomWordGenerator) Generate() string {
	args := m.Called()
	return args.String(0)
}

// --- Player ---

type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) Id() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPlayer) Username() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPlayer) Send(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockPlayer) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockPlayer) CancelAndRelease() {
	m.Called()
}

// NewMockPlayer wires the identity stubs every scenario needs.
func NewMockPlayer(id, username string) *MockPlayer {
	p := &MockPlayer{}
	p.On("Id").Return(id)
	p.On("Username").Return(username)
	return p
}
