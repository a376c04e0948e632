package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Launcher is a mock implementation of browser.Launcher
type Launcher struct {
	mock.Mock
}

func (m *Launcher) Open(url string) error {
	args := m.Called(url)
	return args.Error(0)
}
