package platform

import (
	"errors"
	"testing"
)

func TestNewSource_UnsupportedWhenUnregistered(t *testing.T) {
	saved := NewSourceFunc
	NewSourceFunc = nil
	defer func() { NewSourceFunc = saved }()

	if _, err := NewSource(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}

func TestNewSource_UsesRegisteredFunc(t *testing.T) {
	saved := NewSourceFunc
	called := false
	NewSourceFunc = func() (WindowSource, error) {
		called = true
		return nil, nil
	}
	defer func() { NewSourceFunc = saved }()

	if _, err := NewSource(); err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if !called {
		t.Error("registered constructor was not used")
	}
}

func TestEnumerationError_Message(t *testing.T) {
	err := &EnumerationError{Code: 0xe}
	want := "window enumeration failed: platform error 0x0000000e"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
