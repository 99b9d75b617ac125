package util

import (
	"bytes"
	"os"
	"testing"
)

// MockTerminal for testing
type MockTerminal struct {
	IsATerminal bool
	Seen        int
}

func (m *MockTerminal) IsTerminal(fd int) bool {
	m.Seen = fd
	return m.IsATerminal
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name       string
		isTerminal bool
		useFile    bool
		want       bool
	}{
		{
			name:       "terminal file",
			isTerminal: true,
			useFile:    true,
			want:       true,
		},
		{
			name:       "redirected file",
			isTerminal: false,
			useFile:    true,
			want:       false,
		},
		{
			name:       "buffer is never a terminal",
			isTerminal: true,
			useFile:    false,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockTerminal{IsATerminal: tt.isTerminal, Seen: -1}

			var got bool
			if tt.useFile {
				got = IsTerminal(os.Stdout, mock)
				if mock.Seen != int(os.Stdout.Fd()) {
					t.Errorf("IsTerminal() checked fd %d, want %d", mock.Seen, os.Stdout.Fd())
				}
			} else {
				got = IsTerminal(&bytes.Buffer{}, mock)
			}
			if got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTerminalDefault(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f, nil) {
		t.Error("regular file reported as terminal")
	}
}
