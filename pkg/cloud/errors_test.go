package cloud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "with object",
			err: &Error{
				Op:        "Object",
				Container: "media",
				Object:    "photos/beach.jpg",
				Err:       ErrNoObject,
			},
			expected: "cloud Object: media/photos/beach.jpg: object not found",
		},
		{
			name: "without object",
			err: &Error{
				Op:        "Container",
				Container: "missing",
				Err:       ErrNoContainer,
			},
			expected: "cloud Container: missing: container not found",
		},
		{
			name: "without container",
			err: &Error{
				Op:  "Authenticate",
				Err: errors.New("auth endpoint unreachable"),
			},
			expected: "cloud Authenticate: auth endpoint unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := &Error{Op: "Object", Container: "media", Object: "x", Err: ErrNoObject}

	assert.True(t, errors.Is(err, ErrNoObject))
	assert.False(t, errors.Is(err, ErrNoContainer))
	assert.Equal(t, ErrNoObject, err.Unwrap())
}

func TestIsNoContainer(t *testing.T) {
	assert.True(t, IsNoContainer(ErrNoContainer))
	assert.True(t, IsNoContainer(&Error{Err: ErrNoContainer}))
	assert.False(t, IsNoContainer(ErrNoObject))
	assert.False(t, IsNoContainer(errors.New("some error")))
}

func TestIsNoObject(t *testing.T) {
	assert.True(t, IsNoObject(ErrNoObject))
	assert.True(t, IsNoObject(&Error{Err: ErrNoObject}))
	assert.False(t, IsNoObject(ErrNoContainer))
}

func TestObjectType_String(t *testing.T) {
	assert.Equal(t, "file", TypeFile.String())
	assert.Equal(t, "subdir", TypeSubdir.String())
}
