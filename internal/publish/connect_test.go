package publish

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("handshake failed")

	testCases := []struct {
		name string
		args []any
		want string
	}{
		{name: "no arguments", args: nil, want: "connection refused without a reason"},
		{name: "nil argument", args: []any{nil}, want: "connection refused without a reason"},
		{name: "error argument", args: []any{sentinel}, want: "handshake failed"},
		{name: "other argument", args: []any{map[string]any{"message": "denied"}}, want: "denied"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			var err error
			require.NotPanics(t, func() { err = connectError(tc.args...) })

			// --- Assert ---
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	assert.ErrorIs(t, connectError(sentinel), sentinel)
}
