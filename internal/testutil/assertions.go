package testutil

import (
	"testing"

	"github.com/specialistvlad/qmock/internal/report"
	"github.com/stretchr/testify/require"
)

// AssertRowShape checks that every row of a register has the given width
// and that there are rows of them.
func AssertRowShape(t *testing.T, rep *report.Report, register string, rows, width int) {
	t.Helper()

	var got []int
	switch {
	case rep.Bits[register] != nil:
		for _, row := range rep.Bits[register] {
			got = append(got, len(row))
		}
	case rep.Reals[register] != nil:
		for _, row := range rep.Reals[register] {
			got = append(got, len(row))
		}
	case rep.Complexes[register] != nil:
		for _, row := range rep.Complexes[register] {
			got = append(got, len(row))
		}
	default:
		require.FailNow(t, "register not found", "report %q has no register %q", rep.Circuit, register)
	}

	require.Len(t, got, rows, "register %q row count", register)
	for i, w := range got {
		require.Equal(t, width, w, "register %q row %d width", register, i)
	}
}
