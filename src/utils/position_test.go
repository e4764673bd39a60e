package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		label string
		row   int
		col   int
	}{
		{"A1", 1, 1},
		{"B2", 2, 2},
		{"C10", 3, 10},
		{"Z99", 26, 99},
		{"a1", 1, 1},
		{" b3 ", 2, 3},
	}

	for _, tt := range tests {
		pos, err := ParsePosition(tt.label)
		require.NoError(t, err, "label %q", tt.label)
		assert.Equal(t, tt.row, pos.Row, "label %q", tt.label)
		assert.Equal(t, tt.col, pos.Col, "label %q", tt.label)
	}
}

func TestParsePositionRejectsMalformedLabels(t *testing.T) {
	for _, label := range []string{"", "1A", "AA1", "A0", "A", "Z", "A-1", "A1B", "你1"} {
		_, err := ParsePosition(label)
		require.Error(t, err, "label %q", label)

		var invalid *InvalidPositionError
		require.True(t, errors.As(err, &invalid), "label %q", label)
		assert.Equal(t, label, invalid.Value)
	}
}

func TestFormatPositionRoundTrip(t *testing.T) {
	for row := 1; row <= 26; row++ {
		for _, col := range []int{1, 5, 12, 100} {
			label := FormatPosition(row, col)
			pos, err := ParsePosition(label)
			require.NoError(t, err, "label %q", label)
			assert.Equal(t, GridPosition{Row: row, Col: col}, pos)
		}
	}
}

func TestFormatPosition(t *testing.T) {
	assert.Equal(t, "A1", FormatPosition(1, 1))
	assert.Equal(t, "E7", FormatPosition(5, 7))
	assert.Equal(t, "Z100", FormatPosition(26, 100))
}

func ExampleFormatPosition() {
	fmt.Println(FormatPosition(2, 3))
	// Output: B3
}
