package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GridPosition is a 1-based (row, col) address inside a box grid.
type GridPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InvalidPositionError is returned when a position label cannot be parsed.
// It carries the original input for error messages.
type InvalidPositionError struct {
	Value string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position label %q", e.Value)
}

var positionPattern = regexp.MustCompile(`^([A-Z])(\d+)$`)

// ParsePosition converts a label like "A1" into a GridPosition.
// Input is trimmed and uppercased first; the letter maps to row 1-26
// (A=1) and the number is the column, which must be at least 1.
func ParsePosition(label string) (GridPosition, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	match := positionPattern.FindStringSubmatch(normalized)
	if match == nil {
		return GridPosition{}, &InvalidPositionError{Value: label}
	}

	row := int(match[1][0]-'A') + 1
	col, err := strconv.Atoi(match[2])
	if err != nil || row < 1 || row > 26 || col < 1 {
		return GridPosition{}, &InvalidPositionError{Value: label}
	}

	return GridPosition{Row: row, Col: col}, nil
}

// FormatPosition is the inverse of ParsePosition: row 1 -> "A", 26 -> "Z",
// column printed as decimal.
func FormatPosition(row, col int) string {
	return fmt.Sprintf("%c%d", rune('A'+row-1), col)
}
