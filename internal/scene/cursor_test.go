package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionCursor(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		expected []int
	}{
		{name: "empty sequence", total: 0, expected: nil},
		{name: "single instruction", total: 1, expected: nil},
		{name: "two instructions", total: 2, expected: []int{1}},
		{name: "three instructions", total: 3, expected: []int{1, 2}},
		{name: "five instructions", total: 5, expected: []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newInstructionCursor(tt.total)

			var got []int
			for !c.Done() {
				index, last := c.Advance()
				got = append(got, index)
				assert.Equal(t, index == tt.total-1, last)
			}

			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, c.cursor, max(tt.total, 1))
			assert.GreaterOrEqual(t, c.cursor, 1)

			// A finished cursor stays finished
			index, last := c.Advance()
			assert.Equal(t, -1, index)
			assert.True(t, last)
		})
	}
}
