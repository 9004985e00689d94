package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawWinners(t *testing.T) {
	tests := []struct {
		name     string
		winnerQQ *string
		expected []string
	}{
		{
			name:     "No winners recorded",
			winnerQQ: nil,
			expected: nil,
		},
		{
			name:     "Empty winner column",
			winnerQQ: strPtr(""),
			expected: nil,
		},
		{
			name:     "Single winner",
			winnerQQ: strPtr("10001"),
			expected: []string{"10001"},
		},
		{
			name:     "Multiple winners",
			winnerQQ: strPtr("10001, 10002, 10003"),
			expected: []string{"10001", "10002", "10003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draw := Draw{WinnerQQ: tt.winnerQQ}
			assert.Equal(t, tt.expected, draw.Winners())
		})
	}
}

func TestJoinWinners(t *testing.T) {
	assert.Equal(t, "10001, 10002", JoinWinners([]string{"10001", "10002"}))
	assert.Equal(t, "10001", JoinWinners([]string{"10001"}))
	assert.Equal(t, "", JoinWinners(nil))
}

func TestWinnersRoundTrip(t *testing.T) {
	winners := []string{"10001", "10002", "10003"}
	joined := JoinWinners(winners)
	draw := Draw{WinnerQQ: &joined}
	assert.Equal(t, winners, draw.Winners())
}

func strPtr(s string) *string { return &s }
