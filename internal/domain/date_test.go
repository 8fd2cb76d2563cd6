package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTravelDate(t *testing.T) {
	t.Parallel()

	t.Run("valid calendar date", func(t *testing.T) {
		got, err := ParseTravelDate("2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, input := range []string{"", "10-03-2025", "2025/03/10", "2025-13-01", "2025-02-30", "tomorrow"} {
			_, err := ParseTravelDate(input)
			assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
		}
	})
}
