package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coderush2004/railway-desk/internal/domain"
)

func TestPrompter_Line(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := newPrompter(strings.NewReader("  Kolkata Express  \n"), out)

	got, err := p.line("Train name")
	require.NoError(t, err)
	assert.Equal(t, "Kolkata Express", got)
	assert.Equal(t, "Train name: ", out.String())
}

func TestPrompter_Line_EOF(t *testing.T) {
	t.Parallel()

	p := newPrompter(strings.NewReader(""), io.Discard)
	_, err := p.line("Select")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_IntField(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		p := newPrompter(strings.NewReader("11001\n"), io.Discard)
		got, err := p.intField("Train number")
		require.NoError(t, err)
		assert.Equal(t, 11001, got)
	})

	t.Run("malformed", func(t *testing.T) {
		p := newPrompter(strings.NewReader("eleven\n"), io.Discard)
		_, err := p.intField("Train number")
		assert.ErrorIs(t, err, domain.ErrInvalidNumber)
	})
}

func TestPrompter_FloatField(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		p := newPrompter(strings.NewReader("750.5\n"), io.Discard)
		got, err := p.floatField("Fare per seat")
		require.NoError(t, err)
		assert.Equal(t, 750.5, got)
	})

	t.Run("malformed", func(t *testing.T) {
		p := newPrompter(strings.NewReader("7,50\n"), io.Discard)
		_, err := p.floatField("Fare per seat")
		assert.ErrorIs(t, err, domain.ErrInvalidNumber)
	})
}

func TestPrompter_DateField(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		p := newPrompter(strings.NewReader("2025-03-10\n"), io.Discard)
		got, err := p.dateField("Travel date")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("malformed", func(t *testing.T) {
		p := newPrompter(strings.NewReader("10/03/2025\n"), io.Discard)
		_, err := p.dateField("Travel date")
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}
