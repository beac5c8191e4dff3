package numfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/numfmt"
)

func TestRenderPerDialect(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		format numfmt.Format
		want   string
	}{
		{numfmt.None, "1234567.89"},
		{numfmt.USA, "1,234,567.89"},
		{numfmt.European, "1.234.567,89"},
		{numfmt.French, "1 234 567,89"},
		{numfmt.Swiss, "1'234'567.89"},
	}

	for _, tc := range tcs {
		got, err := numfmt.Render(1234567.891, tc.format, 2, true)
		require.NoError(t, err, tc.format)
		assert.Equal(t, tc.want, got, tc.format)
	}
}

func TestRenderWithoutThousands(t *testing.T) {
	t.Parallel()

	got, err := numfmt.Render(1234.5, numfmt.European, 2, false)
	require.NoError(t, err)
	assert.Equal(t, "1234,50", got)
}

func TestRenderZeroDecimalsOmitsSeparator(t *testing.T) {
	t.Parallel()

	got, err := numfmt.Render(1234.5, numfmt.USA, 0, true)
	require.NoError(t, err)
	assert.Equal(t, "1,234", got)
}

func TestRenderNegative(t *testing.T) {
	t.Parallel()

	got, err := numfmt.Render(-1234.5, numfmt.USA, 2, true)
	require.NoError(t, err)
	assert.Equal(t, "-1,234.50", got)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := numfmt.Render(1, numfmt.Format("martian"), 2, true)
	assert.Error(t, err)
}

// Every value formatted under a dialect parses back to the same value
// under that dialect.
func TestParseInvertsRender(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1, 10, 999, 1000, 1234.5, 1234567.89, 0.25}
	formats := []numfmt.Format{numfmt.None, numfmt.USA, numfmt.European, numfmt.French, numfmt.Swiss}

	for _, f := range formats {
		for _, v := range values {
			s, err := numfmt.Render(v, f, 2, true)
			require.NoError(t, err)

			back, err := numfmt.Parse(s, f)
			require.NoError(t, err, "%s / %q", f, s)
			assert.InDelta(t, v, back, 0.005, "%s / %q", f, s)
		}
	}
}

func TestParseRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	_, err := numfmt.Parse("hello", numfmt.USA)
	assert.Error(t, err)
}

func TestSeparatorsMatchRenderedOutput(t *testing.T) {
	t.Parallel()

	group, decimal, err := numfmt.Separators(numfmt.European)
	require.NoError(t, err)
	assert.Equal(t, ".", group)
	assert.Equal(t, ",", decimal)

	_, _, err = numfmt.Separators(numfmt.Format("martian"))
	assert.Error(t, err)
}
