package stdlib_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/udm"
)

// parseDate auto-detects: no time component yields a Date, otherwise
// a DateTime.
func TestParseDateAutoDetects(t *testing.T) {
	t.Parallel()

	got, err := call(t, "parseDate", udm.String("2020-03-15"))
	require.NoError(t, err)
	assert.Equal(t, udm.KindDate, got.Kind())

	// Slash-separated dates are accepted as dates too.
	got, err = call(t, "parseDate", udm.String("2020/03/15"))
	require.NoError(t, err)
	assert.Equal(t, udm.KindDate, got.Kind())

	got, err = call(t, "parseDate", udm.String("2020-03-15T10:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, udm.KindDateTime, got.Kind())

	_, err = call(t, "parseDate", udm.String("not a date"))
	assert.Error(t, err)
}

func TestParseDateOnlyEnforcesResultType(t *testing.T) {
	t.Parallel()

	got, err := call(t, "parseDateOnly", udm.String("2021-12-01"))
	require.NoError(t, err)
	assert.Equal(t, udm.KindDate, got.Kind())

	_, err = call(t, "parseDateOnly", udm.String("2021-12-01T08:00:00Z"))
	assert.Error(t, err)
}

func TestParseDateTimeEnforcesResultType(t *testing.T) {
	t.Parallel()

	got, err := call(t, "parseDateTime", udm.String("2021-12-01T08:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, udm.KindDateTime, got.Kind())

	_, err = call(t, "parseDateTime", udm.String("2021-12-01"))
	assert.Error(t, err)
}

func TestFormatDateICUPatterns(t *testing.T) {
	t.Parallel()

	d := udm.Date(time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC))

	got, err := call(t, "formatDate", d, udm.String("yyyy-MM-dd"))
	require.NoError(t, err)

	s, _ := got.StringValue()
	assert.Equal(t, "2020-03-15", s)

	got, err = call(t, "formatDate", d, udm.String("d MMMM yyyy"))
	require.NoError(t, err)

	s, _ = got.StringValue()
	assert.Equal(t, "15 March 2020", s)
}

// Month and weekday names honor the locale tag.
func TestFormatDateLocaleNames(t *testing.T) {
	t.Parallel()

	d := udm.Date(time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC))

	got, err := call(t, "formatDate", d, udm.String("MMMM"), udm.String("fr"))
	require.NoError(t, err)

	s, _ := got.StringValue()
	assert.Equal(t, "mars", s)

	got, err = call(t, "formatDate", d, udm.String("EEEE"), udm.String("de"))
	require.NoError(t, err)

	s, _ = got.StringValue()
	assert.Equal(t, "Sonntag", s)

	// An unknown locale falls back to English.
	got, err = call(t, "formatDate", d, udm.String("MMM"), udm.String("xx"))
	require.NoError(t, err)

	s, _ = got.StringValue()
	assert.Equal(t, "Mar", s)
}

func TestFormatDateRejectsNonDateValue(t *testing.T) {
	t.Parallel()

	_, err := call(t, "formatDate", udm.String("2020-03-15"), udm.String("yyyy"))
	assert.Error(t, err)
}
