package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayAndTimestamp(t *testing.T) {
	now := time.Date(2024, 6, 10, 23, 30, 5, 123_000_000, time.FixedZone("UTC-2", -2*3600))

	assert.Equal(t, "2024-06-11", Today(now))
	assert.Equal(t, "2024-06-11T01:30:05.123Z", Timestamp(now))
	assert.Equal(t, "sequence_export_2024-06-11.json", ExportFilename(now))
}

func TestNormalizeDate(t *testing.T) {
	day, ok := NormalizeDate("2024-06-10T18:00:00.000Z")
	assert.True(t, ok)
	assert.Equal(t, "2024-06-10", day)

	day, ok = NormalizeDate(" 2020-01-01 ")
	assert.True(t, ok)
	assert.Equal(t, "2020-01-01", day)

	_, ok = NormalizeDate("10/06/2024")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-06-10")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseDate("2024-06-10T18:00:00.250Z")
	assert.True(t, ok)
	assert.Equal(t, int64(1718042400250), got.UnixMilli())

	_, ok = ParseDate("")
	assert.False(t, ok)
	_, ok = ParseDate("hier")
	assert.False(t, ok)
}

func TestFormatDateLong(t *testing.T) {
	assert.Equal(t, "2 janvier 2024", FormatDateLong("2024-01-02"))
	assert.Equal(t, "15 août 2023", FormatDateLong("2023-08-15T20:00:00.000Z"))
	assert.Equal(t, "N/A", FormatDateLong(""))
	assert.Equal(t, "bientôt", FormatDateLong("bientôt"))
}
