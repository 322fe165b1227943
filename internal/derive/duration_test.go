package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMinutes(t *testing.T) {
	cases := map[string]int{
		"120 min":     120,
		"  95min":     95,
		"env. 1h 30":  1,
		"durée: 088":  88,
		"":            0,
		"inconnue":    0,
		"45 min 30 s": 45,
	}
	for input, want := range cases {
		assert.Equal(t, want, ExtractMinutes(input), "input %q", input)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2h05m", FormatDuration("125 min"))
	assert.Equal(t, "45m", FormatDuration("45 min"))
	assert.Equal(t, "05m", FormatDuration("5 min"))
	assert.Equal(t, "1h", FormatDuration("60 min"))
	assert.Equal(t, "2h", FormatDuration("120"))
	assert.Equal(t, "1h59m", FormatDuration("119 min"))
	assert.Equal(t, "N/A", FormatDuration(""))
	assert.Equal(t, "N/A", FormatDuration("0 min"))
	assert.Equal(t, "N/A", FormatDuration("long"))
}
