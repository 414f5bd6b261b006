package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDisplayWidth(t *testing.T) {
	assert.Equal(t, 4, GetDisplayWidth("Acme"))
	assert.Equal(t, 4, GetDisplayWidth("日本"))
	assert.Equal(t, 0, GetDisplayWidth(""))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "Bob  ", PadRight("Bob", 5))
	assert.Equal(t, "  Bob", PadLeft("Bob", 5))
	assert.Equal(t, "日本 ", PadRight("日本", 5))
	assert.Equal(t, "Bobby", PadRight("Bobby", 3), "longer text is left untouched")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Week…", Truncate("Week 12 overtime", 5))
	assert.Equal(t, "Week", Truncate("Week", 10))
}

func TestFormatSheetTitle(t *testing.T) {
	assert.Equal(t, "Week 1", FormatSheetTitle("Week 1", false))
	assert.Equal(t, ColorBold+ColorCyan+"Week 1"+ColorReset, FormatSheetTitle("Week 1", true))
	assert.Equal(t, "skip", FormatWarning("skip", false))
	assert.Equal(t, ColorYellow+"skip"+ColorReset, FormatWarning("skip", true))
}

func TestColorEnabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f), "regular files are not terminals")
	assert.False(t, ColorEnabled(f))
	assert.False(t, IsTerminal(nil))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(os.Stdout))
}
