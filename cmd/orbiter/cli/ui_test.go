package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { CurrentTheme = DefaultTheme })

	assert.True(t, SetTheme("ocean"))
	assert.Equal(t, "ocean", CurrentTheme.Name)
	assert.False(t, SetTheme("gruvbox"))
	assert.Equal(t, "ocean", CurrentTheme.Name)
}

func TestPrinters(t *testing.T) {
	var buf bytes.Buffer
	PrintSuccess(&buf, "saved")
	PrintError(&buf, "failed")
	PrintHeader(&buf, "Solutions")

	out := buf.String()
	assert.Contains(t, out, "✓ saved")
	assert.Contains(t, out, "✗ failed")
	assert.Contains(t, out, strings.Repeat("─", len("Solutions"))+"\n")
}

func TestDrawBox(t *testing.T) {
	box := DrawBox("a\nlonger", "")
	lines := strings.Split(box, "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "┌"+strings.Repeat("─", 8)+"┐", lines[0])
	assert.Equal(t, "│ a      │", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "└"))
}
