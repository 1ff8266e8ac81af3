package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
	assert.Contains(t, buf.String(), "|_| |_|")
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer(80)
	out, err := render("| Case | ops/sec |\n| --- | ---: |\n| set property (draft) | 1,000 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "draft")
}

func TestWidth_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.Equal(t, defaultWidth, Width(f))
}
