package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"ID", "名称", "数量"}, [][]string{
		{"retro", "复古", "12"},
		{"sci-fi", "科幻", "3"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	// 第三列在显示宽度上对齐
	col := runewidth.StringWidth("sci-fi") + 2 + runewidth.StringWidth("科幻") + 2
	for _, line := range lines {
		assert.GreaterOrEqual(t, runewidth.StringWidth(line), col)
	}
	assert.Equal(t, "retro   复古  12", lines[1])
	assert.Equal(t, "sci-fi  科幻  3", lines[2])
}
