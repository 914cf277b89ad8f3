package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{{"1", "Read"}, {"12", StyleGreen.Render("Watch lecture")}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  TITLE", lines[0])
	assert.Equal(t, "──  ─────────────", lines[1])
	assert.Equal(t, "1   Read", lines[2])
	assert.Equal(t, "12  Watch lecture", lines[3])
}

func TestRenderTable_ShortRowsAndNoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"only"}}))
	assert.Contains(t, out, "only")
}

func TestRenderKV(t *testing.T) {
	out := stripANSI(RenderKV([][2]string{{"Points", "120"}, {"Level", "SKILLED"}}))
	assert.Equal(t, "Points  120\nLevel   SKILLED\n", out)
}
