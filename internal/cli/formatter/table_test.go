package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "BB"},
		[][]string{{"xxx", "y"}, {"z"}},
	))

	want := "A    BB\n" +
		"───  ──\n" +
		"xxx  y\n" +
		"z    \n"
	assert.Equal(t, want, out)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}

func TestRenderShareBar(t *testing.T) {
	out := stripANSI(RenderShareBar(0.5, 10, "#4A90D9"))
	assert.Equal(t, "█████░░░░░  50%", out)

	assert.Equal(t, "░░░░   0%", stripANSI(RenderShareBar(-1, 4, "#4A90D9")))
	assert.Equal(t, "████ 100%", stripANSI(RenderShareBar(3, 4, "#4A90D9")))
}
