package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawTextCountsCells(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  int
	}{
		{"ascii fits", "Hero", 10, 4},
		{"ascii clipped", "Personaje1", 4, 4},
		{"wide runes fit", "勇者", 4, 4},
		{"wide rune dropped at edge", "勇者勇者", 5, 4},
		{"mixed", "A勇B", 10, 4},
		{"zero width", "Hero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := tcell.NewSimulationScreen("")
			require.NoError(t, screen.Init())
			screen.SetSize(20, 1)
			t.Cleanup(screen.Fini)

			r := NewRenderer(screen)
			assert.Equal(t, tt.want, r.drawText(0, 0, tt.width, tt.text, tcell.StyleDefault))
		})
	}
}

func TestDrawTextWideRunesStayInColumn(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 1)
	t.Cleanup(screen.Fini)

	// The next column starts at x=5
	screen.SetContent(5, 0, 'X', nil, tcell.StyleDefault)

	r := NewRenderer(screen)
	r.drawText(0, 0, 5, "勇者勇者", tcell.StyleDefault)

	first, _, _, _ := screen.GetContent(0, 0)
	second, _, _, _ := screen.GetContent(2, 0)
	neighbour, _, _, _ := screen.GetContent(5, 0)
	assert.Equal(t, '勇', first)
	assert.Equal(t, '者', second)
	assert.Equal(t, 'X', neighbour)
}
