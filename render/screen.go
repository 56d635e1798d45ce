// Package render draws the battle screen with tcell from read-only snapshots
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/atb-fighter/combat"
	"github.com/lixenwraith/atb-fighter/constants"
	"github.com/lixenwraith/atb-fighter/selection"
)

// Renderer draws the enemy panel, the four stage columns and the player panel
// It never mutates the snapshots it is given
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Sync forces a full redraw, used after a terminal resize
func (r *Renderer) Sync() {
	r.screen.Sync()
}

// Render draws one frame and shows it
func (r *Renderer) Render(snap combat.Snapshot, view selection.View) {
	r.screen.SetStyle(styleBase)
	r.screen.Clear()

	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	top := 0
	bottom := height - constants.PanelMinHeight
	if bottom < top+constants.PanelMinHeight {
		bottom = top + constants.PanelMinHeight
	}

	r.drawParty(0, top, width, constants.TitleEnemies, snap.Enemy, RgbEnemyName)
	r.drawStages(0, top+constants.PanelMinHeight, width, bottom-top-constants.PanelMinHeight, view)
	r.drawParty(0, bottom, width, constants.TitlePlayers, snap.Player, RgbPlayerName)

	r.screen.Show()
}

// drawParty lays members out in PartyCapacity equal columns:
// name, then health, mana and readiness gauges
func (r *Renderer) drawParty(x, y, width int, title string, members []combat.CombatantView, nameColor tcell.Color) {
	r.drawText(x, y, width, title, styleTitle)

	colW := width / constants.PartyCapacity
	if colW < 1 {
		return
	}

	for i, m := range members {
		if i >= constants.PartyCapacity {
			break
		}
		cx := x + i*colW
		inner := colW - 1

		nameStyle := styleBase.Foreground(nameColor).Bold(true)
		if m.Health == 0 {
			nameStyle = styleBase.Foreground(RgbDefeatedRow)
		}
		r.drawText(cx, y+1, inner, m.Name, nameStyle)

		readyColor := RgbReadyFill
		if m.Ready {
			readyColor = RgbReadyFull
		}

		r.drawGauge(cx, y+2, inner, "HP", fmt.Sprintf("%d/%d", m.Health, m.MaxHealth), ratio(m.Health, m.MaxHealth), RgbHealthFill)
		r.drawGauge(cx, y+3, inner, "MP", fmt.Sprintf("%d/%d", m.Mana, m.MaxMana), ratio(m.Mana, m.MaxMana), RgbManaFill)
		r.drawGauge(cx, y+4, inner, "AT", fmt.Sprintf("%.0f%%", m.ReadyRatio*100), m.ReadyRatio, readyColor)
	}
}

// drawGauge draws "LB [####----] value" clipped to width
// The bar is omitted when fewer than GaugeMinWidth cells remain
func (r *Renderer) drawGauge(x, y, width int, label, value string, fill float64, color tcell.Color) {
	n := r.drawText(x, y, width, label+" ", styleDim)
	x += n
	width -= n

	barW := width - len(value) - 1
	if barW >= constants.GaugeMinWidth {
		filled := int(fill*float64(barW) + 0.5)
		for i := 0; i < barW; i++ {
			if i < filled {
				r.screen.SetContent(x+i, y, '█', nil, styleBase.Foreground(color))
			} else {
				r.screen.SetContent(x+i, y, '░', nil, styleBase.Foreground(RgbGaugeEmpty))
			}
		}
		x += barW + 1
		width -= barW + 1
	}

	r.drawText(x, y, width, value, styleBase)
}

// drawStages draws the four cascade columns under the actions title
func (r *Renderer) drawStages(x, y, width, height int, view selection.View) {
	if height < 2 {
		return
	}
	r.drawText(x, y, width, constants.TitleActions, styleTitle)

	colW := width / int(selection.StageCount)
	if colW < 1 {
		return
	}

	for i, st := range view.Stages {
		cx := x + i*colW
		inner := colW - 1

		header := st.Title
		headerStyle := styleDim
		switch {
		case st.Locked:
			header = string(constants.LockedMarker) + header
			headerStyle = styleLocked
		case st.Active:
			headerStyle = styleActive
		}
		r.drawText(cx, y+1, inner, header, headerStyle)

		rows := height - 2
		for j, label := range st.Labels {
			if j >= rows {
				break
			}
			rowStyle := styleBase
			if !st.Active && !st.Locked {
				rowStyle = styleDim
			}
			marker := " "
			if st.HasHighlight && st.Highlight == j {
				marker = string(constants.HighlightMarker)
				rowStyle = styleSelected
			}
			r.drawText(cx, y+2+j, inner, marker+label, rowStyle)
		}
	}
}

// drawText writes s clipped to width cells and returns the cells used
// A wide rune that would straddle the edge is dropped
func (r *Renderer) drawText(x, y, width int, s string, style tcell.Style) int {
	n := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if n+w > width {
			break
		}
		r.screen.SetContent(x+n, y, ch, nil, style)
		n += w
	}
	return n
}

func ratio(cur, limit uint16) float64 {
	if limit == 0 {
		return 0
	}
	return float64(cur) / float64(limit)
}
