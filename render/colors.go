package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for panels and gauges
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbDimText    = tcell.NewRGBColor(120, 120, 120) // Inactive stage rows
	RgbTitle      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbActive     = tcell.NewRGBColor(255, 165, 0)   // Orange for the active stage
	RgbLocked     = tcell.NewRGBColor(144, 238, 144) // Light grass green

	RgbEnemyName  = tcell.NewRGBColor(255, 80, 80)  // Normal Red
	RgbPlayerName = tcell.NewRGBColor(100, 150, 255) // Normal Blue

	RgbHealthFill  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbManaFill    = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbReadyFill   = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbReadyFull   = tcell.NewRGBColor(255, 120, 120) // Bright Red, clock saturated
	RgbGaugeEmpty  = tcell.NewRGBColor(50, 50, 50)    // Very dark gray
	RgbDefeatedRow = tcell.NewRGBColor(90, 90, 90)    // Gray for 0 HP
)

var (
	styleBase     = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	styleTitle    = styleBase.Foreground(RgbTitle).Bold(true)
	styleDim      = styleBase.Foreground(RgbDimText)
	styleActive   = styleBase.Foreground(RgbActive).Bold(true)
	styleLocked   = styleBase.Foreground(RgbLocked)
	styleSelected = styleBase.Reverse(true)
)
