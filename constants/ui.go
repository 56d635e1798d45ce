package constants

// Stage column titles, left to right
const (
	TitleActor   = "Quien?"
	TitleCommand = "Qué?"
	TitleVariant = "Cual?"
	TitleTarget  = "A quien?"
)

// Panel titles
const (
	TitleEnemies = "Enemigos"
	TitleActions = "Acciones"
	TitlePlayers = "Personajes"
)

// UI Layout Constants
const (
	// PanelMinHeight is the height of a party panel (border + name + 3 gauges)
	PanelMinHeight = 6

	// GaugeMinWidth is the smallest gauge that still shows a fill
	GaugeMinWidth = 4

	// LockedMarker prefixes the title of a committed stage
	LockedMarker = '*'

	// HighlightMarker prefixes the highlighted row of a stage
	HighlightMarker = '>'
)
