package detail

import "github.com/xtding233/card-detail/internal/stats"

// Palette colors shared across screens.
const (
	ColorInactive    = "#888"
	ColorPink        = "#FF5B9B"
	ColorLightPink   = "#f9cadc"
	ColorGreen       = "#09b751"
	ColorLightGreen  = "#6fe29f"
	ColorViolet      = "#DF67FF"
	ColorLightViolet = "#e7adf7"
	ColorBlue        = "#00a2ff"
	ColorLightBlue   = "#87d3ff"
)

// AttributeColors returns the light and strong tone used for a card of
// attribute a. Cards outside the three channels get the violet pair.
func AttributeColors(a stats.Attribute) [2]string {
	switch a {
	case stats.Smile:
		return [2]string{ColorLightPink, ColorPink}
	case stats.Pure:
		return [2]string{ColorLightGreen, ColorGreen}
	case stats.Cool:
		return [2]string{ColorLightBlue, ColorBlue}
	}
	return [2]string{ColorLightViolet, ColorViolet}
}

// barColor is the fill of a progress bar for channel a.
func barColor(a stats.Attribute) string {
	return AttributeColors(a)[1]
}

func buttonColor(active bool) string {
	if active {
		return ColorViolet
	}
	return ColorInactive
}
