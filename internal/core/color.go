package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorInk           // HUD text
	ColorGrid          // board frame and grid dots
	ColorPanda         // player
	ColorStraw         // fruit
	ColorSeed          // combo counter
	ColorLeaf          // slow power-up, body tail
	ColorGold          // magnet power-up, turbo
	ColorBlue          // wrap indicator
	ColorDim           // hints
	ColorAlert         // countdown, death overlay
)

// String returns the palette name, mostly for debugging and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorInk:
		return "ink"
	case ColorGrid:
		return "grid"
	case ColorPanda:
		return "panda"
	case ColorStraw:
		return "straw"
	case ColorSeed:
		return "seed"
	case ColorLeaf:
		return "leaf"
	case ColorGold:
		return "gold"
	case ColorBlue:
		return "blue"
	case ColorDim:
		return "dim"
	case ColorAlert:
		return "alert"
	default:
		return "unknown"
	}
}
