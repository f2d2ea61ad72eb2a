package core

// Color represents a foreground color for a screen cell.
// Values are semantic; hosts translate them via ANSI().
type Color uint8

// Palette used by the games.
const (
	ColorDefault Color = iota
	ColorCookie
	ColorChip
	ColorMonster
	ColorMonsterEye
	ColorStink
	ColorRock
	ColorLane
	ColorDrool
	ColorPlayer
	ColorHUD
	ColorAlert
)

// ansiCodes maps each palette entry to an ANSI 256-color code.
var ansiCodes = [...]int{
	ColorDefault:    -1,
	ColorCookie:     179,
	ColorChip:       94,
	ColorMonster:    70,
	ColorMonsterEye: 149,
	ColorStink:      119,
	ColorRock:       240,
	ColorLane:       58,
	ColorDrool:      155,
	ColorPlayer:     81,
	ColorHUD:        230,
	ColorAlert:      203,
}

// ANSI returns the 256-color code for c, or -1 for the terminal default.
func (c Color) ANSI() int {
	if int(c) >= len(ansiCodes) {
		return -1
	}
	return ansiCodes[c]
}
