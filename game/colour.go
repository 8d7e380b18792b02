package game

import (
	"fmt"
	"strings"
)

// Colour identifies a player for the lifetime of a game.
type Colour string

const (
	Black  Colour = "Black" // The fugitive
	Blue   Colour = "Blue"
	Green  Colour = "Green"
	Red    Colour = "Red"
	White  Colour = "White"
	Yellow Colour = "Yellow"
)

// Colours lists every recognised colour, fugitive first.
var Colours = []Colour{Black, Blue, Green, Red, White, Yellow}

func (c Colour) IsFugitive() bool {
	return c == Black
}

func (c Colour) IsHunter() bool {
	return c != Black
}

func (c Colour) String() string {
	return string(c)
}

// ParseColour matches a colour name case-insensitively.
func ParseColour(name string) (Colour, error) {
	for _, c := range Colours {
		if strings.EqualFold(strings.TrimSpace(name), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown colour %q", name)
}
