package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"manhunt/game"
	"manhunt/utils"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultSetup string

// Setup is everything needed to start a game, minus the strategies.
type Setup struct {
	Rounds   []bool
	Board    *game.Board
	Fugitive game.PlayerConfig
	Hunters  []game.PlayerConfig
}

// Colours returns the fugitive's colour followed by the hunters'.
func (s Setup) Colours() []game.Colour {
	colours := []game.Colour{s.Fugitive.Colour}
	for _, h := range s.Hunters {
		colours = append(colours, h.Colour)
	}
	return colours
}

// NewGame starts a game on this setup, giving each player the strategy
// registered under its colour.
func (s Setup) NewGame(strategies map[game.Colour]game.Strategy) (*game.Game, error) {
	fugitive := s.Fugitive
	fugitive.Strategy = strategies[fugitive.Colour]
	hunters := make([]game.PlayerConfig, len(s.Hunters))
	for i, h := range s.Hunters {
		h.Strategy = strategies[h.Colour]
		hunters[i] = h
	}
	return game.NewGame(s.Rounds, s.Board, fugitive, hunters...)
}

type fileSetup struct {
	Rounds       []bool       `toml:"rounds"`
	TotalRounds  int          `toml:"total_rounds"`
	RevealRounds []int        `toml:"reveal_rounds"`
	Board        fileBoard    `toml:"board"`
	Fugitive     filePlayer   `toml:"fugitive"`
	Hunters      []filePlayer `toml:"hunters"`
}

type fileBoard struct {
	Taxi        [][]int `toml:"taxi"`
	Bus         [][]int `toml:"bus"`
	Underground [][]int `toml:"underground"`
	Ferry       [][]int `toml:"ferry"`
}

type filePlayer struct {
	Colour   string         `toml:"colour"`
	Location int            `toml:"location"`
	Tickets  map[string]int `toml:"tickets"`
}

// LoadSetup reads a setup file. An empty path loads the built-in setup.
func LoadSetup(path string) (Setup, error) {
	var raw fileSetup
	var meta toml.MetaData
	var err error
	if path == "" {
		meta, err = toml.Decode(defaultSetup, &raw)
	} else {
		meta, err = toml.DecodeFile(path, &raw)
	}
	if err != nil {
		return Setup{}, fmt.Errorf("load setup: %w", err)
	}
	return buildSetup(raw, meta)
}

// ParseSetup decodes a setup from TOML text.
func ParseSetup(data string) (Setup, error) {
	var raw fileSetup
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Setup{}, fmt.Errorf("parse setup: %w", err)
	}
	return buildSetup(raw, meta)
}

func buildSetup(raw fileSetup, meta toml.MetaData) (Setup, error) {
	var setup Setup
	var err error

	switch {
	case meta.IsDefined("rounds") && meta.IsDefined("total_rounds"):
		return Setup{}, errors.New("setup: rounds and total_rounds are mutually exclusive")
	case meta.IsDefined("rounds"):
		setup.Rounds = raw.Rounds
	case meta.IsDefined("total_rounds"):
		setup.Rounds, err = game.NewRounds(raw.TotalRounds, raw.RevealRounds...)
		if err != nil {
			return Setup{}, fmt.Errorf("setup: %w", err)
		}
	default:
		setup.Rounds = game.StandardRounds()
	}

	setup.Board, err = buildBoard(raw.Board)
	if err != nil {
		return Setup{}, err
	}

	fugitive := raw.Fugitive
	if !meta.IsDefined("fugitive", "colour") {
		fugitive.Colour = game.Black.String()
	}
	setup.Fugitive, err = buildPlayer(fugitive)
	if err != nil {
		return Setup{}, fmt.Errorf("setup fugitive: %w", err)
	}

	for i, h := range raw.Hunters {
		p, err := buildPlayer(h)
		if err != nil {
			return Setup{}, fmt.Errorf("setup hunter %d: %w", i+1, err)
		}
		// Hunters never hold fugitive tickets, so they may be left out
		for _, t := range game.AllTickets {
			if _, ok := p.Tickets[t]; !ok && t.FugitiveOnly() {
				p.Tickets[t] = 0
			}
		}
		setup.Hunters = append(setup.Hunters, p)
	}

	return setup, nil
}

func buildBoard(raw fileBoard) (*game.Board, error) {
	board := game.NewBoard()
	lists := []struct {
		transport game.Transport
		edges     [][]int
	}{
		{game.TaxiTransport, raw.Taxi},
		{game.BusTransport, raw.Bus},
		{game.UndergroundTransport, raw.Underground},
		{game.FerryTransport, raw.Ferry},
	}
	for _, l := range lists {
		for _, e := range l.edges {
			if len(e) != 2 {
				return nil, fmt.Errorf("setup board: %s edge %v needs exactly two nodes", l.transport, e)
			}
			if e[0] <= 0 || e[1] <= 0 {
				return nil, fmt.Errorf("setup board: %s edge %v has a non-positive node", l.transport, e)
			}
			board.AddEdge(e[0], e[1], l.transport)
		}
	}
	return board, nil
}

func buildPlayer(raw filePlayer) (game.PlayerConfig, error) {
	colour, err := game.ParseColour(raw.Colour)
	if err != nil {
		return game.PlayerConfig{}, err
	}
	tickets := make(game.Tickets, len(raw.Tickets))
	for name, n := range raw.Tickets {
		t, err := game.ParseTicket(name)
		if err != nil {
			return game.PlayerConfig{}, fmt.Errorf("%s: %w", colour, err)
		}
		if _, ok := tickets[t]; ok {
			return game.PlayerConfig{}, fmt.Errorf("%s: %s tickets given more than once", colour, t)
		}
		tickets[t] = n
	}
	return game.PlayerConfig{
		Colour:   colour,
		Location: raw.Location,
		Tickets:  tickets,
	}, nil
}

// Describe renders a one-line summary of the setup for logs.
func (s Setup) Describe() string {
	reveals := 0
	for _, r := range s.Rounds {
		if r {
			reveals++
		}
	}
	names := utils.Map(s.Hunters, func(h game.PlayerConfig) string { return h.Colour.String() })
	return fmt.Sprintf("%d nodes, %d rounds (%d reveals), hunters %s",
		s.Board.Len(), len(s.Rounds), reveals, strings.Join(names, ","))
}
