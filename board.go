package main

import "math/rand/v2"

const (
	boardSize      = 25
	startingCards  = 9
	rivalCards     = 8
	civilianCards  = 7
	assassinCards  = 1
	startingTarget = startingCards
	rivalTarget    = rivalCards
)

// Team is a side of the table. Neutral players watch without playing.
type Team string

const (
	TeamRed     Team = "red"
	TeamBlue    Team = "blue"
	TeamNeutral Team = "neutral"
)

// rival returns the opposing team. Only meaningful for red and blue.
func (t Team) rival() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// Role is what a player is allowed to do within their team.
type Role string

const (
	RoleSpymaster Role = "spymaster"
	RoleOperative Role = "operative"
	RoleObserver  Role = "observer"
)

// CardType is the hidden affiliation of a board card.
type CardType string

const (
	CardRed      CardType = "red"
	CardBlue     CardType = "blue"
	CardCivilian CardType = "civilian"
	CardAssassin CardType = "assassin"
)

// Card is a single cell of the 5x5 board. Revealed only ever flips
// false to true.
type Card struct {
	Word     string   `json:"word"`
	Type     CardType `json:"type"`
	Revealed bool     `json:"revealed"`
}

// newBoard draws 25 distinct words and deals them out 9/8/7/1: nine for
// the randomly chosen starting team, eight for the rival, seven
// civilians and one assassin, then shuffles the positions.
func newBoard(pool *wordPool) ([]Card, Team, error) {
	words, err := pool.draw(boardSize)
	if err != nil {
		return nil, "", err
	}

	starting := TeamRed
	if rand.IntN(2) == 0 {
		starting = TeamBlue
	}

	cards := make([]Card, 0, boardSize)
	deal := func(n int, t CardType) {
		for range n {
			cards = append(cards, Card{Word: words[len(cards)], Type: t})
		}
	}

	deal(startingCards, CardType(starting))
	deal(rivalCards, CardType(starting.rival()))
	deal(civilianCards, CardCivilian)
	deal(assassinCards, CardAssassin)

	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return cards, starting, nil
}
