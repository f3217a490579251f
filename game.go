package main

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Clue is the active spymaster hint. It only exists during the issuing
// team's turn window and is cleared when the turn ends.
type Clue struct {
	Word      string `json:"word"`
	Number    int    `json:"number"`
	Spymaster string `json:"spymaster"`
}

// Mark is an advisory flag a spymaster puts on a card for their
// operatives. Marks never affect scoring and vanish when the card is
// revealed.
type Mark struct {
	CardIndex int    `json:"cardIndex"`
	Team      Team   `json:"team"`
	Nickname  string `json:"player"`
}

// gameData exists only while a round is underway (playing or gameover).
type gameData struct {
	Cards        []Card       `json:"cards"`
	Scores       map[Team]int `json:"scores"`
	TargetScores map[Team]int `json:"targetScores"`
	Clue         *Clue        `json:"clue"`
	GuessesLeft  int          `json:"guessesLeft"`
	Marks        []Mark       `json:"markedCards"`
	Reason       string       `json:"reason,omitempty"`
}

const (
	winReasonAssassin = "assassin"
	winReasonCleared  = "cleared"
)

// start moves the lobby into a round: both teams need somebody on them
// and every red/blue player must be ready. Any joined player may pull
// the trigger.
func (s *Session) start(id string) error {
	p := s.Players[id]
	if p == nil {
		return errIgnored
	}
	if s.Phase != PhaseLobby {
		return errIgnored
	}

	if !s.hasMembers(TeamRed) || !s.hasMembers(TeamBlue) {
		return ErrNeedBothTeams
	}

	for _, player := range s.Players {
		if player.Team == TeamRed || player.Team == TeamBlue {
			if !player.Ready {
				return ErrNotAllReady
			}
		}
	}

	cards, starting, err := newBoard(s.pool)
	if err != nil {
		return err
	}

	s.Phase = PhasePlaying
	s.Turn = starting
	s.Winner = ""
	s.Game = &gameData{
		Cards:  cards,
		Scores: map[Team]int{TeamRed: 0, TeamBlue: 0},
		TargetScores: map[Team]int{
			starting:         startingTarget,
			starting.rival(): rivalTarget,
		},
		Marks: []Mark{},
	}

	return nil
}

// giveClue validates and stores the active team spymaster's hint. The
// clue word may not appear on the board.
func (s *Session) giveClue(id, word string, number int) error {
	p := s.Players[id]
	if p == nil || p.Role != RoleSpymaster {
		return errIgnored
	}
	if s.Phase != PhasePlaying || s.Turn != p.Team {
		return errIgnored
	}

	word = strings.TrimSpace(word)
	if utf8.RuneCountInString(word) < 2 || number < 1 {
		return errIgnored
	}

	for _, card := range s.Game.Cards {
		if strings.EqualFold(card.Word, word) {
			return ErrClueOnBoard
		}
	}

	s.Game.Clue = &Clue{
		Word:      strings.ToUpper(word),
		Number:    number,
		Spymaster: p.Nickname,
	}
	s.Game.GuessesLeft = number

	return nil
}

// markCard toggles a spymaster's advisory mark on an unrevealed card.
// Marking is allowed off-turn; each team holds at most one mark per
// card.
func (s *Session) markCard(id string, cardIndex int) error {
	p := s.Players[id]
	if p == nil || p.Role != RoleSpymaster {
		return errIgnored
	}
	if s.Phase != PhasePlaying {
		return errIgnored
	}
	if cardIndex < 0 || cardIndex >= len(s.Game.Cards) {
		return errIgnored
	}
	if s.Game.Cards[cardIndex].Revealed {
		return errIgnored
	}

	for i, m := range s.Game.Marks {
		if m.CardIndex == cardIndex && m.Team == p.Team {
			s.Game.Marks = slices.Delete(s.Game.Marks, i, i+1)
			return nil
		}
	}

	s.Game.Marks = append(s.Game.Marks, Mark{
		CardIndex: cardIndex,
		Team:      p.Team,
		Nickname:  p.Nickname,
	})

	return nil
}

// verifyCard is the authoritative reveal. Only the active team's
// operative may reveal, only with a clue on the table, only once per
// card. Revealing the assassin hands the game to the other team; an
// own-color card scores and may win; civilian and rival cards end the
// turn, the rival card scoring for the rival.
func (s *Session) verifyCard(id string, cardIndex int) error {
	p := s.Players[id]
	if p == nil || p.Role != RoleOperative {
		return errIgnored
	}
	if s.Phase != PhasePlaying || s.Turn != p.Team {
		return errIgnored
	}
	if s.Game.Clue == nil {
		return errIgnored
	}
	if cardIndex < 0 || cardIndex >= len(s.Game.Cards) {
		return errIgnored
	}

	card := &s.Game.Cards[cardIndex]
	if card.Revealed {
		return errIgnored
	}

	card.Revealed = true
	s.Game.Marks = slices.DeleteFunc(s.Game.Marks, func(m Mark) bool {
		return m.CardIndex == cardIndex
	})

	team := p.Team

	switch card.Type {
	case CardAssassin:
		s.gameOver(team.rival(), winReasonAssassin)

	case CardType(team):
		s.Game.Scores[team]++
		if s.Game.GuessesLeft > 0 {
			s.Game.GuessesLeft--
		}
		// Running out of guesses never ends the turn; operatives may
		// keep revealing their own color until they miss or pass.
		if s.Game.Scores[team] == s.Game.TargetScores[team] {
			s.gameOver(team, winReasonCleared)
		}

	case CardCivilian:
		s.endTurn()

	default:
		s.Game.Scores[team.rival()]++
		s.endTurn()
	}

	return nil
}

// passTurn lets the active team's operative give up the rest of the
// turn.
func (s *Session) passTurn(id string) error {
	p := s.Players[id]
	if p == nil || p.Role != RoleOperative {
		return errIgnored
	}
	if s.Phase != PhasePlaying || s.Turn != p.Team {
		return errIgnored
	}

	s.endTurn()

	return nil
}

// newGame resets back to the lobby. Players and nicknames survive;
// team slots, readiness and all round data do not.
func (s *Session) newGame(id string) error {
	if s.Players[id] == nil {
		return errIgnored
	}

	s.Phase = PhaseLobby
	s.Turn = ""
	s.Winner = ""
	s.Game = nil
	s.Teams = map[Team]*teamSlots{
		TeamRed:  {Operatives: []string{}},
		TeamBlue: {Operatives: []string{}},
	}

	for _, p := range s.Players {
		p.Team = ""
		p.Role = ""
		p.Ready = false
	}

	return nil
}

func (s *Session) endTurn() {
	s.Game.Clue = nil
	s.Game.GuessesLeft = 0
	s.Turn = s.Turn.rival()
}

func (s *Session) gameOver(winner Team, reason string) {
	s.Phase = PhaseGameover
	s.Winner = winner
	s.Game.Reason = reason
}
