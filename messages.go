package main

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// command is the envelope for everything a client sends. Type selects
// the handler; unused fields are simply absent.
type command struct {
	Type      string `json:"type"`                // "join", "setTeam", "setReady", "start", "giveClue", "markCard", "verifyCard", "passTurn", "newGame"
	Nickname  string `json:"nickname,omitempty"`  // join
	Team      Team   `json:"team,omitempty"`      // setTeam
	Role      Role   `json:"role,omitempty"`      // setTeam
	Ready     bool   `json:"ready"`               // setReady
	Word      string `json:"word,omitempty"`      // giveClue
	Number    int    `json:"number,omitempty"`    // giveClue
	CardIndex *int   `json:"cardIndex,omitempty"` // markCard / verifyCard
}

// stateUpdate carries the full session snapshot. The same message goes
// to every client after every accepted mutation; unrevealed card types
// are included and hidden client-side per role.
type stateUpdate struct {
	Type  string   `json:"type"` // "stateUpdate"
	State *Session `json:"state"`
}

// rejected tells one client why its last command was refused. Clients
// display it briefly and clear it on their own.
type rejected struct {
	Type   string `json:"type"` // "rejected"
	Reason string `json:"reason"`
}

// sessionInfo is sent once on connect so the client knows which entry
// in the players map is its own.
type sessionInfo struct {
	Type     string `json:"type"` // "sessionInfo"
	PlayerID string `json:"playerId"`
}

// snapshot marshals the full session into wire bytes. Encoding happens
// on the hub goroutine while it still owns the state; writer goroutines
// only ever see the finished copy.
func snapshot(s *Session) []byte {
	return encode(stateUpdate{Type: "stateUpdate", State: s})
}

func encode(msg any) []byte {
	raw, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Msg("outbound message marshal failed")
	}

	return raw
}

// dispatch routes one inbound command through the matching session
// operation. The legal-action surface lives in this table; each handler
// re-checks phase, turn and role before mutating anything.
func dispatch(s *Session, playerID string, cmd command) error {
	switch cmd.Type {
	case "join":
		return s.join(playerID, cmd.Nickname)
	case "setTeam":
		return s.setTeam(playerID, cmd.Team, cmd.Role)
	case "setReady":
		return s.setReady(playerID, cmd.Ready)
	case "start":
		return s.start(playerID)
	case "giveClue":
		return s.giveClue(playerID, cmd.Word, cmd.Number)
	case "markCard":
		if cmd.CardIndex == nil {
			return errIgnored
		}
		return s.markCard(playerID, *cmd.CardIndex)
	case "verifyCard":
		if cmd.CardIndex == nil {
			return errIgnored
		}
		return s.verifyCard(playerID, *cmd.CardIndex)
	case "passTurn":
		return s.passTurn(playerID)
	case "newGame":
		return s.newGame(playerID)
	default:
		return errIgnored
	}
}
