package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchIgnoresUnknownAndMalformed(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.join("c1", "Ana"))

	require.ErrorIs(t, dispatch(s, "c1", command{Type: "teleport"}), errIgnored)
	require.ErrorIs(t, dispatch(s, "c1", command{Type: ""}), errIgnored)
	require.ErrorIs(t, dispatch(s, "c1", command{Type: "markCard"}), errIgnored)
	require.ErrorIs(t, dispatch(s, "c1", command{Type: "verifyCard"}), errIgnored)
}

func TestDispatchSurfacesRejections(t *testing.T) {
	s := newTestSession()
	require.NoError(t, dispatch(s, "c1", command{Type: "join", Nickname: "Ana"}))
	require.ErrorIs(t, dispatch(s, "c2", command{Type: "join", Nickname: "ana"}), ErrDuplicateNickname)
	require.ErrorIs(t, dispatch(s, "c1", command{Type: "start"}), ErrNeedBothTeams)
}

// The full protocol through the dispatcher, commands only, the way the
// hub drives it.
func TestDispatchFullRound(t *testing.T) {
	s := newTestSession()

	steps := []struct {
		player string
		cmd    command
	}{
		{"red-sm", command{Type: "join", Nickname: "Ana"}},
		{"red-op", command{Type: "join", Nickname: "Beto"}},
		{"blue-sm", command{Type: "join", Nickname: "Caio"}},
		{"blue-op", command{Type: "join", Nickname: "Dani"}},
		{"red-sm", command{Type: "setTeam", Team: TeamRed, Role: RoleSpymaster}},
		{"red-op", command{Type: "setTeam", Team: TeamRed, Role: RoleOperative}},
		{"blue-sm", command{Type: "setTeam", Team: TeamBlue, Role: RoleSpymaster}},
		{"blue-op", command{Type: "setTeam", Team: TeamBlue, Role: RoleOperative}},
		{"red-sm", command{Type: "setReady", Ready: true}},
		{"red-op", command{Type: "setReady", Ready: true}},
		{"blue-sm", command{Type: "setReady", Ready: true}},
		{"blue-op", command{Type: "setReady", Ready: true}},
		{"red-op", command{Type: "start"}},
	}

	for _, step := range steps {
		require.NoError(t, dispatch(s, step.player, step.cmd), "command %q", step.cmd.Type)
	}

	require.Equal(t, PhasePlaying, s.Phase)

	require.NoError(t, dispatch(s, activeSpymaster(s), command{Type: "giveClue", Word: "animal", Number: 2}))
	require.Equal(t, "ANIMAL", s.Game.Clue.Word)

	// Revealing a rival card scores for the rival and flips the turn.
	team := s.Turn
	rival := team.rival()
	idx := cardOfType(t, s, CardType(rival))
	require.NoError(t, dispatch(s, activeOperative(s), command{Type: "verifyCard", CardIndex: &idx}))

	assert.Equal(t, 1, s.Game.Scores[rival])
	assert.Equal(t, rival, s.Turn)
	assert.Nil(t, s.Game.Clue)

	require.NoError(t, dispatch(s, "blue-op", command{Type: "newGame"}))
	assert.Equal(t, PhaseLobby, s.Phase)
}

// The broadcast snapshot keeps the wire shape clients render from:
// a players map keyed by ID, team slots, and round data with all card
// types present regardless of role.
func TestSnapshotWireShape(t *testing.T) {
	s := startedSession(t)
	giveTestClue(t, s, 2)
	require.NoError(t, s.markCard("red-sm", cardOfType(t, s, CardCivilian)))

	raw := snapshot(s)

	var decoded struct {
		Type  string `json:"type"`
		State struct {
			Phase   string                    `json:"phase"`
			Players map[string]map[string]any `json:"players"`
			Teams   map[string]map[string]any `json:"teams"`
			Turn    string                    `json:"turn"`
			Game    struct {
				Cards []struct {
					Word     string `json:"word"`
					Type     string `json:"type"`
					Revealed bool   `json:"revealed"`
				} `json:"cards"`
				Scores       map[string]int   `json:"scores"`
				TargetScores map[string]int   `json:"targetScores"`
				Clue         map[string]any   `json:"clue"`
				GuessesLeft  int              `json:"guessesLeft"`
				Marks        []map[string]any `json:"markedCards"`
			} `json:"gameData"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "stateUpdate", decoded.Type)
	assert.Equal(t, "playing", decoded.State.Phase)
	assert.Len(t, decoded.State.Players, 4)
	assert.Contains(t, decoded.State.Teams, "red")
	assert.Contains(t, decoded.State.Teams, "blue")
	assert.Len(t, decoded.State.Game.Cards, boardSize)
	assert.NotNil(t, decoded.State.Game.Clue)
	assert.Equal(t, 2, decoded.State.Game.GuessesLeft)
	assert.Len(t, decoded.State.Game.Marks, 1)

	for _, card := range decoded.State.Game.Cards {
		assert.NotEmpty(t, card.Word)
		assert.NotEmpty(t, card.Type)
	}
}
