package main

import (
	"slices"
	"strings"
)

// Phase is the lifecycle stage of the session.
type Phase string

const (
	PhaseLobby    Phase = "lobby"
	PhasePlaying  Phase = "playing"
	PhaseGameover Phase = "gameover"
)

// Player is one connected participant. ID is connection-derived and
// never outlives the connection.
type Player struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Team     Team   `json:"team,omitempty"`
	Role     Role   `json:"role,omitempty"`
	Ready    bool   `json:"ready"`
}

// teamSlots holds which player IDs occupy a team: at most one spymaster
// and any number of distinct operatives.
type teamSlots struct {
	Spymaster  string   `json:"spymaster,omitempty"`
	Operatives []string `json:"operatives"`
}

// Session is the single authoritative game state. It is owned by the
// hub's run loop and must only be touched from there; every accepted
// mutation is followed by a full-state broadcast.
type Session struct {
	Phase   Phase               `json:"phase"`
	Players map[string]*Player  `json:"players"`
	Teams   map[Team]*teamSlots `json:"teams"`
	Turn    Team                `json:"turn,omitempty"`
	Winner  Team                `json:"winner,omitempty"`
	Game    *gameData           `json:"gameData,omitempty"`

	pool *wordPool
}

func newSession(pool *wordPool) *Session {
	return &Session{
		Phase:   PhaseLobby,
		Players: make(map[string]*Player),
		Teams: map[Team]*teamSlots{
			TeamRed:  {Operatives: []string{}},
			TeamBlue: {Operatives: []string{}},
		},
		pool: pool,
	}
}

// join registers a new player with no team, no role, not ready.
// Nicknames are unique case-insensitively. A connection joins once;
// repeats are dropped so held team slots stay consistent.
func (s *Session) join(id, nickname string) error {
	if s.Players[id] != nil {
		return errIgnored
	}

	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return ErrEmptyNickname
	}

	for _, p := range s.Players {
		if strings.EqualFold(p.Nickname, nickname) {
			return ErrDuplicateNickname
		}
	}

	s.Players[id] = &Player{ID: id, Nickname: nickname}

	return nil
}

// setTeam moves a player between team/role slots. The prior slot is
// released before the new one is claimed, so an identity can never sit
// in two slots at once. Neutral always means observer.
func (s *Session) setTeam(id string, team Team, role Role) error {
	p := s.Players[id]
	if p == nil {
		return errIgnored
	}

	if team == TeamNeutral {
		s.releaseSlot(p)
		p.Team = TeamNeutral
		p.Role = RoleObserver
		return nil
	}

	if team != TeamRed && team != TeamBlue {
		return errIgnored
	}
	if role != RoleSpymaster && role != RoleOperative {
		return errIgnored
	}

	if role == RoleSpymaster {
		if holder := s.Teams[team].Spymaster; holder != "" && holder != id {
			return ErrSpymasterTaken
		}
	}

	s.releaseSlot(p)
	p.Team = team
	p.Role = role

	slots := s.Teams[team]
	switch role {
	case RoleSpymaster:
		slots.Spymaster = id
	case RoleOperative:
		if !slices.Contains(slots.Operatives, id) {
			slots.Operatives = append(slots.Operatives, id)
		}
	}

	return nil
}

// setReady flags a player as ready to start. Neutral observers and
// players without a team have nothing to be ready for.
func (s *Session) setReady(id string, ready bool) error {
	p := s.Players[id]
	if p == nil || p.Team == "" || p.Team == TeamNeutral {
		return errIgnored
	}

	p.Ready = ready

	return nil
}

// remove handles a disconnect: release any held slot and drop the
// player record. Reports whether anything changed.
func (s *Session) remove(id string) bool {
	p := s.Players[id]
	if p == nil {
		return false
	}

	s.releaseSlot(p)
	delete(s.Players, id)

	return true
}

// releaseSlot vacates whatever team slot the player currently holds.
func (s *Session) releaseSlot(p *Player) {
	if p.Team != TeamRed && p.Team != TeamBlue {
		return
	}

	slots := s.Teams[p.Team]
	switch p.Role {
	case RoleSpymaster:
		if slots.Spymaster == p.ID {
			slots.Spymaster = ""
		}
	case RoleOperative:
		slots.Operatives = slices.DeleteFunc(slots.Operatives, func(id string) bool {
			return id == p.ID
		})
	}
}

// hasMembers reports whether a team can play: a spymaster or at least
// one operative.
func (s *Session) hasMembers(team Team) bool {
	slots := s.Teams[team]
	return slots.Spymaster != "" || len(slots.Operatives) > 0
}
