/*
Copyright © 2025 FPrangeM
*/

package main

import "errors"

// Rule violations that produce a user-visible rejection. The message text
// is sent verbatim to the offending client and nobody else.
var (
	ErrEmptyNickname        = errors.New("nickname is required")
	ErrDuplicateNickname    = errors.New("nickname already taken")
	ErrSpymasterTaken       = errors.New("team already has a spymaster")
	ErrNeedBothTeams        = errors.New("need at least one player per team to start")
	ErrNotAllReady          = errors.New("all players must be ready")
	ErrClueOnBoard          = errors.New("clue cannot be any word on the board")
	ErrInsufficientWordPool = errors.New("word pool cannot fill a board")
)

// errIgnored marks a command that is dropped without a rejection message:
// unknown sender, wrong phase/turn/role, malformed fields. No state is
// changed and nothing is broadcast.
var errIgnored = errors.New("command ignored")
