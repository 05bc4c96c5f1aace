package model

import "errors"

var (
	// ErrDraftNotFound indicates that the requested draft does not exist.
	ErrDraftNotFound = errors.New("draft not found")
	// ErrTeamNotFound indicates that the requested draft team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidState indicates that the operation is not valid for the draft's current status.
	ErrInvalidState = errors.New("operation not valid in current draft state")
	// ErrInsufficientTeams indicates that a draft cannot start with fewer than two teams.
	ErrInsufficientTeams = errors.New("need at least 2 teams to start draft")
	// ErrNotYourTurn indicates that the caller is neither the organizer nor the on-the-clock coach.
	ErrNotYourTurn = errors.New("not your turn to pick")
	// ErrNotOrganizer indicates that the operation is restricted to the draft creator.
	ErrNotOrganizer = errors.New("only the draft organizer may perform this operation")
	// ErrPlayerDrafted indicates that the player is already on the pick ledger for this draft.
	ErrPlayerDrafted = errors.New("player already drafted")
	// ErrTimerNotExpired indicates that auto-pick was requested before the pick deadline.
	ErrTimerNotExpired = errors.New("pick timer has not expired yet")
	// ErrAutoPickDisabled indicates that the draft has auto-pick on timeout turned off.
	ErrAutoPickDisabled = errors.New("auto-pick is disabled for this draft")
	// ErrNoPicksToUndo indicates that the pick ledger is empty.
	ErrNoPicksToUndo = errors.New("no picks to undo")
	// ErrNoPlayersAvailable indicates that every eligible player has been drafted.
	ErrNoPlayersAvailable = errors.New("no players available")
	// ErrInvalidDraftType indicates an unknown draft type value.
	ErrInvalidDraftType = errors.New("invalid draft type")
	// ErrInvalidName indicates that the draft name is missing.
	ErrInvalidName = errors.New("draft name is required")
	// ErrInvalidTeamName indicates that the team name is missing.
	ErrInvalidTeamName = errors.New("team name is required")
	// ErrInvalidTeamOrder indicates that a reorder request does not cover exactly the draft's teams.
	ErrInvalidTeamOrder = errors.New("team order must contain each draft team exactly once")
	// ErrInvalidSettings indicates an invalid combination of draft settings.
	ErrInvalidSettings = errors.New("invalid draft settings")
)
