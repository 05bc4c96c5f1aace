// Package schedule provides pure turn-order arithmetic for drafts.
//
// Overall pick numbers are 1-based. A schedule is fully determined by the
// frozen team order, the draft type and the number of rounds; nothing in
// this package touches storage or the clock.
package schedule

import "github.com/rsheln/combine-draft/internal/draft/model"

// Slot identifies one position in the draft order.
type Slot struct {
	Round       int
	PickNumber  int
	PickInRound int // 1-based position within the round
	TeamID      string
}

// TotalPicks returns the number of pick slots in the draft.
func TotalPicks(numTeams, numRounds int) int {
	return numTeams * numRounds
}

// RoundOf returns the 1-based round that contains the given overall pick.
func RoundOf(overallPick, numTeams int) int {
	return ((overallPick - 1) / numTeams) + 1
}

// OrderForRound returns the team order used in a given round. Snake drafts
// reverse direction on even rounds; linear drafts always run forward.
func OrderForRound(teamOrder []string, draftType model.DraftType, round int) []string {
	if draftType != model.DraftTypeSnake || round%2 == 1 {
		return teamOrder
	}
	reversed := make([]string, len(teamOrder))
	for i, id := range teamOrder {
		reversed[len(teamOrder)-1-i] = id
	}
	return reversed
}

// SlotFor computes the full slot for an overall pick number. ok is false
// when the team order is empty or the pick lies outside the draft.
func SlotFor(teamOrder []string, draftType model.DraftType, numRounds, overallPick int) (Slot, bool) {
	numTeams := len(teamOrder)
	if numTeams == 0 || overallPick < 1 || overallPick > TotalPicks(numTeams, numRounds) {
		return Slot{}, false
	}

	round := RoundOf(overallPick, numTeams)
	idx := (overallPick - 1) % numTeams
	order := OrderForRound(teamOrder, draftType, round)

	return Slot{
		Round:       round,
		PickNumber:  overallPick,
		PickInRound: idx + 1,
		TeamID:      order[idx],
	}, true
}

// TeamForPick returns the team on the clock for an overall pick number.
func TeamForPick(teamOrder []string, draftType model.DraftType, numRounds, overallPick int) (string, bool) {
	slot, ok := SlotFor(teamOrder, draftType, numRounds, overallPick)
	if !ok {
		return "", false
	}
	return slot.TeamID, true
}

// Advance returns the slot following the given overall pick. ok is false
// when the draft is complete, i.e. overallPick was the last slot.
func Advance(teamOrder []string, draftType model.DraftType, numRounds, overallPick int) (Slot, bool) {
	return SlotFor(teamOrder, draftType, numRounds, overallPick+1)
}
