package game

// nextDrawer returns the player after the current drawer in registry order,
// wrapping at the end. A drawer that already left the membership resolves to
// index -1, so the search lands on index 0. Returns nil with fewer than two
// players.
//
// Known limitation, kept on purpose: "chosen drawer is at index 0" is what
// signals a completed pass, so membership churn between turns can skip a
// player or hand someone a second turn in the same pass.
func nextDrawer(current *playerState, members []*playerState) *playerState {
	if len(members) < 2 {
		return nil
	}
	currentIndex := -1
	if current != nil {
		for i, p := range members {
			if p.id == current.id {
				currentIndex = i
				break
			}
		}
	}
	return members[(currentIndex+1)%len(members)]
}

// passCompleted reports whether choosing this drawer wrapped the rotation,
// which is the trigger to advance the round counter.
func passCompleted(chosen *playerState, members []*playerState) bool {
	return len(members) > 0 && members[0] == chosen
}
