package game

import "strings"

// drawerBonus is the flat score the drawer earns for every player that
// guesses the word, including the last one.
const drawerBonus = 5

func normalizeGuess(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// guessScore rewards earlier guesses: ceil(timeLeft/2) plus a floor bonus of
// 10 so even a last-second guess pays out.
func guessScore(timeLeft int) int {
	return (timeLeft+1)/2 + 10
}

// checkGuess compares a submitted text against the secret word and applies
// the score effects on a match. No round active, the drawer guessing, or a
// repeat guess from someone who already found the word all yield false with
// no state change.
func checkGuess(guesser, drawer *playerState, raw, word string, timeLeft int) bool {
	if word == "" || guesser == nil || guesser.isDrawing || guesser.hasGuessedCorrect {
		return false
	}
	if normalizeGuess(raw) != normalizeGuess(word) {
		return false
	}
	guesser.hasGuessedCorrect = true
	guesser.score += guessScore(timeLeft)
	if drawer != nil {
		drawer.score += drawerBonus
	}
	return true
}

// leaksWord reports whether a chat message from the drawer would reveal the
// active word. Only the drawer can leak; everyone else's messages pass.
func leaksWord(sender *playerState, raw, word string) bool {
	if sender == nil || !sender.isDrawing || word == "" {
		return false
	}
	return strings.Contains(strings.ToLower(raw), strings.ToLower(word))
}
