// internal/game/engine.go
//
// Feedback classification for a single guess.
// Responsibilities:
//   - Normalize secret and guess to upper case.
//   - Score the guess with the two-pass, duplicate-aware algorithm.
//
// Notes:
//   - Letters are compared as whole runes; there is no locale collation.
//   - Classify is pure: the same inputs always give the same marks.
package game

import (
	"fmt"
	"strings"
)

// Classify scores guess against secret.
// Returns ErrInvalidLength if the two words differ in letter count.
//
// Pass 1:
//   - Mark exact matches Correct and consume that secret letter.
//
// Pass 2:
//   - For each remaining guess letter, claim the leftmost unconsumed copy
//     of it in the secret and mark Present; otherwise leave it Absent.
//
// A letter is therefore never credited more times than it occurs in the secret.
func Classify(secret, guess Word) (Feedback, error) {
	s := []rune(strings.ToUpper(string(secret)))
	g := []rune(strings.ToUpper(string(guess)))
	if len(s) != len(g) {
		return nil, fmt.Errorf("%w: secret has %d letters, guess has %d", ErrInvalidLength, len(s), len(g))
	}

	n := len(g)
	res := make(Feedback, n)
	used := make([]bool, n) // consumed secret slots

	for i := 0; i < n; i++ {
		res[i] = MarkAbsent
		if g[i] == s[i] {
			res[i] = MarkCorrect
			used[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		for j := 0; j < n; j++ {
			if !used[j] && s[j] == g[i] {
				res[i] = MarkPresent
				used[j] = true
				break
			}
		}
	}
	return res, nil
}
