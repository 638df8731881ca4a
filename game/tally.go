// game/tally.go
//
// Redacted external view of a game.
// Responsibilities:
//   - Copy state/turns and the guessed set (sorted) verbatim.
//   - Redact the secret word position by position: guessed letters show as
//     "guessed", unguessed letters of a lost game show as "revealed", and
//     everything else stays "hidden" with no character attached.
//
// The guessed/revealed distinction survives into the wire format so a
// client can render earned letters differently from loss-exposed ones.

package game

import "sort"

// Tally produces the redacted view of the game. It is the only channel
// through which letters of the secret word may reach a caller.
func (g *Game) Tally() Tally {
	letters := make([]Letter, len(g.letters))
	for i, r := range g.letters {
		switch {
		case g.isUsed(r):
			letters[i] = Letter{Char: string(r), Status: LetterGuessed}
		case g.State == StateLost:
			letters[i] = Letter{Char: string(r), Status: LetterRevealed}
		default:
			letters[i] = Letter{Status: LetterHidden}
		}
	}

	guesses := make([]string, 0, len(g.used))
	for r := range g.used {
		guesses = append(guesses, string(r))
	}
	sort.Strings(guesses)

	return Tally{
		Name:      g.Name,
		State:     g.State,
		TurnsLeft: g.TurnsLeft,
		Letters:   letters,
		Guesses:   guesses,
	}
}

// isUsed reports whether r has been guessed.
func (g *Game) isUsed(r rune) bool {
	_, ok := g.used[r]
	return ok
}

// String renders a single tally position for terminal display:
// a guessed letter as itself, a loss-revealed letter bracketed, and a
// hidden position as an underscore.
func (l Letter) String() string {
	switch l.Status {
	case LetterGuessed:
		return l.Char
	case LetterRevealed:
		return "[" + l.Char + "]"
	default:
		return "_"
	}
}
