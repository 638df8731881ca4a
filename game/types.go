// game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - State: coarse game state after the last move.
//   - LetterStatus: per-position disclosure level in a tally.
//   - Letter: one position of the redacted word in a tally.
//   - Tally: the externally-safe view of a game.
//   - Game: state for a single in-progress or finished game.

package game

// State represents the game state as derived from the last applied move.
// Possible values:
//   - "initializing": freshly constructed, no guesses yet.
//   - "good_guess":   last guess occurs in the secret word.
//   - "bad_guess":    last guess does not occur in the secret word.
//   - "already_used": last guess was a repeat; nothing else changed.
//   - "won":          every distinct letter of the word has been guessed.
//   - "lost":         turns ran out (or the player resigned).
type State string

const (
	StateInitializing State = "initializing"
	StateGoodGuess    State = "good_guess"
	StateBadGuess     State = "bad_guess"
	StateAlreadyUsed  State = "already_used"
	StateWon          State = "won"
	StateLost         State = "lost"
)

// LetterStatus tags how a tally position came to be visible (or not).
// Possible values:
//   - "guessed":  the player guessed this letter; Char is set.
//   - "revealed": exposed only because the game was lost; Char is set.
//   - "hidden":   still secret; Char is empty.
//
// The guessed/revealed split is deliberate wire contract: a client must be
// able to render letters the player earned differently from letters the
// loss exposed.
type LetterStatus string

const (
	LetterGuessed  LetterStatus = "guessed"
	LetterRevealed LetterStatus = "revealed"
	LetterHidden   LetterStatus = "hidden"
)

// Letter is one position of the redacted secret word.
// Char is empty when Status is "hidden".
type Letter struct {
	Char   string       `json:"char,omitempty"`
	Status LetterStatus `json:"status"`
}

// Tally is the only representation of a game ever handed to an external
// client. Unguessed letters of a live game never appear in it.
type Tally struct {
	Name      string   `json:"name"`
	State     State    `json:"state"`
	TurnsLeft int      `json:"turnsLeft"`
	Letters   []Letter `json:"letters"`
	Guesses   []string `json:"guesses"` // sorted; order carries no meaning
}

// Game holds the state of a single Hangman game session.
// The secret word and the guessed set are unexported so that the only way
// the word can reach a client is through Tally's redaction rules.
type Game struct {
	Name      string // Opaque session/player identifier; never inspected.
	State     State  // State after the last applied move.
	TurnsLeft int    // Remaining wrong guesses allowed (7 at construction).

	letters []rune            // The secret word, fixed at construction.
	used    map[rune]struct{} // Distinct guessed letters; only ever grows.
}
