package game

import "errors"

// Sentinel errors returned by the engine. Both are wrapped with the
// offending input, so match with errors.Is.
var (
	// ErrInvalidWord rejects construction from a word containing anything
	// other than lowercase letters a–z.
	ErrInvalidWord = errors.New("invalid word")

	// ErrInvalidGuess rejects a guess that is not exactly one lowercase
	// letter a–z. The game is unaffected by the rejected attempt.
	ErrInvalidGuess = errors.New("invalid guess")
)
