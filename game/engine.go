// game/engine.go
//
// Core game engine for a single Hangman session.
// Responsibilities:
//   - Create new games from a secret word (7 wrong guesses allowed).
//   - Validate words and guesses (lowercase a–z only).
//   - Apply guesses and track state transitions:
//     initializing → good_guess/bad_guess/already_used → won/lost.
//   - Support resignation (forces a loss).
//
// Notes:
//   - A secret word is supplied by the caller; the words package offers a
//     small fixture list for examples and tests.
//   - Once a game is won or lost it is terminal: further moves change nothing.
//   - One goroutine owns a *Game at a time; callers serialize access.
//
// Package-level defaults are kept here for clarity.
package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// defaultTurns is the number of wrong guesses allowed before the game is lost.
const defaultTurns = 7

// New constructs a new game around the given secret word.
// If name is empty, a random name is generated.
//
// The word must be non-empty and consist only of lowercase letters a–z;
// anything else fails with ErrInvalidWord naming the offending word.
func New(word, name string) (*Game, error) {
	if word == "" || !isAlpha(word) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	if name == "" {
		name = RandomName()
	}
	g := &Game{
		Name:      name,
		State:     StateInitializing,
		TurnsLeft: defaultTurns,
		letters:   []rune(word),
		used:      make(map[rune]struct{}),
	}
	log.Debug().Str("name", g.Name).Int("length", len(g.letters)).Msg("new game")
	return g, nil
}

// MakeMove validates and applies a single-letter guess, mutating the game.
//
// Validation rules:
//   - Guess must be exactly one lowercase letter a–z; anything else fails
//     with ErrInvalidGuess naming the offending input, game untouched.
//
// Transitions, in priority order:
//  1. Won/lost games are terminal: the move is a no-op.
//  2. A repeated guess sets State to already_used; nothing else changes.
//  3. Otherwise the guess joins the used set. A guess occurring in the word
//     sets good_guess, or won once every distinct letter has been guessed.
//     A guess absent from the word burns a turn: bad_guess, or lost when
//     the last turn is spent (TurnsLeft pinned at 0, never below).
func (g *Game) MakeMove(guess string) error {
	if len(guess) != 1 || !isAlpha(guess) {
		return fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	if g.State == StateWon || g.State == StateLost {
		return nil
	}
	r := rune(guess[0])
	if _, seen := g.used[r]; seen {
		g.State = StateAlreadyUsed
		return nil
	}
	g.used[r] = struct{}{}

	if g.occurs(r) {
		if g.allGuessed() {
			g.State = StateWon
		} else {
			g.State = StateGoodGuess
		}
	} else if g.TurnsLeft <= 1 {
		g.State, g.TurnsLeft = StateLost, 0
	} else {
		g.State = StateBadGuess
		g.TurnsLeft--
	}

	if g.State == StateWon || g.State == StateLost {
		log.Debug().Str("name", g.Name).Str("state", string(g.State)).Msg("game over")
	}
	return nil
}

// Resign forces the game into the lost state, regardless of its current
// state. TurnsLeft and the guessed set are left untouched. Idempotent.
func (g *Game) Resign() {
	if g.State != StateLost {
		log.Debug().Str("name", g.Name).Msg("resigned")
	}
	g.State = StateLost
}

// occurs reports whether r appears in the secret word.
func (g *Game) occurs(r rune) bool {
	for _, l := range g.letters {
		if l == r {
			return true
		}
	}
	return false
}

// allGuessed reports whether every distinct letter of the secret word has
// been guessed.
func (g *Game) allGuessed() bool {
	for _, l := range g.letters {
		if _, ok := g.used[l]; !ok {
			return false
		}
	}
	return true
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
