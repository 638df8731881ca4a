package game

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertTallyEq diffs two tallies structurally for readable failures.
func assertTallyEq(t *testing.T, want, got Tally) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		assert.Fail(t, "Tally mismatch (-want +got):\n"+diff)
	}
}

func TestTally(t *testing.T) {
	t.Parallel()

	t.Run("Live Game Hides Unguessed Letters", func(t *testing.T) {
		t.Parallel()
		g := mustGame(t, "wibble")
		mustMove(t, g, "b")
		mustMove(t, g, "z")
		assertTallyEq(t, Tally{
			Name:      "test",
			State:     StateBadGuess,
			TurnsLeft: 6,
			Letters: []Letter{
				{Status: LetterHidden},
				{Status: LetterHidden},
				{Char: "b", Status: LetterGuessed},
				{Char: "b", Status: LetterGuessed},
				{Status: LetterHidden},
				{Status: LetterHidden},
			},
			Guesses: []string{"b", "z"},
		}, g.Tally())
	})

	t.Run("Loss Reveals But Tags The Difference", func(t *testing.T) {
		t.Parallel()
		g := mustGame(t, "wibble")
		mustMove(t, g, "b")
		g.Resign()
		assertTallyEq(t, Tally{
			Name:      "test",
			State:     StateLost,
			TurnsLeft: 7,
			Letters: []Letter{
				{Char: "w", Status: LetterRevealed},
				{Char: "i", Status: LetterRevealed},
				{Char: "b", Status: LetterGuessed},
				{Char: "b", Status: LetterGuessed},
				{Char: "l", Status: LetterRevealed},
				{Char: "e", Status: LetterRevealed},
			},
			Guesses: []string{"b"},
		}, g.Tally())
	})

	t.Run("Guesses Are Sorted", func(t *testing.T) {
		t.Parallel()
		g := mustGame(t, "wibble")
		for _, guess := range []string{"z", "e", "a", "w"} {
			mustMove(t, g, guess)
		}
		assert.Equal(t, []string{"a", "e", "w", "z"}, g.Tally().Guesses)
	})

	t.Run("Live Game Never Leaks The Word Over The Wire", func(t *testing.T) {
		t.Parallel()
		g := mustGame(t, "quagmire")
		mustMove(t, g, "z")
		raw, err := json.Marshal(g.Tally())
		require.NoError(t, err)
		for _, secret := range []string{"q", "u", "a", "g", "m", "i", "r", "e"} {
			assert.NotContains(t, string(raw), `"char":"`+secret+`"`)
		}
	})

	t.Run("Letter Rendering", func(t *testing.T) {
		t.Parallel()
		g := mustGame(t, "wibble")
		mustMove(t, g, "b")
		g.Resign()
		var sb strings.Builder
		for _, l := range g.Tally().Letters {
			sb.WriteString(l.String())
		}
		assert.Equal(t, "[w][i]bb[l][e]", sb.String())
	})
}
