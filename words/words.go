// words/words.go
//
// Small embedded word list used as a fixture by examples and tests.
//
// The game engine never consults this package: callers supply the secret
// word themselves. This list exists so documentation examples and tests
// have realistic lowercase words to play with, and so a quick demo does
// not need an external dictionary.
//
// Constraints:
//   • Words are lowercase ASCII letters a–z only.
//   • The list is parsed once (sync.Once).

package words

import (
	"crypto/rand"
	_ "embed"
	"math/big"
	"strings"
	"sync"
)

//go:embed words.txt
var embedded string

var (
	parseOnce sync.Once
	list      []string
	set       map[string]struct{}
)

// parse normalizes the embedded list: lowercase, trimmed, letters only.
func parse() {
	for _, line := range strings.Split(embedded, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if isAlpha(w) {
			list = append(list, w)
		}
	}
	set = make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
}

// List returns the fixture words. Callers must not modify the result.
func List() []string {
	parseOnce.Do(parse)
	return list
}

// Random returns a cryptographically random word from the list.
func Random() string {
	parseOnce.Do(parse)
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[nBig.Int64()]
}

// Contains reports whether w is in the fixture list.
func Contains(w string) bool {
	parseOnce.Do(parse)
	_, ok := set[strings.ToLower(w)]
	return ok
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
