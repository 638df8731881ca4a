package game

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

// Name length bounds for generated game names.
const (
	minNameLen = 4
	maxNameLen = 10
)

// RandomName returns a URL-safe, crypto-random game name whose length is
// uniformly chosen in [4,10]. Output always matches ^[A-Za-z0-9_-]{4,10}$.
// Safe for concurrent use; crypto/rand needs no coordination.
func RandomName() string {
	n := minNameLen + randInt(maxNameLen-minNameLen+1)
	var b [8]byte // 8 bytes encode to 11 base64 chars, enough for 10
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	return s[:n]
}

// randInt returns a cryptographically random int in [0,n).
func randInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}
