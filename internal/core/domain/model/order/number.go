package order

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	orderNumberPrefix       = "ORD"
	orderNumberSuffixLength = 9
	base36Alphabet          = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewOrderNumber generates a human-readable order number of the form
// "ORD-<epoch-millis>-<random base36 suffix>". The timestamp plus nine random
// base36 characters make collisions vanishingly unlikely; uniqueness is not
// re-checked here, the storage layer's unique index is the backstop.
func NewOrderNumber() string {
	var suffix strings.Builder
	for range orderNumberSuffixLength {
		suffix.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))])
	}
	return fmt.Sprintf("%s-%d-%s", orderNumberPrefix, time.Now().UnixMilli(), suffix.String())
}
