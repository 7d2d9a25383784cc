package usecase

import "math/rand"

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomTokenSource produces 32-character tokens by sampling the
// lowercase-alphanumeric alphabet without replacement.
type RandomTokenSource struct{}

func (RandomTokenSource) Token() string {
	chars := []byte(tokenAlphabet)
	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})
	return string(chars[:32])
}
