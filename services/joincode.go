package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	JoinCodeLength   = 6
	joinCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var joinCodeAlphabetSize = big.NewInt(int64(len(joinCodeAlphabet)))

// GenerateJoinCode returns a lowercase base-36 code with every character
// drawn uniformly. Codes are not unique across workspaces.
func GenerateJoinCode() (string, error) {
	code := make([]byte, JoinCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, joinCodeAlphabetSize)
		if err != nil {
			return "", fmt.Errorf("generating join code: %w", err)
		}
		code[i] = joinCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
