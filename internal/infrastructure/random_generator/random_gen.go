package randomgenerator

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomGenerator reads from crypto/rand.
type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

var _ (contract.IRandomGenerator) = (*RandomGenerator)(nil)

// GenerateBase36 draws each character uniformly from [0-9a-z].
func (rg *RandomGenerator) GenerateBase36(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	max := big.NewInt(int64(len(base36Alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random suffix: %w", err)
		}
		out[i] = base36Alphabet[idx.Int64()]
	}
	return string(out), nil
}
