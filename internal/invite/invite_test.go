package invite

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLength(t *testing.T) {
	g := NewGenerator()

	for _, length := range []int{4, 8, 16} {
		code := g.Generate(length)
		assert.Len(t, code, length)
	}
}

func TestGenerateAlphabet(t *testing.T) {
	g := NewGenerator()

	// 혼동 문자(0, O, 1, I)가 절대 나오지 않아야 한다
	for i := 0; i < 100; i++ {
		code := g.Generate(8)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(Alphabet, ch),
				"unexpected character %q in code %s", ch, code)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	g1 := NewGeneratorWithSource(rand.NewSource(42))
	g2 := NewGeneratorWithSource(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		assert.Equal(t, g1.Generate(8), g2.Generate(8))
	}
}

func TestGenerateDifferentSeedsDiverge(t *testing.T) {
	g1 := NewGeneratorWithSource(rand.NewSource(1))
	g2 := NewGeneratorWithSource(rand.NewSource(2))

	assert.NotEqual(t, g1.Generate(16), g2.Generate(16))
}

func TestGenerateConcurrentSafe(t *testing.T) {
	g := NewGenerator()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				code := g.Generate(8)
				if len(code) != 8 {
					t.Errorf("bad code length: %d", len(code))
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
