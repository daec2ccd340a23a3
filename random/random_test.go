package random_test

import (
	"testing"

	"github.com/tendrilgames/chronoframe/random"
)

type fixedPosition int64

func (p fixedPosition) Position() int64 {
	return int64(p)
}

func TestRandomDeterministicForSamePosition(t *testing.T) {
	a := random.NewRandom(fixedPosition(1_000))
	b := random.NewRandom(fixedPosition(1_000))
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		if av, bv := a.Intn(i), b.Intn(i); av != bv {
			t.Fatalf("Intn(%d): got %d and %d from identical positions", i, av, bv)
		}
	}
}

func TestRandomVariesWithPosition(t *testing.T) {
	a := random.NewRandom(fixedPosition(1))
	b := random.NewRandom(fixedPosition(2))
	a.ZeroSeed = true
	b.ZeroSeed = true

	same := true
	for i := 0; i < 32; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different positions to produce different sequences")
	}
}
