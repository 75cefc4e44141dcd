package udf

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"sync"
)

const MaxId = 1_000_000

type IdGenerator interface {
	// NextId returns a value in [0, MaxId)
	NextId() int32
}

type randIdGenerator struct {
	lock sync.Mutex
	rnd  *rand.Rand
}

func (g *randIdGenerator) NextId() int32 {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.rnd.Int32N(MaxId)
}

// NewSecureIdGenerator seeds from the OS entropy source, so ids differ on every run
func NewSecureIdGenerator() (IdGenerator, error) {
	var seed [32]byte

	_, err := crand.Read(seed[:])
	if err != nil {
		return nil, fmt.Errorf("unable to seed id generator: %w", err)
	}

	return &randIdGenerator{rnd: rand.New(rand.NewChaCha8(seed))}, nil
}

// NewSeededIdGenerator yields the same id sequence for the same seed
func NewSeededIdGenerator(seed uint64) IdGenerator {
	return &randIdGenerator{rnd: rand.New(rand.NewPCG(seed, seed))}
}
