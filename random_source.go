package probability

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"sync"
)

// RandomSource produces uniform floats in [0, 1)
type RandomSource interface {
	Float64() (float64, error)
}

// SecureRandomSource implements RandomSource using crypto/rand with caching
type SecureRandomSource struct {
	cache      []float64
	cacheSize  int
	cacheIndex int
	cacheMtx   sync.Mutex
}

// NewSecureRandomSource creates a new secure random source with the specified cache size
//
// If no cache size is provided, or it is not positive,
// DefaultRandomSourceCacheSize will be used.
func NewSecureRandomSource(cacheSize ...int) *SecureRandomSource {
	size := DefaultRandomSourceCacheSize
	if len(cacheSize) > 0 && cacheSize[0] > 0 {
		size = cacheSize[0]
	}

	return &SecureRandomSource{
		cache:      make([]float64, size),
		cacheSize:  size,
		cacheIndex: size, // 首次调用时填充缓存
	}
}

// refillCache refills the random number cache
func (g *SecureRandomSource) refillCache() error {
	for i := range g.cacheSize {
		val, err := secureFloat()
		if err != nil {
			return err
		}
		g.cache[i] = val
	}

	g.cacheIndex = 0
	return nil
}

// Float64 returns a secure random float in [0, 1)
func (g *SecureRandomSource) Float64() (float64, error) {
	g.cacheMtx.Lock()
	defer g.cacheMtx.Unlock()

	if g.cacheIndex >= g.cacheSize {
		if err := g.refillCache(); err != nil {
			return 0, err
		}
	}

	result := g.cache[g.cacheIndex]
	g.cacheIndex++
	return result, nil
}

// secureFloat generates a secure random float in [0, 1) with 53 bits of precision
func secureFloat() (float64, error) {
	randomBig, err := rand.Int(rand.Reader, big.NewInt(1<<53))
	if err != nil {
		return 0, err
	}
	return float64(randomBig.Int64()) / float64(1<<53), nil
}

// SeededRandomSource implements RandomSource with a deterministic math/rand generator.
// It is safe for concurrent use.
type SeededRandomSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededRandomSource creates a reproducible random source
func NewSeededRandomSource(seed int64) *SeededRandomSource {
	return &SeededRandomSource{rng: mrand.New(mrand.NewSource(seed))}
}

// Float64 returns a pseudo-random float in [0, 1)
func (s *SeededRandomSource) Float64() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64(), nil
}

// NewRandomSource returns a seeded source for a non-zero seed and a secure one otherwise
func NewRandomSource(seed int64) RandomSource {
	if seed == DefaultSimulationSeed {
		return NewSecureRandomSource()
	}
	return NewSeededRandomSource(seed)
}
