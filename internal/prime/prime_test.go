package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trialDivision(n uint32) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= uint64(n); d++ {
		if uint64(n)%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name string
		n    uint32
		want bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"two", 2, true},
		{"three", 3, true},
		{"four", 4, false},
		{"small prime", 1607, true},
		{"square of prime", 41 * 41, false},
		{"carmichael", 561, false},
		{"strong pseudoprime base 2", 2047, false},
		{"strong pseudoprime bases 2,3,5,7", 3215031751, false},
		{"largest uint32 prime", 4294967291, true},
		{"max uint32", math.MaxUint32, false},
		{"spiral value", 3987051, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrime(tt.n))
			assert.Equal(t, tt.want, Tester{}.IsPrime(tt.n))
		})
	}
}

func TestIsPrimeMatchesTrialDivision(t *testing.T) {
	for n := uint32(0); n < 100_000; n++ {
		require.Equal(t, trialDivision(n), IsPrime(n), "n=%d", n)
	}
	for n := uint32(math.MaxUint32 - 2_000); n < math.MaxUint32; n++ {
		require.Equal(t, trialDivision(n), IsPrime(n), "n=%d", n)
	}
}

func TestSieve(t *testing.T) {
	s := NewSieve(30)
	assert.Equal(t, uint32(30), s.Limit())
	assert.Equal(t, []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, s.Primes())
	assert.Equal(t, 10, s.Count())
}

func TestSieveEdges(t *testing.T) {
	tests := []struct {
		limit uint32
		want  []uint32
	}{
		{0, []uint32{}},
		{1, []uint32{}},
		{2, []uint32{2}},
		{3, []uint32{2, 3}},
		{9, []uint32{2, 3, 5, 7}},
		{11, []uint32{2, 3, 5, 7, 11}},
	}

	for _, tt := range tests {
		s := NewSieve(tt.limit)
		assert.Equal(t, tt.want, s.Primes(), "limit %d", tt.limit)
		assert.Equal(t, len(tt.want), s.Count(), "limit %d", tt.limit)
	}
}

func TestSieveMatchesIsPrime(t *testing.T) {
	s := NewSieve(200_000)
	count := 0
	for n := uint32(0); n <= 200_000; n++ {
		require.Equal(t, IsPrime(n), s.IsPrime(n), "n=%d", n)
		if s.IsPrime(n) {
			count++
		}
	}
	assert.Equal(t, 17984, count)
	assert.Equal(t, count, s.Count())
	assert.Len(t, s.Primes(), count)
}

func TestSieveFallsBackAboveLimit(t *testing.T) {
	s := NewSieve(100)
	assert.True(t, s.IsPrime(4294967291))
	assert.False(t, s.IsPrime(1_000_000))
}

func BenchmarkIsPrime(b *testing.B) {
	for b.Loop() {
		IsPrime(4294967291)
	}
}

func BenchmarkNewSieve(b *testing.B) {
	for b.Loop() {
		NewSieve(10_000_000)
	}
}
