package prime

// Sieve is a sieve of Eratosthenes over odd numbers up to a limit.
// Read-only after construction; safe for concurrent use.
type Sieve struct {
	limit     uint32
	composite []uint64 // bit i marks 2i+1 as composite
	count     int
}

// NewSieve sieves all numbers in [0, limit].
func NewSieve(limit uint32) *Sieve {
	bits := oddCount(limit)
	s := &Sieve{
		limit:     limit,
		composite: make([]uint64, bits/64+1),
	}
	s.composite[0] |= 1 // 1 is not prime

	for i := uint64(1); ; i++ {
		p := 2*i + 1
		if p*p > uint64(limit) {
			break
		}
		if s.isComposite(i) {
			continue
		}
		for j := p * p / 2; j < bits; j += p {
			s.composite[j/64] |= 1 << (j % 64)
		}
	}

	if limit >= 2 {
		s.count = 1
	}
	for i := uint64(1); i < bits; i++ {
		if !s.isComposite(i) {
			s.count++
		}
	}
	return s
}

// oddCount returns the number of odd numbers in [1, limit].
func oddCount(limit uint32) uint64 {
	return (uint64(limit) + 1) / 2
}

func (s *Sieve) isComposite(i uint64) bool {
	return s.composite[i/64]&(1<<(i%64)) != 0
}

// Limit returns the largest number covered by the sieve.
func (s *Sieve) Limit() uint32 {
	return s.limit
}

// Count returns the number of primes up to Limit.
func (s *Sieve) Count() int {
	return s.count
}

// IsPrime reports whether n is prime. Values above Limit fall back to
// the Miller-Rabin test.
func (s *Sieve) IsPrime(n uint32) bool {
	if n > s.limit {
		return IsPrime(n)
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	return !s.isComposite(uint64(n) / 2)
}

// Primes returns all primes up to Limit in ascending order.
func (s *Sieve) Primes() []uint32 {
	out := make([]uint32, 0, s.count)
	if s.limit >= 2 {
		out = append(out, 2)
	}
	bits := oddCount(s.limit)
	for i := uint64(1); i < bits; i++ {
		if !s.isComposite(i) {
			out = append(out, uint32(2*i+1))
		}
	}
	return out
}
