// Package prime answers primality for spiral values: a deterministic
// Miller-Rabin test for single values and a sieve for enumerating ranges.
package prime

// Witness bases that make Miller-Rabin exact below 2,152,302,898,747,
// which covers the whole uint32 range.
var witnesses = [...]uint64{2, 3, 5, 7, 11}

var smallPrimes = [...]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime.
func IsPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	for _, p := range smallPrimes {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	if n < 41*41 {
		return true
	}

	m := uint64(n)
	d := m - 1
	s := 0
	for d%2 == 0 {
		d /= 2
		s++
	}

	for _, a := range witnesses {
		if !millerRabinRound(a, d, s, m) {
			return false
		}
	}
	return true
}

// millerRabinRound reports whether m passes one round with base a,
// where m-1 = d * 2^s. Operands stay below 2^32, so products fit uint64.
func millerRabinRound(a, d uint64, s int, m uint64) bool {
	x := powMod(a%m, d, m)
	if x == 1 || x == m-1 {
		return true
	}
	for range s - 1 {
		x = x * x % m
		if x == m-1 {
			return true
		}
	}
	return false
}

func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}
	return result
}

// Tester adapts IsPrime to interfaces expecting an IsPrime method.
type Tester struct{}

// IsPrime calls the package-level IsPrime.
func (Tester) IsPrime(n uint32) bool {
	return IsPrime(n)
}
