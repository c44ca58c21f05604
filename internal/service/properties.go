package service

import (
	"math/big"

	"github.com/guttosm/number-classifier/internal/domain/model"
)

const (
	// primeTrialLimit bounds trial division; larger inputs use big.Int.ProbablyPrime(0),
	// which is exact below 2^64.
	primeTrialLimit = 1 << 32
	// perfectTrialLimit bounds divisor summation; larger inputs are checked
	// against the perfect numbers representable in 64 bits.
	perfectTrialLimit = 1_000_000_000_000
)

// perfectNumbers64 lists every perfect number below 2^63.
var perfectNumbers64 = map[int64]struct{}{
	6:                   {},
	28:                  {},
	496:                 {},
	8128:                {},
	33550336:            {},
	8589869056:          {},
	137438691328:        {},
	2305843008139952128: {},
}

// IsPrime reports whether n is a prime number.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	if uint64(n) > primeTrialLimit {
		return big.NewInt(int64(n)).ProbablyPrime(0)
	}
	for i := 3; i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// IsPerfect reports whether n equals the sum of its proper divisors.
func IsPerfect(n int) bool {
	if n < 2 {
		return false
	}
	if int64(n) > perfectTrialLimit {
		_, ok := perfectNumbers64[int64(n)]
		return ok
	}
	sum := 1
	for i := 2; i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		sum += i
		if j := n / i; j != i {
			sum += j
		}
	}
	return sum == n
}

// IsArmstrong reports whether n equals the sum of its digits each raised to
// the number of digits. Negative numbers never qualify.
func IsArmstrong(n int) bool {
	if n < 0 {
		return false
	}
	u := uint64(n)
	k := digitCount(u)

	var sum uint64
	for v := u; ; v /= 10 {
		sum += ipow(v%10, k)
		// sum only grows, and stopping here keeps it far from overflow
		if sum > u {
			return false
		}
		if v < 10 {
			break
		}
	}
	return sum == u
}

// DigitSum returns the sum of the decimal digits of |n|.
func DigitSum(n int) int {
	u := magnitude(n)
	sum := 0
	for ; u > 0; u /= 10 {
		sum += int(u % 10)
	}
	return sum
}

// Parity returns model.PropertyEven or model.PropertyOdd.
func Parity(n int) string {
	if n%2 == 0 {
		return model.PropertyEven
	}
	return model.PropertyOdd
}

// Properties returns the property tags for n: "armstrong" when it applies,
// followed by exactly one parity tag.
func Properties(n int) []string {
	props := make([]string, 0, 2)
	if IsArmstrong(n) {
		props = append(props, model.PropertyArmstrong)
	}
	return append(props, Parity(n))
}

// Analyze computes every numeric field of a Classification. FunFact is left empty.
func Analyze(n int) model.Classification {
	return model.Classification{
		Number:     n,
		IsPrime:    IsPrime(n),
		IsPerfect:  IsPerfect(n),
		Properties: Properties(n),
		DigitSum:   DigitSum(n),
	}
}

// magnitude returns |n| without overflowing on the minimum int.
func magnitude(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func digitCount(u uint64) uint64 {
	count := uint64(1)
	for u >= 10 {
		u /= 10
		count++
	}
	return count
}

func ipow(base, exp uint64) uint64 {
	result := uint64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
