package utility

import (
	"math/rand"
	"strconv"
	"strings"
)

// RandRange returns a uniform float in [min, max).
func RandRange(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// Pick returns a uniformly chosen element of items.
// Panics on an empty slice, same as indexing would.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// MakeBoothCode derives a short verification code from an arbitrary string.
// The hash is djb2 with xor, folded into 32 bits, so the same input always
// yields the same code. Output is "CM-" plus up to six uppercase base-36
// characters.
func MakeBoothCode(base string) string {
	h := int32(5381)
	for _, r := range base {
		h = int32(int64(h<<5)+int64(h)) ^ r
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	code := strings.ToUpper(strconv.FormatInt(v, 36))
	if len(code) > 6 {
		code = code[:6]
	}
	return "CM-" + code
}
