package costfunc

import "unicode"

const (
	approximateExact    = 5.0
	approximateSimilar  = 3.0
	approximateMismatch = -3.0
)

// approximateGroups lists runes that sound or look alike.
var approximateGroups = []string{"dt", "gj", "lr", "mn", "bpv", "aeiou", ",."}

// groupOf maps a lowercase rune to the bitmask of groups it belongs to.
var groupOf = func() map[rune]uint32 {
	m := make(map[rune]uint32)
	for g, members := range approximateGroups {
		for _, r := range members {
			m[r] |= 1 << g
		}
	}
	return m
}()

// Approximate scores runes case-insensitively: +5 for an exact match,
// +3 when both runes share a phonetic group (e.g. "d" and "t"), -3 otherwise.
type Approximate struct{}

// Cost implements CostFunction.
func (Approximate) Cost(a []rune, i int, b []rune, j int) float64 {
	x, y := unicode.ToLower(a[i]), unicode.ToLower(b[j])
	if x == y {
		return approximateExact
	}
	if groupOf[x]&groupOf[y] != 0 {
		return approximateSimilar
	}
	return approximateMismatch
}

// MaxCost implements CostFunction.
func (Approximate) MaxCost() float64 {
	return approximateExact
}
