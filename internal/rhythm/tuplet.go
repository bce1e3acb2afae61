package rhythm

// TupletRatio is the (actual, normal) pair a tuplet bracket renders,
// looked up by the normalized subdivision count N'.
type TupletRatio struct {
	Actual int
	Normal int
}

// tupletTable maps N' to its ratio. N' values that are powers of two (up
// to 128) need no wrapper and are absent from this table.
var tupletTable = map[int]TupletRatio{
	3: {3, 2},
	5: {5, 4},
	6: {6, 4},
	7: {7, 4},
}

// rangeTable covers the 9-15, 16-32, 33-64, 65-128 bands, each sharing one
// "normal" denominator.
var rangeTable = []struct {
	lo, hi, normal int
}{
	{9, 15, 8},
	{16, 32, 16},
	{33, 64, 32},
	{65, 128, 64},
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// TupletFor returns the ratio for normalized subdivision count nPrime, and
// false if nPrime is a power of two (no tuplet needed) or out of the
// supported [1,128] range.
func TupletFor(nPrime int) (TupletRatio, bool) {
	if nPrime <= 0 || nPrime > 128 {
		return TupletRatio{}, false
	}
	if isPowerOfTwo(nPrime) {
		return TupletRatio{}, false
	}
	if r, ok := tupletTable[nPrime]; ok {
		return r, true
	}
	for _, band := range rangeTable {
		if nPrime >= band.lo && nPrime <= band.hi {
			return TupletRatio{Actual: nPrime, Normal: band.normal}, true
		}
	}
	return TupletRatio{}, false
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// GCDAll returns the greatest common divisor of nums, or 1 for an empty or
// all-zero slice.
func GCDAll(nums []int) int {
	g := 0
	for _, n := range nums {
		g = gcd(g, n)
	}
	if g == 0 {
		return 1
	}
	return g
}

// ReduceSlots divides every slot count by their GCD and returns the
// reduced counts plus their sum N'.
func ReduceSlots(counts []int) (reduced []int, nPrime int) {
	g := GCDAll(counts)
	reduced = make([]int, len(counts))
	for i, c := range counts {
		reduced[i] = c / g
		nPrime += reduced[i]
	}
	return reduced, nPrime
}
