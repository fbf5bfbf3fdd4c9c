package baseball

import "sync"

// The full code space for each digit count is built once and shared read-only.
var (
	spaceOnce [MaxDigits + 1]sync.Once
	spaces    [MaxDigits + 1][]Code
)

// Space returns every valid code of length n in lexicographic order.
// The returned slice is shared; callers must not modify it.
func Space(n int) []Code {
	if n < MinDigits || n > MaxDigits {
		return nil
	}
	spaceOnce[n].Do(func() { spaces[n] = enumerate(n) })
	return spaces[n]
}

// SpaceSize is 9 * 9!/(10-n)!: nine choices for the leading digit, then
// permutations of the remaining nine.
func SpaceSize(n int) int {
	if n < MinDigits || n > MaxDigits {
		return 0
	}
	size := 9
	for k := 0; k < n-1; k++ {
		size *= 9 - k
	}
	return size
}

func enumerate(n int) []Code {
	out := make([]Code, 0, SpaceSize(n))
	digits := make([]uint8, 0, n)
	var used uint16
	var walk func()
	walk = func() {
		if len(digits) == n {
			out = append(out, codeOf(digits))
			return
		}
		for d := uint8(0); d <= 9; d++ {
			if used&(1<<d) != 0 || (len(digits) == 0 && d == 0) {
				continue
			}
			used |= 1 << d
			digits = append(digits, d)
			walk()
			digits = digits[:len(digits)-1]
			used &^= 1 << d
		}
	}
	walk()
	return out
}
