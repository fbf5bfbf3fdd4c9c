package baseball

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// PlanCache memoises minimax-partition results across guessers.
//
// The candidate pool is a pure function of the digit count and the guess/outcome
// history, so the searched guess is too. Sharing a cache between concurrent games
// is safe: the underlying LRU is synchronised and entries are immutable values.
type PlanCache struct {
	entries *lru.Cache[string, Code]
}

// NewPlanCache creates a cache holding up to size plans.
func NewPlanCache(size int) (*PlanCache, error) {
	c, err := lru.New[string, Code](size)
	if err != nil {
		return nil, err
	}
	return &PlanCache{entries: c}, nil
}

// Len reports the number of cached plans. A nil cache is empty.
func (p *PlanCache) Len() int {
	if p == nil {
		return 0
	}
	return p.entries.Len()
}

func (p *PlanCache) get(key string) (Code, bool) {
	if p == nil {
		return Code{}, false
	}
	return p.entries.Get(key)
}

func (p *PlanCache) put(key string, c Code) {
	if p == nil {
		return
	}
	p.entries.Add(key, c)
}

// planKey fingerprints a game position, e.g. "4|1234=0S2B|5610=1S0B".
func planKey(digits int, history []Record) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(digits))
	for _, r := range history {
		b.WriteByte('|')
		b.WriteString(r.Guess.String())
		b.WriteByte('=')
		b.WriteString(r.Outcome.String())
	}
	return b.String()
}
