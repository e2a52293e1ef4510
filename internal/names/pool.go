package names

// Pool is an ordered list of candidate strings with a presence chance.
// Chance is ignored for static pools, which always draw. An empty pool
// never draws.
type Pool struct {
	Names     []string `json:"names"`
	Chance    uint8    `json:"chance"` // 0–100
	Exclusive bool     `json:"exclusive"`
	Static    bool     `json:"static"`
}

// Size returns the number of candidates.
func (p *Pool) Size() int {
	return len(p.Names)
}

// IsEmpty reports whether the pool has no candidates.
func (p *Pool) IsEmpty() bool {
	return len(p.Names) == 0
}

// NameAt returns the candidate at index i, or "" when out of range.
func (p *Pool) NameAt(i int) string {
	if i < 0 || i >= len(p.Names) {
		return ""
	}
	return p.Names[i]
}

// NoCeiling lets Draw pick from the whole pool.
const NoCeiling = -1

// Draw rolls the presence chance and picks a candidate uniformly from
// indices [0, min(ceiling, size-1)]; a negative ceiling means the whole pool.
// It returns the candidate and its index, or ("", 0) when nothing is drawn.
func (p *Pool) Draw(rng Random, ceiling int) (string, int) {
	if p.IsEmpty() {
		return "", 0
	}
	if !p.Static && !rng.Probability(p.Chance) {
		return "", 0
	}

	last := len(p.Names) - 1
	if ceiling >= 0 && ceiling < last {
		last = ceiling
	}
	i := rng.Uniform(0, last)
	return p.Names[i], i
}

// DrawValue is Draw over the whole pool without the index.
func (p *Pool) DrawValue(rng Random) string {
	v, _ := p.Draw(rng, NoCeiling)
	return v
}
