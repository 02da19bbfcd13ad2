package food

import "sort"

// Portion is one entry in a Portions map: a food and how many units of it.
type Portion struct {
	Food  *Food
	Count int
}

// Portions is a sparse multiset of foods keyed by canonical name. It backs
// both the stomach (units consumed and active) and availability (units left
// to eat). Only positive counts are stored: a zero count and an absent entry
// are the same thing, and all lookups treat them identically.
type Portions map[Key]Portion

// Count returns the stored count for a food, 0 when absent.
func (p Portions) Count(f *Food) int {
	return p[f.Key()].Count
}

// Add increments a food's count by n, creating the entry if needed.
// Non-positive n is ignored.
func (p Portions) Add(f *Food, n int) {
	if n <= 0 {
		return
	}
	key := f.Key()
	entry := p[key]
	p[key] = Portion{Food: f, Count: entry.Count + n}
}

// Remove decrements a food's count by n, deleting the entry when it reaches
// zero so absence and zero stay equivalent.
func (p Portions) Remove(f *Food, n int) {
	key := f.Key()
	entry, ok := p[key]
	if !ok {
		return
	}
	entry.Count -= n
	if entry.Count <= 0 {
		delete(p, key)
		return
	}
	p[key] = entry
}

// Clone returns an independent shallow copy. Food values are shared; they are
// immutable so sharing is safe.
func (p Portions) Clone() Portions {
	clone := make(Portions, len(p))
	for key, entry := range p {
		clone[key] = entry
	}
	return clone
}

// TotalCalories sums calories*count over all entries.
func (p Portions) TotalCalories() int {
	total := 0
	for _, entry := range p {
		total += entry.Food.Calories * entry.Count
	}
	return total
}

// Foods returns the foods with positive counts, sorted by canonical name so
// iteration order is deterministic.
func (p Portions) Foods() []*Food {
	foods := make([]*Food, 0, len(p))
	for _, entry := range p {
		foods = append(foods, entry.Food)
	}
	sort.Slice(foods, func(i, j int) bool {
		return foods[i].Key() < foods[j].Key()
	})
	return foods
}
