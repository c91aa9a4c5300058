// Package calculator holds the pure seat arithmetic behind the simulator:
// coalition search, selection tallies and chart scaling.
package calculator

import (
	"sort"

	"github.com/mmynk/coalition/internal/models"
)

// FindCombinations returns every subset of parties with 1 to maxSize members
// whose combined seats reach threshold, ordered by ascending seats.
//
// Algorithm:
// - Depth-first over catalog indices; each branch only extends a partial
//   subset with parties after the last chosen index, so every subset is
//   produced exactly once
// - A partial subset that reaches threshold is emitted immediately, and the
//   search still extends it while it has fewer than maxSize members
// - Results are stable-sorted by seats, so ties keep enumeration order
//
// A threshold <= 0 makes every non-empty subset qualify. No subset
// qualifying is a normal outcome and yields an empty result.
func FindCombinations(parties []models.Party, threshold, maxSize int) []models.Combination {
	return search(parties, threshold, maxSize, nil)
}

// FindCombinationsPruned is FindCombinations with a branch-and-bound cutoff:
// a partial subset is not extended once its seats plus the largest seat
// counts still available after its last index cannot reach threshold.
// The result is identical to FindCombinations, content and order.
func FindCombinationsPruned(parties []models.Party, threshold, maxSize int) []models.Combination {
	return search(parties, threshold, maxSize, newBound(parties, maxSize))
}

func search(parties []models.Party, threshold, maxSize int, b *bound) []models.Combination {
	if maxSize < 1 || len(parties) == 0 {
		return nil
	}

	var found []models.Combination
	current := make([]int, 0, maxSize)

	var walk func(start, seats int)
	walk = func(start, seats int) {
		if len(current) > 0 && seats >= threshold {
			found = append(found, models.Combination{
				PartyIDs: append([]int(nil), current...),
				Seats:    seats,
			})
		}
		if len(current) == maxSize {
			return
		}
		if b != nil && seats+b.best(start, maxSize-len(current)) < threshold {
			return
		}
		for i := start; i < len(parties); i++ {
			current = append(current, parties[i].ID)
			walk(i+1, seats+parties[i].Seats)
			current = current[:len(current)-1]
		}
	}
	walk(0, 0)

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Seats < found[j].Seats
	})
	return found
}

// bound answers "how many seats can at most slots more parties, all taken
// from index start onwards, add?".
type bound struct {
	// prefix[start][k] is the sum of the k largest seat counts in parties[start:].
	prefix [][]int
}

func newBound(parties []models.Party, maxSize int) *bound {
	if maxSize < 1 {
		return nil
	}
	b := &bound{prefix: make([][]int, len(parties)+1)}
	for start := range b.prefix {
		seats := make([]int, 0, len(parties)-start)
		for _, p := range parties[start:] {
			seats = append(seats, p.Seats)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(seats)))

		limit := min(maxSize, len(seats))
		sums := make([]int, limit+1)
		for k := 1; k <= limit; k++ {
			sums[k] = sums[k-1] + seats[k-1]
		}
		b.prefix[start] = sums
	}
	return b
}

func (b *bound) best(start, slots int) int {
	sums := b.prefix[start]
	if slots >= len(sums) {
		slots = len(sums) - 1
	}
	return sums[slots]
}
