package game

import (
	"fmt"
	"sort"
)

// HandCategory ranks hand types from best (RoyalFlush) to worst (HighCard).
type HandCategory int

const (
	RoyalFlush HandCategory = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

func (c HandCategory) String() string {
	return [...]string{
		"Royal Flush",
		"Straight Flush",
		"Four of a Kind",
		"Full House",
		"Flush",
		"Straight",
		"Three of a Kind",
		"Two Pair",
		"One Pair",
		"High Card",
	}[c]
}

// HandValue is the evaluation of a player's best 5-card hand.
type HandValue struct {
	Category HandCategory
	Score    int
	BestHand []Card
}

// EvaluateHand scores the best 5-card hand out of the given cards (hole
// cards plus board, minimum 5). It enumerates every 5-card subset and keeps
// the maximum score. Scores are directly comparable across categories.
func EvaluateHand(cards []Card) (HandValue, error) {
	if len(cards) < 5 {
		return HandValue{}, fmt.Errorf("need at least 5 cards to evaluate, got %d", len(cards))
	}

	var best HandValue
	subset := make([]Card, 5)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == 5 {
			cat, score := score5(subset)
			if best.BestHand == nil || score > best.Score {
				hand := make([]Card, 5)
				copy(hand, subset)
				best = HandValue{Category: cat, Score: score, BestHand: hand}
			}
			return
		}
		for i := start; i <= len(cards)-(5-depth); i++ {
			subset[depth] = cards[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
	return best, nil
}

// score5 categorizes exactly 5 cards and folds the category plus its five
// tiebreak ranks into a single comparable integer: base (11 - category
// index), then score = score*15 + rank for each rank in significance order.
func score5(hand []Card) (HandCategory, int) {
	ranks := make([]int, 5)
	for i, c := range hand {
		ranks[i] = int(c.Rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	flush := true
	for _, c := range hand[1:] {
		if c.Suit != hand[0].Suit {
			flush = false
			break
		}
	}

	straightHigh := straightHighCard(ranks)

	var category HandCategory
	var tiebreaks []int

	switch {
	case flush && straightHigh == int(Ace):
		category = RoyalFlush
		tiebreaks = straightTiebreaks(straightHigh)
	case flush && straightHigh > 0:
		category = StraightFlush
		tiebreaks = straightTiebreaks(straightHigh)
	case flush:
		category = Flush
		tiebreaks = ranks
	case straightHigh > 0:
		category = Straight
		tiebreaks = straightTiebreaks(straightHigh)
	default:
		category, tiebreaks = categorizeGroups(ranks)
	}

	score := 11 - int(category)
	for _, r := range tiebreaks {
		score = score*15 + r
	}
	return category, score
}

// straightHighCard returns the high card of a straight formed by the five
// descending ranks, or 0 if they are not a straight. The wheel (A-2-3-4-5)
// counts as a 5-high straight, the lowest one.
func straightHighCard(ranks []int) int {
	run := true
	for i := 1; i < 5; i++ {
		if ranks[i] != ranks[0]-i {
			run = false
			break
		}
	}
	if run {
		return ranks[0]
	}
	if ranks[0] == int(Ace) && ranks[1] == 5 && ranks[2] == 4 && ranks[3] == 3 && ranks[4] == 2 {
		return 5
	}
	return 0
}

// straightTiebreaks builds the five tiebreak ranks for a straight, treating
// the wheel's ace as a one.
func straightTiebreaks(high int) []int {
	out := make([]int, 5)
	for i := range out {
		out[i] = high - i
	}
	return out
}

// categorizeGroups handles the paired categories. Tiebreak ranks are the
// five card ranks ordered by group size first, then rank, so the primary
// rank always outweighs every kicker.
func categorizeGroups(ranks []int) (HandCategory, []int) {
	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}

	ordered := make([]int, len(ranks))
	copy(ordered, ranks)
	sort.Slice(ordered, func(i, j int) bool {
		if counts[ordered[i]] != counts[ordered[j]] {
			return counts[ordered[i]] > counts[ordered[j]]
		}
		return ordered[i] > ordered[j]
	})

	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	switch {
	case sizes[0] == 4:
		return FourOfAKind, ordered
	case sizes[0] == 3 && sizes[1] == 2:
		return FullHouse, ordered
	case sizes[0] == 3:
		return ThreeOfAKind, ordered
	case sizes[0] == 2 && sizes[1] == 2:
		return TwoPair, ordered
	case sizes[0] == 2:
		return OnePair, ordered
	default:
		return HighCard, ordered
	}
}
