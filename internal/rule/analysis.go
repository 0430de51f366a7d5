package rule

import "github.com/palemoky/landlord-rules/internal/card"

// rankGroup 同一点数的牌，按花色升序
type rankGroup struct {
	rank  card.Rank
	cards []card.Card
}

func (g rankGroup) size() int {
	return len(g.cards)
}

// top 组内最大的一张牌
func (g rankGroup) top() card.Card {
	return g.cards[len(g.cards)-1]
}

// hand 待识别的一手牌：排序后的私有副本以及按点数的分组
type hand struct {
	cards  []card.Card
	groups []rankGroup
}

// newHand 复制并排序，不修改调用方的切片
func newHand(cards []card.Card) hand {
	sorted := card.Sorted(cards)
	return hand{cards: sorted, groups: groupByRank(sorted)}
}

func (h hand) size() int {
	return len(h.cards)
}

// highest 整手牌中最大的一张
func (h hand) highest() card.Card {
	return h.cards[len(h.cards)-1]
}

// groupByRank 对已排序的牌按点数分组，分组按点数升序
func groupByRank(sorted []card.Card) []rankGroup {
	var groups []rankGroup
	for i, c := range sorted {
		if i == 0 || c.Rank != sorted[i-1].Rank {
			groups = append(groups, rankGroup{rank: c.Rank})
		}
		last := &groups[len(groups)-1]
		last.cards = append(last.cards, c)
	}
	return groups
}

// uniformGroups 每个分组是否都恰好有 n 张
func uniformGroups(groups []rankGroup, n int) bool {
	for _, g := range groups {
		if g.size() != n {
			return false
		}
	}
	return len(groups) > 0
}

// findGroup 返回第一个恰好有 n 张的分组
func findGroup(groups []rankGroup, n int) (rankGroup, bool) {
	for _, g := range groups {
		if g.size() == n {
			return g, true
		}
	}
	return rankGroup{}, false
}

// countGroups 恰好有 n 张的分组个数
func countGroups(groups []rankGroup, n int) int {
	count := 0
	for _, g := range groups {
		if g.size() == n {
			count++
		}
	}
	return count
}

// isChain 检查分组点数是否逐一连续，并且不能包含 2 和大小王
func isChain(groups []rankGroup) bool {
	if len(groups) == 0 {
		return false
	}
	for i, g := range groups {
		if !g.rank.Chainable() {
			return false
		}
		if i > 0 && groups[i-1].rank.Strength()+1 != g.rank.Strength() {
			return false
		}
	}
	return true
}
