package card

import "maps"

// CardCounter 记牌器，记录尚未打出的各点数牌的数量
type CardCounter struct {
	remainingCards map[Rank]int
}

// NewCardCounter 创建一个按整副牌初始化的记牌器
func NewCardCounter() *CardCounter {
	cc := &CardCounter{
		remainingCards: make(map[Rank]int),
	}
	cc.Reset()
	return cc
}

// Reset 恢复为整副牌（54 张）
func (cc *CardCounter) Reset() {
	for rank := Rank3; rank <= Rank2; rank++ {
		cc.remainingCards[rank] = 4
	}
	cc.remainingCards[RankBlackJoker] = 1
	cc.remainingCards[RankRedJoker] = 1
}

// Update 扣除已打出的牌
func (cc *CardCounter) Update(played []Card) {
	for _, c := range played {
		if cc.remainingCards[c.Rank] > 0 {
			cc.remainingCards[c.Rank]--
		}
	}
}

// Remaining 返回某点数剩余的张数
func (cc *CardCounter) Remaining(rank Rank) int {
	return cc.remainingCards[rank]
}

// Snapshot 返回剩余牌数的副本
func (cc *CardCounter) Snapshot() map[Rank]int {
	return maps.Clone(cc.remainingCards)
}

// Restore 用快照覆盖当前计数
func (cc *CardCounter) Restore(remaining map[Rank]int) {
	cc.Reset()
	maps.Copy(cc.remainingCards, remaining)
}
