package card

import (
	"fmt"
	"math/rand/v2"
)

const (
	DeckSize    = 54
	HandSize    = 17
	ReserveSize = 3
	PlayerCount = 3
)

// Deck 定义一副牌，由牌桌持有，不存在全局实例
type Deck []Card

func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for s := Diamond; s <= Spade; s++ {
		for r := Rank3; r <= Rank2; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	deck = append(deck,
		Card{Suit: Joker, Rank: RankBlackJoker},
		Card{Suit: Joker, Rank: RankRedJoker},
	)
	return deck
}

// Shuffle 洗牌，rng 为 nil 时使用全局随机源
func (d Deck) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		d[i], d[j] = d[j], d[i]
	}
	if rng == nil {
		rand.Shuffle(len(d), swap)
		return
	}
	rng.Shuffle(len(d), swap)
}

// Deal 发牌：三家各 17 张，剩余 3 张为底牌，均已升序排序
func (d Deck) Deal() (hands [PlayerCount][]Card, reserve []Card, err error) {
	if len(d) != DeckSize {
		return hands, nil, fmt.Errorf("牌数不正确: %d", len(d))
	}

	for i := range hands {
		hands[i] = make([]Card, 0, HandSize+ReserveSize)
	}
	// 轮流发牌
	for i := range HandSize * PlayerCount {
		seat := i % PlayerCount
		hands[seat] = append(hands[seat], d[i])
	}
	for i := range hands {
		Sort(hands[i])
	}

	reserve = Sorted(d[HandSize*PlayerCount:])
	return hands, reserve, nil
}
