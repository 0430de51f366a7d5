package rule

import (
	"github.com/palemoky/landlord-rules/internal/card"
)

const (
	minSoloChain = 5
	maxSoloChain = 12
	minMultiSeq  = 6  // 连对、飞机的最少张数
	maxMultiSeq  = 20 // 连对、飞机的最多张数
)

// Match 识别结果：牌型以及决定大小的主牌
type Match struct {
	Kind  ShapeKind
	Prime card.Card
}

// detector 识别一种牌型，命中时返回主牌
type detector func(h hand) (card.Card, bool)

// detectors 按优先级排列，识别时返回第一个命中的牌型
var detectors = []struct {
	kind   ShapeKind
	detect detector
}{
	{Solo, detectSolo},
	{Pair, detectPair},
	{Trio, detectTrio},
	{Bomb, detectBomb},
	{Rocket, detectRocket},
	{SoloChain, detectSoloChain},
	{PairSisters, detectPairSisters},
	{TrioChain, detectTrioChain},
	{TrioKicksSolo, detectTrioKicksSolo},
	{TrioKicksPair, detectTrioKicksPair},
	{AirplaneKicksSolo, detectAirplaneKicksSolo},
	{AirplaneKicksPair, detectAirplaneKicksPair},
	{FourKicksDualSolo, detectFourKicksDualSolo},
	{FourKicksDualPair, detectFourKicksDualPair},
}

// Classify 识别一手牌的牌型。
// 结果与牌的顺序无关，也不会修改入参；主牌取主体部分中最大的一张。
func Classify(cards []card.Card) (Match, bool) {
	if len(cards) == 0 {
		return Match{}, false
	}

	h := newHand(cards)
	for _, d := range detectors {
		if prime, ok := d.detect(h); ok {
			return Match{Kind: d.kind, Prime: prime}, true
		}
	}
	return Match{}, false
}

// Matches 只按指定牌型识别，不考虑优先级
func Matches(kind ShapeKind, cards []card.Card) (card.Card, bool) {
	if len(cards) == 0 {
		return card.Card{}, false
	}
	for _, d := range detectors {
		if d.kind == kind {
			return d.detect(newHand(cards))
		}
	}
	return card.Card{}, false
}

func detectSolo(h hand) (card.Card, bool) {
	if h.size() != 1 {
		return card.Card{}, false
	}
	return h.cards[0], true
}

// detectPair 大小王点数不同，双王不是对子
func detectPair(h hand) (card.Card, bool) {
	if h.size() != 2 || len(h.groups) != 1 || h.cards[0].IsJoker() {
		return card.Card{}, false
	}
	return h.highest(), true
}

func detectTrio(h hand) (card.Card, bool) {
	if h.size() != 3 || len(h.groups) != 1 {
		return card.Card{}, false
	}
	return h.highest(), true
}

func detectBomb(h hand) (card.Card, bool) {
	if h.size() != 4 || len(h.groups) != 1 {
		return card.Card{}, false
	}
	return h.highest(), true
}

func detectRocket(h hand) (card.Card, bool) {
	if h.size() != 2 || h.cards[0].Rank != card.RankBlackJoker || h.cards[1].Rank != card.RankRedJoker {
		return card.Card{}, false
	}
	return h.cards[1], true
}

func detectSoloChain(h hand) (card.Card, bool) {
	if h.size() < minSoloChain || h.size() > maxSoloChain {
		return card.Card{}, false
	}
	if !uniformGroups(h.groups, 1) || !isChain(h.groups) {
		return card.Card{}, false
	}
	return h.highest(), true
}

func detectPairSisters(h hand) (card.Card, bool) {
	if h.size() < minMultiSeq || h.size() > maxMultiSeq || h.size()%2 != 0 {
		return card.Card{}, false
	}
	if !uniformGroups(h.groups, 2) || !isChain(h.groups) {
		return card.Card{}, false
	}
	return h.highest(), true
}

func detectTrioChain(h hand) (card.Card, bool) {
	if h.size() < minMultiSeq || h.size() > maxMultiSeq || h.size()%3 != 0 {
		return card.Card{}, false
	}
	if !uniformGroups(h.groups, 3) || !isChain(h.groups) {
		return card.Card{}, false
	}
	return h.highest(), true
}

// detectTrioKicksSolo 3+1，两组点数不同
func detectTrioKicksSolo(h hand) (card.Card, bool) {
	if h.size() != 4 || len(h.groups) != 2 {
		return card.Card{}, false
	}
	trio, ok := findGroup(h.groups, 3)
	if !ok {
		return card.Card{}, false
	}
	return trio.top(), true
}

// detectTrioKicksPair 3+2
func detectTrioKicksPair(h hand) (card.Card, bool) {
	if h.size() != 5 || len(h.groups) != 2 {
		return card.Card{}, false
	}
	trio, ok := findGroup(h.groups, 3)
	if !ok || countGroups(h.groups, 2) != 1 {
		return card.Card{}, false
	}
	return trio.top(), true
}

// detectAirplaneKicksSolo 每个不少于三张的点数取三张进入主体，其余都是带牌；
// 带牌数 × 3 必须等于主体张数，且主体本身是飞机。
func detectAirplaneKicksSolo(h hand) (card.Card, bool) {
	if h.size() == 0 || h.size()%4 != 0 {
		return card.Card{}, false
	}

	var prime []card.Card
	kickers := 0
	for _, g := range h.groups {
		if g.size() >= 3 {
			// 取花色最大的三张，保证结果确定
			prime = append(prime, g.cards[g.size()-3:]...)
			kickers += g.size() - 3
			continue
		}
		kickers += g.size()
	}

	if kickers*3 != len(prime) {
		return card.Card{}, false
	}
	return detectTrioChain(newHand(prime))
}

// detectAirplaneKicksPair 只允许三张和对子两种分组
func detectAirplaneKicksPair(h hand) (card.Card, bool) {
	if h.size() == 0 || h.size()%5 != 0 {
		return card.Card{}, false
	}

	var prime []card.Card
	kickers := 0
	for _, g := range h.groups {
		switch g.size() {
		case 3:
			prime = append(prime, g.cards...)
		case 2:
			if _, ok := detectPair(hand{cards: g.cards, groups: []rankGroup{g}}); !ok {
				return card.Card{}, false
			}
			kickers += 2
		default:
			return card.Card{}, false
		}
	}

	if kickers*3 != len(prime)*2 {
		return card.Card{}, false
	}
	return detectTrioChain(newHand(prime))
}

// detectFourKicksDualSolo 四张加任意两张带牌
func detectFourKicksDualSolo(h hand) (card.Card, bool) {
	if h.size() != 6 {
		return card.Card{}, false
	}
	four, ok := findGroup(h.groups, 4)
	if !ok {
		return card.Card{}, false
	}
	return four.top(), true
}

// detectFourKicksDualPair 四张加两个不同点数的对子
func detectFourKicksDualPair(h hand) (card.Card, bool) {
	if h.size() != 8 || len(h.groups) != 3 {
		return card.Card{}, false
	}
	four, ok := findGroup(h.groups, 4)
	if !ok || countGroups(h.groups, 2) != 2 {
		return card.Card{}, false
	}
	return four.top(), true
}
