package card

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
)

// Suit 定义花色，数值越大在同点数比较时越大
type Suit int

// Rank 定义点数
type Rank int

// CardColor 定义牌的颜色
type CardColor int

const (
	Black CardColor = iota
	Red
)

const (
	Diamond Suit = iota // 方块
	Club                // 梅花
	Heart               // 红心
	Spade               // 黑桃
	Joker               // 王牌
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Diamond: "♦",
	Club:    "♣",
	Heart:   "♥",
	Spade:   "♠",
	Joker:   "",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

const (
	Rank3 Rank = iota + 3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
	Rank2
	RankBlackJoker // 小王
	RankRedJoker   // 大王
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank3:          "3",
	Rank4:          "4",
	Rank5:          "5",
	Rank6:          "6",
	Rank7:          "7",
	Rank8:          "8",
	Rank9:          "9",
	Rank10:         "10",
	RankJ:          "J",
	RankQ:          "Q",
	RankK:          "K",
	RankA:          "A",
	Rank2:          "2",
	RankBlackJoker: "B",
	RankRedJoker:   "R",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Strength 返回点数强度，3 为 1，大王为 15
func (r Rank) Strength() int {
	return int(r) - int(Rank3) + 1
}

// Chainable 点数能否出现在顺子、连对、飞机中（2 和大小王不能）
func (r Rank) Chainable() bool {
	return r.Strength() < Rank2.Strength()
}

// Valid 是否为合法点数
func (r Rank) Valid() bool {
	return r >= Rank3 && r <= RankRedJoker
}

// IsJokerRank 是否为大小王
func (r Rank) IsJokerRank() bool {
	return r == RankBlackJoker || r == RankRedJoker
}

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[rune]Rank{
	'3': Rank3,
	'4': Rank4,
	'5': Rank5,
	'6': Rank6,
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'T': Rank10,
	'J': RankJ,
	'Q': RankQ,
	'K': RankK,
	'A': RankA,
	'2': Rank2,
	'B': RankBlackJoker,
	'R': RankRedJoker,
}

func RankFromChar(char rune) (Rank, error) {
	if rank, ok := charToRank[char]; ok {
		return rank, nil
	}
	return -1, fmt.Errorf("无法识别的点数: %c", char)
}

// Card 定义一张牌，花色和点数都相同才是同一张牌
type Card struct {
	Suit Suit
	Rank Rank
}

// New 创建一张牌
func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// IsJoker 是否为王牌
func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

// Color 牌的颜色由花色决定，大王为红色
func (c Card) Color() CardColor {
	switch {
	case c.Suit == Heart || c.Suit == Diamond:
		return Red
	case c.Rank == RankRedJoker:
		return Red
	default:
		return Black
	}
}

func (c Card) String() string {
	if c.IsJoker() {
		if c.Rank == RankRedJoker {
			return "大王"
		}
		return "小王"
	}
	return c.Suit.String() + c.Rank.String()
}

// Compare 先比较点数强度，再比较花色
func (c Card) Compare(o Card) int {
	if n := cmp.Compare(c.Rank.Strength(), o.Rank.Strength()); n != 0 {
		return n
	}
	return cmp.Compare(c.Suit, o.Suit)
}

// Less 按牌序比较
func (c Card) Less(o Card) bool {
	return c.Compare(o) < 0
}

// Sort 原地升序排序
func Sort(cards []Card) {
	slices.SortFunc(cards, Card.Compare)
}

// Sorted 返回升序排序后的副本，不修改入参
func Sorted(cards []Card) []Card {
	sorted := slices.Clone(cards)
	Sort(sorted)
	return sorted
}
