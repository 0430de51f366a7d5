package card

import (
	"fmt"
	"slices"
	"strings"
)

// rocketInput 王炸的输入写法
const rocketInput = "JOKER"

// findRocketInHand 查找手牌中的王炸
func findRocketInHand(hand []Card) ([]Card, bool) {
	var black, red *Card
	for i := range hand {
		if hand[i].Rank == RankBlackJoker {
			black = &hand[i]
		}
		if hand[i].Rank == RankRedJoker {
			red = &hand[i]
		}
	}
	if black != nil && red != nil {
		return []Card{*black, *red}, true
	}
	return nil, false
}

// normalizeInput 统一大小写，并把 10 替换为 T
func normalizeInput(input string) string {
	clean := strings.ToUpper(strings.TrimSpace(input))
	clean = strings.ReplaceAll(clean, " ", "")
	return strings.ReplaceAll(clean, "10", "T")
}

// parseInputRanks 解析输入字符串为 Rank 计数
func parseInputRanks(input string) (map[Rank]int, error) {
	inputRanks := make(map[Rank]int)
	for _, char := range normalizeInput(input) {
		rank, err := RankFromChar(char)
		if err != nil {
			return nil, err
		}
		inputRanks[rank]++
	}
	return inputRanks, nil
}

// countHandRanks 统计手牌中各 Rank 的数量
func countHandRanks(hand []Card) map[Rank]int {
	counts := make(map[Rank]int)
	for _, c := range hand {
		counts[c.Rank]++
	}
	return counts
}

// extractCards 从手牌中提取指定数量的指定 Rank 的牌，优先取花色大的
func extractCards(handCopy []Card, inputRanks map[Rank]int) []Card {
	var result []Card
	for rank, count := range inputRanks {
		found := 0
		for i := len(handCopy) - 1; i >= 0 && found < count; i-- {
			if handCopy[i].Rank == rank {
				result = append(result, handCopy[i])
				handCopy = slices.Delete(handCopy, i, i+1)
				found++
			}
		}
	}
	Sort(result)
	return result
}

// FindCardsInHand 从手牌中根据输入字符串找出对应的牌
func FindCardsInHand(hand []Card, input string) ([]Card, error) {
	if normalizeInput(input) == rocketInput {
		if cards, ok := findRocketInHand(hand); ok {
			return cards, nil
		}
		return nil, fmt.Errorf("你没有王炸")
	}

	inputRanks, err := parseInputRanks(input)
	if err != nil {
		return nil, err
	}
	if len(inputRanks) == 0 {
		return nil, fmt.Errorf("不能出空牌")
	}

	// 检查手牌是否足够
	handCounts := countHandRanks(hand)
	for r, count := range inputRanks {
		if handCounts[r] < count {
			return nil, fmt.Errorf("你的 %s 不够", r.String())
		}
	}

	handCopy := Sorted(hand)
	return extractCards(handCopy, inputRanks), nil
}

// SelectByIndex 按手牌下标选牌，下标不能越界或重复，结果排序
func SelectByIndex(hand []Card, indices []int) ([]Card, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("不能出空牌")
	}

	seen := make(map[int]bool, len(indices))
	result := make([]Card, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(hand) {
			return nil, fmt.Errorf("下标 %d 超出手牌范围", i)
		}
		if seen[i] {
			return nil, fmt.Errorf("下标 %d 重复", i)
		}
		seen[i] = true
		result = append(result, hand[i])
	}
	Sort(result)
	return result, nil
}

// ParseCards 把点数字符串解析为具体的牌，保持输入顺序。
// 同一点数依次分配方块、梅花、红心、黑桃；大小王各只有一张。
func ParseCards(input string) ([]Card, error) {
	clean := normalizeInput(input)
	if clean == rocketInput {
		return []Card{{Suit: Joker, Rank: RankBlackJoker}, {Suit: Joker, Rank: RankRedJoker}}, nil
	}

	seen := make(map[Rank]int)
	cards := make([]Card, 0, len(clean))
	for _, char := range clean {
		rank, err := RankFromChar(char)
		if err != nil {
			return nil, err
		}
		n := seen[rank]
		seen[rank]++

		if rank.IsJokerRank() {
			if n > 0 {
				return nil, fmt.Errorf("%s 只有一张", rank.String())
			}
			cards = append(cards, Card{Suit: Joker, Rank: rank})
			continue
		}
		if n >= 4 {
			return nil, fmt.Errorf("%s 最多四张", rank.String())
		}
		cards = append(cards, Card{Suit: Diamond + Suit(n), Rank: rank})
	}
	return cards, nil
}

// ContainsAll 手牌中是否包含 cards 中的每一张牌
func ContainsAll(hand, cards []Card) bool {
	held := make(map[Card]int, len(hand))
	for _, c := range hand {
		held[c]++
	}
	for _, c := range cards {
		if held[c] == 0 {
			return false
		}
		held[c]--
	}
	return true
}

// RemoveCards 从手牌中移除指定的牌，返回新切片
func RemoveCards(hand, toRemove []Card) []Card {
	result := make([]Card, 0, len(hand))
	for _, hCard := range hand {
		if !slices.Contains(toRemove, hCard) {
			result = append(result, hCard)
		}
	}
	return result
}

// FormatCards 以空格分隔输出
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
