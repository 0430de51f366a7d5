package table

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/palemoky/landlord-rules/internal/card"
	"github.com/palemoky/landlord-rules/internal/logger"
	"github.com/palemoky/landlord-rules/internal/rule"
	"github.com/palemoky/landlord-rules/internal/storage"
)

// ToTableData 将 Table 转换为可序列化的 TableData
func (t *Table) ToTableData() *storage.TableData {
	data := &storage.TableData{
		ID:        t.ID,
		State:     int(t.state),
		Hands:     make([][]storage.CardData, len(t.hands)),
		Reserve:   toCardData(t.reserve),
		Landlord:  t.landlord,
		LastSeat:  t.lastSeat,
		Passes:    t.passes,
		Winner:    t.winner,
		Remaining: make(map[int]int),
		CreatedAt: t.CreatedAt.Unix(),
	}

	for i, h := range t.hands {
		data.Hands[i] = toCardData(h)
	}
	if last, ok := t.validator.State().Last(); ok {
		data.LastPlay = toCardData(last.Cards())
	}
	for rank, n := range t.counter.Snapshot() {
		data.Remaining[int(rank)] = n
	}
	return data
}

// FromTableData 从快照重建牌桌，上一手牌重新经过牌型识别
func FromTableData(data *storage.TableData, rng *rand.Rand) (*Table, error) {
	if data == nil {
		return nil, fmt.Errorf("牌桌数据为空")
	}
	if len(data.Hands) != card.PlayerCount {
		return nil, fmt.Errorf("牌桌 %s 手牌数据不完整: %d", data.ID, len(data.Hands))
	}
	if err := checkTableData(data); err != nil {
		return nil, fmt.Errorf("牌桌 %s 数据无效: %w", data.ID, err)
	}

	t := New(data.ID, rng)
	t.CreatedAt = time.Unix(data.CreatedAt, 0)
	t.state = State(data.State)
	t.landlord = data.Landlord
	t.lastSeat = data.LastSeat
	t.passes = data.Passes
	t.winner = data.Winner

	for i, h := range data.Hands {
		cards, err := fromCardData(h)
		if err != nil {
			return nil, err
		}
		t.hands[i] = cards
	}
	reserve, err := fromCardData(data.Reserve)
	if err != nil {
		return nil, err
	}
	t.reserve = reserve

	if len(data.LastPlay) > 0 {
		cards, err := fromCardData(data.LastPlay)
		if err != nil {
			return nil, err
		}
		last, err := rule.NewPlay(cards)
		if err != nil {
			return nil, fmt.Errorf("恢复上一手牌失败: %w", err)
		}
		t.validator.Restore(rule.BeatenBy(last))
	}

	remaining := make(map[card.Rank]int, len(data.Remaining))
	for rank, n := range data.Remaining {
		remaining[card.Rank(rank)] = n
	}
	t.counter.Restore(remaining)

	logger.WithTable(t.ID).Debug("table restored")
	return t, nil
}

// checkTableData 检查状态、座位和不出次数是否在合法范围内
func checkTableData(data *storage.TableData) error {
	if State(data.State) < StateWaiting || State(data.State) > StateEnded {
		return fmt.Errorf("状态 %d", data.State)
	}
	seats := []struct {
		name string
		seat int
	}{
		{"landlord", data.Landlord},
		{"last_seat", data.LastSeat},
		{"winner", data.Winner},
	}
	for _, s := range seats {
		if s.seat != noSeat && checkSeat(s.seat) != nil {
			return fmt.Errorf("%s 座位 %d", s.name, s.seat)
		}
	}
	if data.Passes < 0 || data.Passes >= card.PlayerCount-1 {
		return fmt.Errorf("不出次数 %d", data.Passes)
	}
	return nil
}

func toCardData(cards []card.Card) []storage.CardData {
	out := make([]storage.CardData, len(cards))
	for i, c := range cards {
		out[i] = storage.CardData{Suit: int(c.Suit), Rank: int(c.Rank)}
	}
	return out
}

func fromCardData(data []storage.CardData) ([]card.Card, error) {
	out := make([]card.Card, len(data))
	for i, d := range data {
		c := card.New(card.Suit(d.Suit), card.Rank(d.Rank))
		if !c.Rank.Valid() || c.Suit < card.Diamond || c.Suit > card.Joker {
			return nil, fmt.Errorf("无效的牌: suit=%d rank=%d", d.Suit, d.Rank)
		}
		out[i] = c
	}
	return out, nil
}
