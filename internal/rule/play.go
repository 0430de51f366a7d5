package rule

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/palemoky/landlord-rules/internal/apperrors"
	"github.com/palemoky/landlord-rules/internal/card"
)

// Play 一次出牌，创建后不可修改
type Play struct {
	kind  ShapeKind
	prime card.Card
	cards []card.Card
}

// NewPlay 识别牌型并创建出牌，不匹配任何牌型时返回 ErrNoMatchingShape
func NewPlay(cards []card.Card) (Play, error) {
	m, ok := Classify(cards)
	if !ok {
		return Play{}, fmt.Errorf("%w: [%s]", apperrors.ErrNoMatchingShape, card.FormatCards(cards))
	}
	return Play{
		kind:  m.Kind,
		prime: m.Prime,
		cards: card.Sorted(cards),
	}, nil
}

func (p Play) Kind() ShapeKind {
	return p.kind
}

func (p Play) Prime() card.Card {
	return p.prime
}

func (p Play) Size() int {
	return len(p.cards)
}

// Cards 返回副本，调用方修改不影响 Play
func (p Play) Cards() []card.Card {
	return slices.Clone(p.cards)
}

// IsZero 是否为零值（没有出牌）
func (p Play) IsZero() bool {
	return p.kind == Invalid
}

func (p Play) String() string {
	if p.IsZero() {
		return "无"
	}
	return fmt.Sprintf("%s [%s]", p.kind, card.FormatCards(p.cards))
}

// Compare 比较两手同牌型的主牌点数，牌型不同属于调用错误
func Compare(a, b Play) (int, error) {
	if a.kind != b.kind {
		return 0, fmt.Errorf("%w: %s vs %s", apperrors.ErrTypeMismatch, a.kind, b.kind)
	}
	return cmp.Compare(a.prime.Rank.Strength(), b.prime.Rank.Strength()), nil
}

// CanBeat 判断 next 是否能大过 last
func CanBeat(next, last Play) bool {
	if last.IsZero() {
		return !next.IsZero()
	}

	// 王炸最大
	if next.kind == Rocket {
		return true
	}

	// 炸弹可以大过任何非炸弹和非王炸的牌，炸弹之间比点数
	if next.kind == Bomb && last.kind != Rocket {
		if last.kind != Bomb {
			return true
		}
		return next.prime.Rank.Strength() > last.prime.Rank.Strength()
	}

	// 其余情况牌型和张数必须一致
	if next.kind != last.kind || next.Size() != last.Size() {
		return false
	}
	n, err := Compare(next, last)
	return err == nil && n > 0
}
