package rule

import (
	"fmt"

	"github.com/palemoky/landlord-rules/internal/apperrors"
	"github.com/palemoky/landlord-rules/internal/card"
)

// Phase 一轮出牌所处的阶段
type Phase int

const (
	AwaitingOpen Phase = iota // 新一轮，等待首家出牌
	Beaten                    // 已有人出牌，后续必须压过
)

func (p Phase) String() string {
	if p == Beaten {
		return "beaten"
	}
	return "awaiting_open"
}

// TrickState 一轮出牌的状态值，零值即 AwaitingOpen
type TrickState struct {
	last Play
}

// OpenTrick 新一轮
func OpenTrick() TrickState {
	return TrickState{}
}

// BeatenBy 以 last 为当前最大牌的状态，用于恢复牌桌
func BeatenBy(last Play) TrickState {
	return TrickState{last: last}
}

func (s TrickState) Phase() Phase {
	if s.last.IsZero() {
		return AwaitingOpen
	}
	return Beaten
}

// Last 当前这一轮最后被接受的出牌
func (s TrickState) Last() (Play, bool) {
	return s.last, !s.last.IsZero()
}

// Submit 纯状态转移：出牌合法时返回新状态，否则原状态不变
func (s TrickState) Submit(cards []card.Card) (Play, TrickState, error) {
	play, err := NewPlay(cards)
	if err != nil {
		return Play{}, s, err
	}

	if s.Phase() == Beaten && !CanBeat(play, s.last) {
		return Play{}, s, fmt.Errorf("%w: %s 不能压过 %s", apperrors.ErrInvalidPlay, play, s.last)
	}
	return play, TrickState{last: play}, nil
}

// Validator 一张牌桌的出牌校验器。
// 每张牌桌独占一个实例，出牌按顺序处理，不支持并发调用。
type Validator struct {
	state TrickState
}

func NewValidator() *Validator {
	return &Validator{state: OpenTrick()}
}

// Submit 校验并接受一次出牌
func (v *Validator) Submit(cards []card.Card) (Play, error) {
	play, next, err := v.state.Submit(cards)
	if err != nil {
		return Play{}, err
	}
	v.state = next
	return play, nil
}

func (v *Validator) State() TrickState {
	return v.state
}

// Reset 开始新一轮
func (v *Validator) Reset() {
	v.state = OpenTrick()
}

// Restore 覆盖当前状态
func (v *Validator) Restore(state TrickState) {
	v.state = state
}
