// Package table holds the per-table state around the rule engine: the deck,
// the three hands, the reserve, the trick validator and the card counter.
//
// A Table is owned by one turn-processing context and is not safe for
// concurrent use; plays are applied one at a time.
package table

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/palemoky/landlord-rules/internal/apperrors"
	"github.com/palemoky/landlord-rules/internal/card"
	"github.com/palemoky/landlord-rules/internal/logger"
	"github.com/palemoky/landlord-rules/internal/rule"
)

// State 牌桌状态
type State int

const (
	StateWaiting State = iota
	StateDealt
	StatePlaying
	StateEnded
)

var stateNames = map[State]string{
	StateWaiting: "waiting",
	StateDealt:   "dealt",
	StatePlaying: "playing",
	StateEnded:   "ended",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

const noSeat = -1

// Table 一张牌桌
type Table struct {
	ID        string
	CreatedAt time.Time

	state     State
	rng       *rand.Rand
	hands     [card.PlayerCount][]card.Card
	reserve   []card.Card
	landlord  int
	lastSeat  int
	passes    int
	winner    int
	validator *rule.Validator
	counter   *card.CardCounter
}

// New 创建牌桌，id 为空时生成 uuid；rng 为 nil 时使用全局随机源
func New(id string, rng *rand.Rand) *Table {
	if id == "" {
		id = uuid.NewString()
	}
	return &Table{
		ID:        id,
		CreatedAt: time.Now(),
		state:     StateWaiting,
		rng:       rng,
		landlord:  noSeat,
		lastSeat:  noSeat,
		winner:    noSeat,
		validator: rule.NewValidator(),
		counter:   card.NewCardCounter(),
	}
}

// Deal 洗牌并发牌，可在等待或结束状态下开始新的一局
func (t *Table) Deal() error {
	if t.state != StateWaiting && t.state != StateEnded {
		return fmt.Errorf("%w: 当前状态 %s 不能发牌", apperrors.ErrBadState, t.state)
	}

	deck := card.NewDeck()
	deck.Shuffle(t.rng)
	hands, reserve, err := deck.Deal()
	if err != nil {
		return err
	}

	t.hands = hands
	t.reserve = reserve
	t.landlord = noSeat
	t.lastSeat = noSeat
	t.winner = noSeat
	t.passes = 0
	t.validator.Reset()
	t.counter.Reset()
	t.state = StateDealt

	t.logEntry().Info("cards dealt")
	return nil
}

// AssignLandlord 把底牌交给叫地主环节选出的座位，地主首先出牌
func (t *Table) AssignLandlord(seat int) error {
	if t.state != StateDealt {
		return fmt.Errorf("%w: 当前状态 %s 不能确定地主", apperrors.ErrBadState, t.state)
	}
	if err := checkSeat(seat); err != nil {
		return err
	}

	t.hands[seat] = append(t.hands[seat], t.reserve...)
	card.Sort(t.hands[seat])
	t.landlord = seat
	t.lastSeat = seat
	t.state = StatePlaying

	t.logEntry().WithField("seat", seat).Info("landlord assigned")
	return nil
}

// Play 校验并执行一次出牌：牌必须在手中，且能压过本轮上一手
func (t *Table) Play(seat int, cards []card.Card) (rule.Play, error) {
	if err := t.checkPlaying(seat); err != nil {
		return rule.Play{}, err
	}
	if !card.ContainsAll(t.hands[seat], cards) {
		return rule.Play{}, fmt.Errorf("%w: [%s]", apperrors.ErrCardsNotInHand, card.FormatCards(cards))
	}

	play, err := t.validator.Submit(cards)
	if err != nil {
		t.logEntry().WithField("seat", seat).Debugf("play rejected: %v", err)
		return rule.Play{}, err
	}

	t.hands[seat] = card.RemoveCards(t.hands[seat], cards)
	t.counter.Update(cards)
	t.lastSeat = seat
	t.passes = 0

	entry := t.logEntry().WithField("seat", seat)
	entry.Infof("play accepted: %s", play)

	if len(t.hands[seat]) == 0 {
		t.winner = seat
		t.state = StateEnded
		entry.Info("game over")
	}
	return play, nil
}

// PlayInput 按点数字符串（如 "33344456"、"JOKER"）从手牌中选牌并出牌
func (t *Table) PlayInput(seat int, input string) (rule.Play, error) {
	if err := t.checkPlaying(seat); err != nil {
		return rule.Play{}, err
	}
	cards, err := card.FindCardsInHand(t.hands[seat], input)
	if err != nil {
		return rule.Play{}, fmt.Errorf("%w: %v", apperrors.ErrCardsNotInHand, err)
	}
	return t.Play(seat, cards)
}

// PlayIndices 按排序后手牌（与 Hand 返回的顺序一致）的下标选牌并出牌
func (t *Table) PlayIndices(seat int, indices []int) (rule.Play, error) {
	if err := t.checkPlaying(seat); err != nil {
		return rule.Play{}, err
	}
	cards, err := card.SelectByIndex(t.hands[seat], indices)
	if err != nil {
		return rule.Play{}, fmt.Errorf("%w: %v", apperrors.ErrCardsNotInHand, err)
	}
	return t.Play(seat, cards)
}

// Pass 不出。新一轮首家不能不出；连续两家不出后开始新一轮
func (t *Table) Pass(seat int) error {
	if err := t.checkPlaying(seat); err != nil {
		return err
	}
	if t.validator.State().Phase() == rule.AwaitingOpen || seat == t.lastSeat {
		return apperrors.ErrMustPlay
	}

	t.passes++
	if t.passes >= card.PlayerCount-1 {
		t.validator.Reset()
		t.passes = 0
		t.logEntry().WithField("leader", t.lastSeat).Debug("trick finished")
	}
	return nil
}

func (t *Table) State() State {
	return t.state
}

// Hand 返回手牌副本
func (t *Table) Hand(seat int) []card.Card {
	if checkSeat(seat) != nil {
		return nil
	}
	return card.Sorted(t.hands[seat])
}

// Reserve 返回底牌副本
func (t *Table) Reserve() []card.Card {
	return card.Sorted(t.reserve)
}

func (t *Table) Landlord() (int, bool) {
	return t.landlord, t.landlord != noSeat
}

// LastSeat 本轮最后出牌的座位
func (t *Table) LastSeat() int {
	return t.lastSeat
}

func (t *Table) Trick() rule.TrickState {
	return t.validator.State()
}

func (t *Table) Winner() (int, bool) {
	return t.winner, t.winner != noSeat
}

// Remaining 记牌器中某点数尚未打出的张数
func (t *Table) Remaining(rank card.Rank) int {
	return t.counter.Remaining(rank)
}

// logEntry 每次调用时取当前的 logger，Init/Close 之后依然有效
func (t *Table) logEntry() *logrus.Entry {
	return logger.WithTable(t.ID)
}

func (t *Table) checkPlaying(seat int) error {
	if t.state != StatePlaying {
		return fmt.Errorf("%w: 当前状态 %s 不能出牌", apperrors.ErrBadState, t.state)
	}
	return checkSeat(seat)
}

func checkSeat(seat int) error {
	if seat < 0 || seat >= card.PlayerCount {
		return fmt.Errorf("%w: %d", apperrors.ErrInvalidSeat, seat)
	}
	return nil
}
