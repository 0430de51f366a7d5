package rule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/landlord-rules/internal/apperrors"
	"github.com/palemoky/landlord-rules/internal/card"
)

func mustPlay(t *testing.T, input string) Play {
	t.Helper()
	p, err := NewPlay(mustCards(t, input))
	require.NoError(t, err)
	return p
}

func TestNewPlay(t *testing.T) {
	t.Parallel()

	p := mustPlay(t, "7333")
	assert.Equal(t, TrioKicksSolo, p.Kind())
	assert.Equal(t, card.Rank3, p.Prime().Rank)
	assert.Equal(t, 4, p.Size())
	assert.False(t, p.IsZero())
	assert.Contains(t, p.String(), "三带一")
}

func TestNewPlay_NoMatchingShape(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "34", "3456", "23456"} {
		p, err := NewPlay(mustCards(t, input))
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, apperrors.ErrNoMatchingShape), input)
		assert.True(t, p.IsZero())
	}
}

func TestPlay_CardsIsDefensiveCopy(t *testing.T) {
	t.Parallel()

	input := mustCards(t, "33377")
	p, err := NewPlay(input)
	require.NoError(t, err)

	input[0] = card.New(card.Joker, card.RankRedJoker)
	got := p.Cards()
	got[1] = card.New(card.Joker, card.RankBlackJoker)

	assert.ElementsMatch(t, mustCards(t, "33377"), p.Cards())
}

func TestPlay_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"3", "22", "BR", "2222", "34567", "334455", "333444", "3337", "33377",
		"33344478", "3334447788", "333345", "33334455"}

	for _, input := range inputs {
		p := mustPlay(t, input)
		again, err := NewPlay(p.Cards())
		require.NoError(t, err, input)
		assert.Equal(t, p.Kind(), again.Kind(), input)
		assert.Equal(t, p.Prime(), again.Prime(), input)
		assert.Equal(t, p.Size(), again.Size(), input)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	n, err := Compare(mustPlay(t, "44"), mustPlay(t, "33"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// 花色不参与比较
	a := Play{kind: Solo, prime: card.New(card.Spade, card.Rank5), cards: []card.Card{card.New(card.Spade, card.Rank5)}}
	b := Play{kind: Solo, prime: card.New(card.Diamond, card.Rank5), cards: []card.Card{card.New(card.Diamond, card.Rank5)}}
	n, err = Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = Compare(mustPlay(t, "5"), mustPlay(t, "33"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTypeMismatch))

	var gameErr *apperrors.GameError
	require.True(t, errors.As(err, &gameErr))
	assert.False(t, gameErr.Retryable())
}

func TestCanBeat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		next string
		last string
		want bool
	}{
		{"higher solo", "4", "3", true},
		{"lower solo", "3", "4", false},
		{"same rank solo", "5", "5", false},
		{"two beats ace", "2", "A", true},
		{"red joker beats black joker", "R", "B", true},
		{"higher pair", "44", "33", true},
		{"pair vs solo", "44", "3", false},
		{"solo chain same length", "45678", "34567", true},
		{"solo chain different length", "456789", "34567", false},
		{"pair sisters same length", "445566", "334455", true},
		{"trio kicks solo compares trio", "4443", "333A", true},
		{"airplane compares body", "44455536", "33344478", true},
		{"bomb beats solo", "3333", "2", true},
		{"bomb beats chain", "3333", "3456789TJQKA", true},
		{"higher bomb", "4444", "3333", true},
		{"lower bomb", "3333", "4444", false},
		{"bomb cannot beat rocket", "2222", "BR", false},
		{"rocket beats bomb", "BR", "2222", true},
		{"rocket beats pair", "BR", "22", true},
		{"pair cannot beat bomb", "22", "3333", false},
		{"four kicks is not a bomb", "444456", "3333", false},
		{"bomb beats four kicks", "3333", "444456", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanBeat(mustPlay(t, tt.next), mustPlay(t, tt.last)))
		})
	}
}

func TestCanBeat_ZeroLast(t *testing.T) {
	t.Parallel()

	assert.True(t, CanBeat(mustPlay(t, "3"), Play{}))
	assert.False(t, CanBeat(Play{}, Play{}))
}
