package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputRanks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected map[Rank]int
		hasError bool
	}{
		{
			name:     "Single card",
			input:    "3",
			expected: map[Rank]int{Rank3: 1},
		},
		{
			name:     "Pair",
			input:    "33",
			expected: map[Rank]int{Rank3: 2},
		},
		{
			name:     "Multiple ranks",
			input:    "345",
			expected: map[Rank]int{Rank3: 1, Rank4: 1, Rank5: 1},
		},
		{
			name:     "With 10 and lower case",
			input:    "10jq",
			expected: map[Rank]int{Rank10: 1, RankJ: 1, RankQ: 1},
		},
		{
			name:     "Invalid character",
			input:    "3X5",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := parseInputRanks(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestCountHandRanks(t *testing.T) {
	t.Parallel()

	hand := []Card{
		{Suit: Spade, Rank: Rank3},
		{Suit: Heart, Rank: Rank3},
		{Suit: Diamond, Rank: Rank3},
		{Suit: Club, Rank: Rank4},
		{Suit: Spade, Rank: Rank4},
	}

	counts := countHandRanks(hand)

	assert.Equal(t, 3, counts[Rank3])
	assert.Equal(t, 2, counts[Rank4])
	assert.Equal(t, 0, counts[Rank5])
}

func TestFindRocketInHand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hand  []Card
		found bool
	}{
		{
			name: "Has rocket",
			hand: []Card{
				{Suit: Joker, Rank: RankBlackJoker},
				{Suit: Joker, Rank: RankRedJoker},
				{Suit: Spade, Rank: Rank3},
			},
			found: true,
		},
		{
			name: "Only black joker",
			hand: []Card{
				{Suit: Joker, Rank: RankBlackJoker},
				{Suit: Spade, Rank: Rank3},
			},
		},
		{
			name: "No jokers",
			hand: []Card{
				{Suit: Spade, Rank: Rank3},
				{Suit: Heart, Rank: Rank4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cards, found := findRocketInHand(tt.hand)
			assert.Equal(t, tt.found, found)
			if found {
				assert.Len(t, cards, 2)
			} else {
				assert.Nil(t, cards)
			}
		})
	}
}

func TestFindCardsInHand(t *testing.T) {
	t.Parallel()

	hand := []Card{
		{Suit: Diamond, Rank: Rank3},
		{Suit: Spade, Rank: Rank3},
		{Suit: Heart, Rank: Rank10},
		{Suit: Club, Rank: RankK},
		{Suit: Joker, Rank: RankBlackJoker},
		{Suit: Joker, Rank: RankRedJoker},
	}

	t.Run("pair picks both threes", func(t *testing.T) {
		t.Parallel()
		cards, err := FindCardsInHand(hand, "33")
		require.NoError(t, err)
		assert.Equal(t, []Card{{Diamond, Rank3}, {Spade, Rank3}}, cards)
	})

	t.Run("single prefers highest suit", func(t *testing.T) {
		t.Parallel()
		cards, err := FindCardsInHand(hand, "3")
		require.NoError(t, err)
		assert.Equal(t, []Card{{Spade, Rank3}}, cards)
	})

	t.Run("ten spelled out", func(t *testing.T) {
		t.Parallel()
		cards, err := FindCardsInHand(hand, "10K")
		require.NoError(t, err)
		assert.Equal(t, []Card{{Heart, Rank10}, {Club, RankK}}, cards)
	})

	t.Run("rocket keyword", func(t *testing.T) {
		t.Parallel()
		cards, err := FindCardsInHand(hand, "joker")
		require.NoError(t, err)
		assert.Len(t, cards, 2)
	})

	t.Run("not enough cards", func(t *testing.T) {
		t.Parallel()
		_, err := FindCardsInHand(hand, "333")
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		_, err := FindCardsInHand(hand, "  ")
		assert.Error(t, err)
	})
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("3343BR")
	require.NoError(t, err)
	assert.Equal(t, []Card{
		{Diamond, Rank3}, {Club, Rank3}, {Diamond, Rank4}, {Heart, Rank3},
		{Joker, RankBlackJoker}, {Joker, RankRedJoker},
	}, cards)

	_, err = ParseCards("33333")
	assert.Error(t, err, "only four cards per rank")

	_, err = ParseCards("BB")
	assert.Error(t, err, "only one black joker")

	rocket, err := ParseCards("JOKER")
	require.NoError(t, err)
	assert.Equal(t, []Card{{Joker, RankBlackJoker}, {Joker, RankRedJoker}}, rocket)
}

func TestContainsAll(t *testing.T) {
	t.Parallel()

	hand := []Card{{Diamond, Rank3}, {Spade, Rank3}, {Heart, Rank9}}

	assert.True(t, ContainsAll(hand, []Card{{Spade, Rank3}, {Heart, Rank9}}))
	assert.False(t, ContainsAll(hand, []Card{{Club, Rank3}}))
	assert.False(t, ContainsAll(hand, []Card{{Heart, Rank9}, {Heart, Rank9}}), "a card cannot be used twice")
	assert.True(t, ContainsAll(hand, nil))
}

func TestRemoveCards(t *testing.T) {
	t.Parallel()

	hand := []Card{{Diamond, Rank3}, {Spade, Rank3}, {Heart, Rank9}}
	left := RemoveCards(hand, []Card{{Spade, Rank3}})

	assert.Equal(t, []Card{{Diamond, Rank3}, {Heart, Rank9}}, left)
	assert.Len(t, hand, 3, "input hand must not shrink")
	assert.Empty(t, RemoveCards(hand, hand))
}

func TestSelectByIndex(t *testing.T) {
	t.Parallel()

	hand := Sorted([]Card{
		New(Spade, Rank3), New(Heart, Rank3), New(Club, RankK), New(Joker, RankRedJoker),
	})

	tests := []struct {
		name     string
		indices  []int
		expected []Card
		hasError bool
	}{
		{"Single", []int{2}, []Card{New(Club, RankK)}, false},
		{"Pair in any order", []int{1, 0}, []Card{New(Heart, Rank3), New(Spade, Rank3)}, false},
		{"Whole hand", []int{3, 2, 1, 0}, hand, false},
		{"Empty", nil, nil, true},
		{"Out of range", []int{4}, nil, true},
		{"Negative", []int{-1}, nil, true},
		{"Duplicate", []int{0, 0}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SelectByIndex(hand, tt.indices)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
