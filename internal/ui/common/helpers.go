package common

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-rules/internal/card"
	"github.com/palemoky/landlord-rules/internal/rule"
)

// RenderCards renders cards as two rows (rank over suit), highest first.
func RenderCards(cards []card.Card) string {
	if len(cards) == 0 {
		return "(无)"
	}

	sorted := card.Sorted(cards)
	var rankStr, suitStr strings.Builder
	for i := len(sorted) - 1; i >= 0; i-- {
		c := sorted[i]
		style := CardStyle(c).Align(lipgloss.Center).Margin(0, 1)
		suit := c.Suit.String()
		if c.IsJoker() {
			suit = "王"
		}
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Rank.String())))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", suit)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rankStr.String(), suitStr.String())
}

// RenderHand renders a titled box around a hand.
func RenderHand(title string, hand []card.Card, isLandlord bool) string {
	icon := FarmerIcon
	if isLandlord {
		icon = LandlordIcon
	}
	header := TitleStyle.Render(fmt.Sprintf("%s %s (%d张)", title, icon, len(hand)))
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, RenderCards(hand)))
}

// RenderPlay renders a classified play with its shape and prime card.
func RenderPlay(p rule.Play) string {
	if p.IsZero() {
		return ErrorStyle.Render("无效的牌型")
	}
	header := TitleStyle.Render(fmt.Sprintf("%s  主牌 %s  %d张", p.Kind(), p.Prime(), p.Size()))
	return lipgloss.JoinVertical(lipgloss.Left, header, RenderCards(p.Cards()))
}
