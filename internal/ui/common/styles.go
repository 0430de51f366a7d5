// Package common provides shared styles and card rendering for terminal output.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-rules/internal/card"
)

// Icon constants
const (
	LandlordIcon = "👑"
	FarmerIcon   = "🧑‍🌾"
)

// Lipgloss Styles
var (
	RedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	BoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	DisplayOrder = []card.Rank{card.RankRedJoker, card.RankBlackJoker, card.Rank2, card.RankA, card.RankK, card.RankQ, card.RankJ, card.Rank10, card.Rank9, card.Rank8, card.Rank7, card.Rank6, card.Rank5, card.Rank4, card.Rank3}
)

// CardStyle returns the style matching the card color
func CardStyle(c card.Card) lipgloss.Style {
	if c.Color() == card.Red {
		return RedStyle
	}
	return BlackStyle
}
