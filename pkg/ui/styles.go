package ui

import (
	"strings"

	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	te "github.com/muesli/termenv"
)

const (
	columnWidth = 30
)

var (
	// General.

	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning   = lipgloss.AdaptiveColor{Light: "#CC4A0E", Dark: "#F2804A"}
	faint     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

	divider = lipgloss.NewStyle().
		SetString("•").
		Padding(0, 1).
		Foreground(subtle).
		String()

	urlStyle = lipgloss.NewStyle().Foreground(special).Render

	warnStyle = lipgloss.NewStyle().Foreground(warning).Render

	faintStyle = lipgloss.NewStyle().Foreground(faint).Render

	premiumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render

	// Status bar, in the pager tradition.

	statusBarNoteFg = lib.NewColorPair("#7D7D7D", "#656565")
	statusBarBg     = lib.NewColorPair("#242424", "#E6E6E6")
	mintGreen       = lib.NewColorPair("#89F0CB", "#89F0CB")
	darkGreen       = lib.NewColorPair("#1C8760", "#1C8760")

	statusBarStyle        = newStyle(statusBarNoteFg, statusBarBg, false)
	statusBarMessageStyle = newStyle(mintGreen, darkGreen, false)

	// Tabs.

	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	tab = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(highlight).
		Padding(0, 1)

	activeTab = tab.Copy().Border(activeTabBorder, true)

	tabGap = tab.Copy().
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	// Dialogs (cookie-consent prompt).

	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	sectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			MarginBottom(1).
			Render

	listBullet = func(s string) string { return "  • " + s }
	listActive = func(s string) string { return "  > " + s }
)

// Returns a termenv style with foreground and background options.
func newStyle(fg, bg lib.ColorPair, bold bool) func(string) string {
	s := te.Style{}.Foreground(fg.Color()).Background(bg.Color())
	if bold {
		s = s.Bold()
	}
	return s.Styled
}

// brandView renders the wordmark with a left-to-right gradient.
func brandView(brand string) string {
	a, _ := colorful.Hex("#F25D94")
	b, _ := colorful.Hex("#643AFF")

	runes := []rune(brand)
	if len(runes) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range runes {
		c := a.BlendLuv(b, float64(i)/float64(len(runes)))
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Hex())).
			Render(string(r)))
	}
	return sb.String()
}

// tabRowView renders a wrap-around tab row with the active tab popped open,
// padded to width with a bottom rule.
func tabRowView(labels []string, activeIndex, width int) string {
	rendered := make([]string, 0, len(labels))
	for i, l := range labels {
		if i == activeIndex {
			rendered = append(rendered, activeTab.Render(l))
		} else {
			rendered = append(rendered, tab.Render(l))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	gap := tabGap.Render(strings.Repeat(" ", max(0, width-lipgloss.Width(row)-2)))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
