package tui

import "github.com/charmbracelet/lipgloss"

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorPink       = lipgloss.Color("#ff90bb")
	colorBlue       = lipgloss.Color("#8accd5")
	colorMuted      = ac("240", "243")
	colorError      = ac("160", "203")
	colorSuccess    = ac("28", "114")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
)

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorPink)
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func styleSuccess() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSuccess)
}

func styleFocused() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg)
}

func styleChip(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return st.Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(colorPink)
	}
	return st.Foreground(colorMuted)
}

func modalBodyWidth(width int) int {
	w := width - 10
	if w > 60 {
		w = 60
	}
	if w < 24 {
		w = 24
	}
	return w
}

func renderModalBox(width int, title, body string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Padding(1, 2).
		Width(modalBodyWidth(width))
	return box.Render(styleTitle().Render(title) + "\n\n" + body)
}
