package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kitek/internal/content"
)

// View renders the shell for the current mode.
func (m Model) View() string {
	switch m.mode {
	case ModeBoot:
		return m.viewBoot()
	case ModeSnake:
		return m.viewSnake()
	case ModePowerOff:
		return m.viewPowerOff()
	default:
		return m.viewBrowse()
	}
}

func (m Model) viewBoot() string {
	style := m.styles.Text
	if m.bootFlash {
		style = m.styles.Title
	}
	var b strings.Builder
	b.WriteString(style.Render(m.bootTranscript.String()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render("Press any key to skip..."))
	return b.String()
}

func (m Model) viewBrowse() string {
	if !m.ready {
		return m.styles.Text.Render("Initializing...")
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewMenu())
	b.WriteString("\n")
	b.WriteString(m.styles.Panel.Render(m.viewport.View()))
	b.WriteString("\n")

	if m.mode == ModeConfirm {
		b.WriteString(m.viewConfirmBox())
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())
	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("/// MARCIN_DEV.EXE ///")
	clock := m.styles.Hint.Render(m.clockString())
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(clock)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + clock
}

func (m Model) clockString() string {
	local := m.now.Format("15:04:05")
	if m.warsaw == nil {
		return local
	}
	return fmt.Sprintf("%s  WAW %s", local, m.now.In(m.warsaw).Format("15:04"))
}

func (m Model) viewMenu() string {
	items := make([]string, 0, len(content.Order))
	for i, key := range content.Order {
		label := content.Titles[key]
		if i == m.menuIndex {
			items = append(items, m.styles.MenuActive.Render(label))
		} else {
			items = append(items, m.styles.MenuItem.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m Model) viewConfirmBox() string {
	var b strings.Builder
	b.WriteString(m.styles.Warning.Render("KITEK_AI.EXE requests permission to execute:"))
	b.WriteString("\n")
	for _, call := range m.interp.Confirmer().Calls() {
		b.WriteString(m.styles.Emphasis.Render("  " + call.String()))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Hint.Render("Type 'y' and press ENTER to execute, ESC to cancel."))
	return m.styles.ConfirmBox.Render(b.String())
}

func (m Model) viewStatusBar() string {
	ai := "AI: OFFLINE"
	if m.aiAvailable() {
		ai = "AI: ONLINE"
	}
	parts := []string{
		"THEME: " + strings.ToUpper(m.styles.Theme.Name),
		ai,
		fmt.Sprintf("HI-SCORE: %d", m.highScore),
	}
	if m.thinking {
		parts = append(parts, m.spin.View()+"THINKING")
	}
	return m.styles.StatusBar.Render(strings.Join(parts, "  │  "))
}

func (m Model) viewSnake() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("/// SNAKE.EXE ///"))
	b.WriteString("\n")
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("SCORE: %d   HI: %d", m.snake.Score(), m.highScore)))
	b.WriteString("\n")
	b.WriteString(m.styles.Panel.Render(m.renderBoard()))
	b.WriteString("\n")
	if m.snake.Over() {
		b.WriteString(m.styles.Error.Render("GAME OVER"))
		b.WriteString("  ")
		b.WriteString(m.styles.Hint.Render("ENTER to restart, ESC to exit"))
	} else {
		b.WriteString(m.styles.Hint.Render("Arrow keys to steer, ESC to exit"))
	}
	return b.String()
}

func (m Model) renderBoard() string {
	cols, rows := m.snake.Size()
	cells := make([][]string, rows)
	blank := m.styles.Hint.Render("·")
	for y := range cells {
		cells[y] = make([]string, cols)
		for x := range cells[y] {
			cells[y][x] = blank
		}
	}

	body := m.snake.Body()
	for i, p := range body {
		if p.Y < 0 || p.Y >= rows || p.X < 0 || p.X >= cols {
			continue
		}
		if i == 0 {
			cells[p.Y][p.X] = m.styles.SnakeHead.Render("█")
		} else {
			cells[p.Y][p.X] = m.styles.SnakeBody.Render("█")
		}
	}

	food := m.snake.Food()
	if food.Y >= 0 && food.Y < rows && food.X >= 0 && food.X < cols {
		cells[food.Y][food.X] = m.styles.SnakeFood.Render("◆")
	}

	lines := make([]string, rows)
	for y, row := range cells {
		lines[y] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewPowerOff() string {
	return m.styles.Hint.Render("\n\n  SHUTTING DOWN...\n\n  It is now safe to turn off your computer.")
}

// refreshViewport rebuilds the scrollback: the rendered panel, the
// export progress lines if an export is playing, then the console.
func (m Model) refreshViewport() Model {
	if !m.ready {
		return m
	}

	var b strings.Builder
	b.WriteString(m.renderPanel())

	if len(m.downloadLines) > 0 {
		b.WriteString("\n")
		for _, line := range m.downloadLines {
			b.WriteString(m.styles.Text.Render(line))
			b.WriteString("\n")
		}
	}

	if len(m.console) > 0 {
		b.WriteString("\n")
		for _, line := range m.console {
			b.WriteString(m.styleFor(line.kind).Render(line.text))
			b.WriteString("\n")
		}
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
	return m
}

func (m Model) renderPanel() string {
	if m.panel.markdown && m.renderer != nil {
		if rendered, err := m.renderer.Render(m.panel.text); err == nil {
			return strings.TrimRight(rendered, "\n")
		}
	}
	return m.styles.Text.Render(m.panel.text)
}

func (m Model) styleFor(kind lineKind) lipgloss.Style {
	switch kind {
	case lineUser:
		return m.styles.UserLine
	case lineError:
		return m.styles.Error
	case lineStatus:
		return m.styles.Warning
	case lineHint:
		return m.styles.Hint
	default:
		return m.styles.AILine
	}
}
