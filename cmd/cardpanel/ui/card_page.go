package ui

import (
	"strings"

	"cardpanel/internal/card"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field labels used to key the transient copy-success indicator.
const (
	labelIdentifier = "identifier"
	labelNumber     = "number"
	labelExpiry     = "expiry"
	labelCode       = "security code"
	labelBilling    = "billing address"
)

// PayloadMsg delivers a freshly resolved payload to a running panel, for
// example from the payload file watcher.
type PayloadMsg struct {
	Result *card.Result
}

// CardPageModel renders the card detail panel. The payload is supplied by
// the caller; the only state owned here is which field's copy action most
// recently succeeded.
type CardPageModel struct {
	width    int
	height   int
	viewport viewport.Model

	// Data
	result *card.Result

	// Copy feedback: at most one field at a time, most recent copy wins.
	copiedLabel string

	// Styles
	styles Styles
}

// NewCardPageModel creates a new card detail page.
func NewCardPageModel(styles Styles) CardPageModel {
	vp := viewport.New(DefaultPanelWidth, DefaultPanelHeight-FooterHeight)
	return CardPageModel{
		viewport: vp,
		styles:   styles,
		width:    DefaultPanelWidth,
		height:   DefaultPanelHeight,
	}
}

// Init initializes the model.
func (m CardPageModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CardPageModel) Update(msg tea.Msg) (CardPageModel, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		default:
			if c := m.copyCmdForKey(msg.String()); c != nil {
				cmds = append(cmds, c)
			}
		}

	case copiedMsg:
		// Most recent successful copy wins; the new reset timer supersedes
		// any still-pending one via the label comparison below.
		m.copiedLabel = msg.label
		m.refreshContent()
		cmds = append(cmds, copyResetCmd(msg.label))

	case copyFailedMsg:
		// Logged at the copy site. The control stays in its default state
		// and other fields remain copyable.

	case copyResetMsg:
		if m.copiedLabel == msg.label {
			m.copiedLabel = ""
			m.refreshContent()
		}

	case PayloadMsg:
		m.UpdateContent(msg.Result)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// copyCmdForKey maps a key press to the copy action for the matching field.
// Fields that are absent from the payload have nothing to copy.
func (m CardPageModel) copyCmdForKey(key string) tea.Cmd {
	if m.result == nil || m.result.Err != "" || m.result.Card == nil {
		return nil
	}
	c := m.result.Card

	switch key {
	case "i":
		return copyCmd(c.ID, labelIdentifier)
	case "n":
		if c.Number != "" {
			return copyCmd(c.Number, labelNumber)
		}
	case "e":
		if c.Expiry != "" {
			return copyCmd(c.Expiry, labelExpiry)
		}
	case "c":
		if c.SecurityCode != "" {
			return copyCmd(c.SecurityCode, labelCode)
		}
	case "b":
		return copyCmd(c.DisplayBillingAddress(), labelBilling)
	}
	return nil
}

// UpdateContent replaces the panel's payload. A new payload clears any
// pending copy feedback.
func (m *CardPageModel) UpdateContent(result *card.Result) {
	m.result = result
	m.copiedLabel = ""
	m.refreshContent()
}

// View renders the page. States are mutually exclusive and evaluated in
// order: upstream error, empty, populated.
func (m CardPageModel) View() string {
	if m.result == nil {
		return ""
	}
	if m.result.Err != "" {
		return m.styles.Error.Render(m.result.Err)
	}
	if m.result.Card == nil {
		return ""
	}

	help := m.styles.Footer.Render("[n] number  [e] expiry  [c] code  [b] billing  [i] id  •  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), help)
}

// SetSize updates the size of the viewport.
func (m *CardPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - FooterHeight
	m.refreshContent()
}

// refreshContent rebuilds the viewport content from the current payload and
// copy-feedback state.
func (m *CardPageModel) refreshContent() {
	if m.result == nil || m.result.Err != "" || m.result.Card == nil {
		m.viewport.SetContent("")
		return
	}
	c := m.result.Card

	var sb strings.Builder

	// 1. Identifier line with limit badge and deleted indicator
	title := m.styles.Header.Render(" Card " + c.ID + " ")
	badge := m.styles.Badge.Render(c.FormatLimit() + " limit")
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
	if c.Status == card.StatusDeleted {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, " ", m.styles.Error.Render("DELETED"))
	}
	sb.WriteString(header + "\n\n")

	// 2. Field rows with copy affordances
	sb.WriteString(m.fieldRow("Card number", c.Number, "n", labelNumber))
	sb.WriteString(m.fieldRow("Expiry", c.Expiry, "e", labelExpiry))
	sb.WriteString(m.fieldRow("Security code", c.SecurityCode, "c", labelCode))

	// 3. Display timestamp: deletion time when present, else creation time
	timeLabel := "Created"
	if c.DeletedAt != nil {
		timeLabel = "Deleted"
	}
	sb.WriteString(m.styles.FieldLabel.Render(timeLabel))
	sb.WriteString(" " + m.styles.Body.Render(c.DisplayTime()) + "\n")

	// 4. Billing address with fallback
	sb.WriteString(m.styles.FieldLabel.Render("Billing address"))
	sb.WriteString(" " + m.styles.FieldValue.Render(c.DisplayBillingAddress()))
	sb.WriteString("  " + renderCopyIndicator("b", labelBilling, m.copiedLabel, m.styles) + "\n")

	// 5. Entry tutorial, only when all sensitive fields are present
	if c.HasFullDetails() {
		sb.WriteString("\n")
		sb.WriteString(m.renderTutorial(c))
	}

	m.viewport.SetContent(sb.String())
}

// fieldRow renders one labeled field. Absent values degrade to the
// placeholder and carry no copy affordance.
func (m CardPageModel) fieldRow(label, value, key, copyLabel string) string {
	row := m.styles.FieldLabel.Render(label) + " "
	if value == "" {
		return row + m.styles.Muted.Render(card.FieldPlaceholder) + "\n"
	}
	row += m.styles.FieldValue.Render(value)
	row += "  " + renderCopyIndicator(key, copyLabel, m.copiedLabel, m.styles)
	return row + "\n"
}
