package ui

import (
	"fmt"
	"strings"

	"cardpanel/internal/card"

	"github.com/charmbracelet/glamour"
)

// Fixed values the payment form expects. These are baked into the tutorial,
// not computed from the payload.
const (
	TutorialCountry    = "United States"
	TutorialPostalCode = "82240"
)

// guidanceMarkdown is the static success/failure advice shown below the
// numbered steps.
const guidanceMarkdown = `**If the subscription goes through**, the form shows a confirmation screen right away and nothing more is needed from this panel.

**If the card is declined**, re-copy the number, expiry and security code (steps 1 to 3) and submit again; stale clipboard contents are the usual cause. Contact support if a second attempt is declined.`

// tutorialSteps returns the fixed 8-step entry sequence with the card's
// literal values substituted into the first three steps.
func tutorialSteps(c *card.Card) []string {
	return []string{
		fmt.Sprintf("Copy the card number %s and paste it into the form's card number field.", c.Number),
		fmt.Sprintf("Copy the expiry %s and paste it into the expiration field.", c.Expiry),
		fmt.Sprintf("Copy the security code %s and paste it into the CVC field.", c.SecurityCode),
		fmt.Sprintf("Select %q as the billing country.", TutorialCountry),
		"Enter any name as the cardholder.",
		fmt.Sprintf("Enter %s as the postal code.", TutorialPostalCode),
		`Press "Save card".`,
		`Press "Subscribe".`,
	}
}

// renderTutorial renders the numbered entry tutorial for a card with full
// details, followed by the static guidance text.
func (m CardPageModel) renderTutorial(c *card.Card) string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" How to enter this card ") + "\n")
	for i, step := range tutorialSteps(c) {
		num := m.styles.Info.Render(fmt.Sprintf("%d.", i+1))
		sb.WriteString(fmt.Sprintf(" %s %s\n", num, m.styles.Body.Render(step)))
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderGuidance())

	return sb.String()
}

// renderGuidance renders the guidance markdown for the current theme and
// width. Falls back to the raw markdown if the renderer is unavailable.
func (m CardPageModel) renderGuidance() string {
	width := m.width - ViewportHorizontalPadding
	if width < MinimumPanelWidth {
		width = MinimumPanelWidth
	}

	style := "light"
	if m.styles.Theme.IsDark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return guidanceMarkdown
	}
	out, err := renderer.Render(guidanceMarkdown)
	if err != nil {
		return guidanceMarkdown
	}
	return out
}
