package ui

import (
	"time"

	"cardpanel/internal/logging"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// copyFeedbackDuration is how long a successful copy shows its checkmark
// before the control reverts to the default icon.
const copyFeedbackDuration = 2000 * time.Millisecond

// Copy control icons.
const (
	copyIconDefault = "⧉"
	copyIconSuccess = "✓"
)

// copiedMsg reports a successful clipboard write for a field label.
type copiedMsg struct {
	label string
}

// copyFailedMsg reports a rejected clipboard write. The failure is logged
// where it happens; the control stays in its default state and no retry is
// attempted.
type copyFailedMsg struct {
	label string
	err   error
}

// copyResetMsg clears the success indicator for a label after the feedback
// window. It carries the label so a timer from a superseded copy is a no-op.
type copyResetMsg struct {
	label string
}

// copyCmd writes text to the system clipboard and reports the outcome for
// the given field label.
func copyCmd(text, label string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriteAll(text); err != nil {
			logging.ClipboardError("copy %s failed: %v", label, err)
			return copyFailedMsg{label: label, err: err}
		}
		logging.ClipboardDebug("copied %s to clipboard", label)
		return copiedMsg{label: label}
	}
}

// copyResetCmd arms the one-shot feedback reset for a label. An earlier
// timer firing late is harmless: the label comparison on receipt ensures
// only the current label's indicator is cleared.
func copyResetCmd(label string) tea.Cmd {
	return tea.Tick(copyFeedbackDuration, func(time.Time) tea.Msg {
		return copyResetMsg{label: label}
	})
}

// renderCopyIndicator renders the copy affordance for a field. It is a pure
// function of (key, label, currently-succeeded label) so it stays
// independent of any page model state.
func renderCopyIndicator(key, label, copiedLabel string, s Styles) string {
	if copiedLabel == label {
		return s.Success.Render(copyIconSuccess + " copied")
	}
	return s.Muted.Render("[" + key + "] " + copyIconDefault)
}
