package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/gitcha"

	"github.com/preferreddeals/prefdeals/pkg/consent"
	"github.com/preferreddeals/prefdeals/pkg/nav"
)

func navigateCmd(in nav.Intent) tea.Cmd {
	return func() tea.Msg { return navigateMsg{intent: in} }
}

func loadConsentCmd(store *consent.Store) tea.Cmd {
	return func() tea.Msg {
		choice, err := store.Load()
		return consentLoadedMsg{choice: choice, err: err}
	}
}

func consentPromptCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return consentPromptMsg{gen: gen}
	})
}

func paymentRedirectCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return paymentDoneMsg{gen: gen}
	})
}

func statusMessageTimeoutCmd(gen int) tea.Cmd {
	return tea.Tick(statusMessageTimeout, func(time.Time) tea.Msg {
		return statusMessageTimeoutMsg{gen: gen}
	})
}

func repaintCmd() tea.Cmd {
	// TODO: drive this off the loader's watcher instead of polling
	return tea.Every(2*time.Second, func(time.Time) tea.Msg {
		return repaintMsg{}
	})
}

// findContentCmd discovers extra *.md pages under dir for the help page.
func findContentCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		if dir == "" {
			return contentFoundMsg{}
		}
		ch, err := gitcha.FindFilesExcept(dir, []string{"*.md"}, nil)
		if err != nil {
			return errMsg{err}
		}
		var paths []string
		for res := range ch {
			paths = append(paths, res.Path)
		}
		return contentFoundMsg{paths: paths}
	}
}
