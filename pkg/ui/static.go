package ui

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/preferreddeals/prefdeals/pkg/nav"
)

//go:embed content/*.md
var contentFS embed.FS

// contentFiles maps informational pages to their embedded markdown.
var contentFiles = map[nav.Page]string{
	nav.PageTerms:   "content/terms.md",
	nav.PagePrivacy: "content/privacy.md",
	nav.PageCookies: "content/cookies.md",
	nav.PageAbout:   "content/about.md",
	nav.PageHelp:    "content/help.md",
}

// staticModel renders the informational pages (terms, privacy, cookies,
// about, help) through glamour in a scrollable viewport.
type staticModel struct {
	viewport    viewport.Model
	renderedFor nav.Page
	rendered    bool
	extraPages  []string
	width       int
	height      int
}

func newStaticModel() staticModel {
	return staticModel{viewport: viewport.Model{Width: 80, Height: 20}}
}

func (s *staticModel) setSize(w, h int) {
	s.width = w
	s.height = h
	s.viewport.Width = w
	s.viewport.Height = max(5, h-8)
	s.rendered = false
}

func (s staticModel) markdownFor(page nav.Page) string {
	file, ok := contentFiles[page]
	if !ok {
		return fmt.Sprintf("# %s\n\nNothing here yet.\n", page)
	}
	bytes, err := contentFS.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("# %s\n\nNothing here yet.\n", page)
	}
	md := string(bytes)

	if page == nav.PageHelp && len(s.extraPages) > 0 {
		var b strings.Builder
		b.WriteString(md)
		b.WriteString("\n## More guides\n\n")
		for _, p := range s.extraPages {
			fmt.Fprintf(&b, "- %s\n", path.Base(p))
		}
		md = b.String()
	}
	return md
}

func (s staticModel) render(page nav.Page) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(s.width-4, 100)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(s.markdownFor(page))
}

func (s staticModel) update(msg tea.Msg, m *Model) (staticModel, tea.Cmd) {
	page := m.store.Router().Current()

	if !s.rendered || s.renderedFor != page {
		if content, err := s.render(page); err == nil {
			s.viewport.SetContent(content)
			s.viewport.GotoTop()
			s.renderedFor = page
			s.rendered = true
		} else {
			m.log.Errorw("unable to render page", "page", page.String(), "err", err)
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s staticModel) view(m *Model) string {
	page := m.store.Router().Current()

	if s.rendered && s.renderedFor == page {
		return s.viewport.View()
	}

	// First frame after navigation; render into a local copy.
	content, err := s.render(page)
	if err != nil {
		m.log.Errorw("unable to render page", "page", page.String(), "err", err)
		return warnStyle("unable to render this page")
	}
	vp := s.viewport
	vp.SetContent(content)
	return vp.View()
}
