package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	runewidth "github.com/mattn/go-runewidth"
	te "github.com/muesli/termenv"

	"github.com/preferreddeals/prefdeals/pkg/hours"
	"github.com/preferreddeals/prefdeals/pkg/nav"
	"github.com/preferreddeals/prefdeals/pkg/text"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

const directoryPageSize = 8

type directoryModel struct {
	filterInput textinput.Model
	filtering   bool
	paginator   paginator.Model
	cursor      int
	width       int
	height      int
}

func newDirectoryModel() directoryModel {
	ti := textinput.NewModel()
	ti.Prompt = "/ "
	ti.Placeholder = "filter listings"
	ti.CharLimit = 64

	p := paginator.NewModel()
	p.Type = paginator.Dots
	p.PerPage = directoryPageSize

	return directoryModel{
		filterInput: ti,
		paginator:   p,
	}
}

func (d *directoryModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

// visible applies the sticky category/location filters, then the live fuzzy
// filter, preserving premium-first order for unfiltered views.
func (d directoryModel) visible(m *Model) []*v1.Listing {
	all, err := m.directory.ListAll()
	if err != nil {
		m.log.Errorw("unable to list directory", "err", err)
		return nil
	}

	category, location := m.store.Router().Filters()
	narrowed := make([]*v1.Listing, 0, len(all))
	for _, l := range all {
		if category != "" && !strings.EqualFold(l.Category, category) {
			continue
		}
		if location != "" && !strings.EqualFold(l.Location, location) {
			continue
		}
		narrowed = append(narrowed, l)
	}

	needle := d.filterInput.Value()
	if strings.TrimSpace(needle) == "" {
		return narrowed
	}

	haystack := make([]string, len(narrowed))
	for i, l := range narrowed {
		haystack[i] = fmt.Sprintf("%s %s %s %s", l.Name, l.Category, l.Location, strings.Join(l.Tags, " "))
	}
	matched := make([]*v1.Listing, 0, len(narrowed))
	for _, idx := range text.FilterRanked(needle, haystack) {
		matched = append(matched, narrowed[idx])
	}
	return matched
}

func (d directoryModel) selected(m *Model) *v1.Listing {
	visible := d.visible(m)
	start, _ := d.paginator.GetSliceBounds(len(visible))
	i := start + d.cursor
	if i < 0 || i >= len(visible) {
		return nil
	}
	return visible[i]
}

func (d directoryModel) update(msg tea.Msg, m *Model) (directoryModel, tea.Cmd) {
	visible := d.visible(m)
	d.paginator.SetTotalPages(len(visible))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if d.filtering {
			switch msg.String() {
			case "enter":
				d.filtering = false
				d.filterInput.Blur()
				return d, nil
			case "esc":
				d.filtering = false
				d.filterInput.Reset()
				d.filterInput.Blur()
				return d, nil
			default:
				var cmd tea.Cmd
				d.filterInput, cmd = d.filterInput.Update(msg)
				d.cursor = 0
				d.paginator.Page = 0
				return d, cmd
			}
		}

		switch msg.String() {
		case "/":
			d.filtering = true
			d.filterInput.Focus()
			return d, textinput.Blink
		case "down", "j":
			if d.cursor < d.paginator.ItemsOnPage(len(visible))-1 {
				d.cursor++
			}
		case "up", "k":
			if d.cursor > 0 {
				d.cursor--
			}
		case "right", "l":
			if !d.paginator.OnLastPage() {
				d.paginator.NextPage()
				d.cursor = 0
			}
		case "left", "h":
			if d.paginator.Page > 0 {
				d.paginator.PrevPage()
				d.cursor = 0
			}
		case "c":
			// clear the sticky filters by re-entering the directory bare
			return d, navigateCmd(nav.To(nav.PageDirectory))
		case "enter":
			if l := d.selected(m); l != nil {
				return d, navigateCmd(nav.ToListing(l.ID))
			}
		case "b":
			if l := d.selected(m); l != nil {
				id := l.ID
				return d, func() tea.Msg { return toggleSaveMsg{id: id} }
			}
		}
	}

	return d, nil
}

func (d directoryModel) view(m *Model) string {
	visible := d.visible(m)
	d.paginator.SetTotalPages(len(visible))

	var b strings.Builder

	category, location := m.store.Router().Filters()
	title := "Directory"
	if category != "" || location != "" {
		title += faintStyle(fmt.Sprintf("  (%s)", describeFilters(category, location)))
	}
	b.WriteString(sectionTitle(title))
	b.WriteString("\n")

	if d.filtering || d.filterInput.Value() != "" {
		b.WriteString(d.filterInput.View())
		b.WriteString("\n\n")
	}

	if len(visible) == 0 {
		b.WriteString(faintStyle("nothing here — adjust your filters with 'c' or '/'"))
		b.WriteString("\n")
		return b.String()
	}

	start, end := d.paginator.GetSliceBounds(len(visible))
	for i, l := range visible[start:end] {
		b.WriteString(d.rowView(m, l, i == d.cursor))
		b.WriteString("\n")
	}

	if d.paginator.TotalPages > 1 {
		b.WriteString("\n")
		b.WriteString("  " + d.paginator.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle("enter: view" + divider + "b: save deal" + divider + "/: filter" + divider + "c: clear filters"))
	return b.String()
}

func (d directoryModel) rowView(m *Model, l *v1.Listing, focused bool) string {
	bullet := "  "
	if focused {
		bullet = "> "
	}

	name := l.Name
	maxName := 32
	if runewidth.StringWidth(name) > maxName {
		name = text.TruncateWithTail(name, uint(maxName), text.Ellipsis)
	}
	if needle := d.filterInput.Value(); needle != "" {
		name = text.StyleFilteredText(name, needle, te.Style{})
	}

	badges := []string{}
	if l.Premium {
		badges = append(badges, premiumStyle(text.EmojiPremium))
	}
	if l.HasDeal() {
		badges = append(badges, text.EmojiDeal)
	}
	if m.store.SavedDeals().Contains(l.ID) {
		badges = append(badges, text.EmojiSaved)
	}
	if open, known := hours.OpenAt(l, time.Now()); known {
		if open {
			badges = append(badges, text.EmojiOpen)
		} else {
			badges = append(badges, text.EmojiClosed)
		}
	}

	meta := faintStyle(fmt.Sprintf("%s %s, %s", text.CategoryEmoji(l.Category), l.Category, l.Location))

	row := fmt.Sprintf("%s%s  %s  %s", bullet, name, strings.Join(badges, " "), meta)
	if len(l.Tags) > 0 {
		row += "  " + text.ColoredTags(l.Tags, " ")
	}
	return row
}

func describeFilters(category, location string) string {
	switch {
	case category != "" && location != "":
		return category + " in " + location
	case category != "":
		return category
	case location != "":
		return location
	}
	return ""
}
