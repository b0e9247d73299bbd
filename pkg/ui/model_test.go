package ui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/preferreddeals/prefdeals/pkg/config"
	"github.com/preferreddeals/prefdeals/pkg/consent"
	"github.com/preferreddeals/prefdeals/pkg/nav"
	"github.com/preferreddeals/prefdeals/pkg/text"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

// stubDirectory satisfies db.DirectoryBackend without touching disk.
type stubDirectory struct {
	listings map[v1.ID]*v1.Listing
}

func newStubDirectory() stubDirectory {
	return stubDirectory{listings: map[v1.ID]*v1.Listing{
		"test-spot": {ListingMetadata: v1.ListingMetadata{
			ID:       "test-spot",
			Name:     "Test Spot",
			Category: "Cafe",
			Location: "Testville",
		}, Deal: "2 for 1"},
	}}
}

func (s stubDirectory) HasListing(id v1.ID) bool {
	_, ok := s.listings[id]
	return ok
}

func (s stubDirectory) Get(id v1.ID, hardread bool) (*v1.Listing, error) {
	l, ok := s.listings[id]
	if !ok {
		return nil, assert.AnError
	}
	return l, nil
}

func (s stubDirectory) ListAll() ([]*v1.Listing, error) {
	ls := make([]*v1.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		ls = append(ls, l)
	}
	return ls, nil
}

func (s stubDirectory) Count() int               { return len(s.listings) }
func (s stubDirectory) StoragePath(v1.ID) string { return "" }
func (s stubDirectory) Status() v1.SyncStatus    { return v1.StatusOK }
func (s stubDirectory) Validate() error          { return nil }

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default
	cs := consent.NewStore(filepath.Join(t.TempDir(), "consent.yaml"))
	return New(&cfg, newStubDirectory(), cs, zap.NewNop().Sugar())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	nm, _ := m.Update(msg)
	next, ok := nm.(Model)
	require.True(t, ok)
	return next
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigateMsgChangesPage(t *testing.T) {
	m := testModel(t)
	m = update(t, m, navigateMsg{intent: nav.To(nav.PagePricing)})
	assert.Equal(t, nav.PagePricing, m.store.Router().Current())
}

func TestLoginSuccessLandsOnDirectory(t *testing.T) {
	m := testModel(t)
	m = update(t, m, loginSubmitMsg{email: "pat@example.com", name: "Pat"})
	assert.True(t, m.store.Session().UserLoggedIn)
	assert.Equal(t, nav.PageDirectory, m.store.Router().Current())
	assert.NotEmpty(t, m.statusMessage)
}

func TestLoginFailureLeavesPageAlone(t *testing.T) {
	m := testModel(t)
	m = update(t, m, navigateMsg{intent: nav.To(nav.PageLogin)})

	m = update(t, m, loginSubmitMsg{email: "not-an-email", name: "Pat"})
	assert.False(t, m.store.Session().UserLoggedIn)
	assert.Equal(t, nav.PageLogin, m.store.Router().Current())
}

func TestToggleSaveWhileLoggedOutRedirects(t *testing.T) {
	m := testModel(t)
	m = update(t, m, toggleSaveMsg{id: "test-spot"})

	assert.Equal(t, 0, m.store.SavedDeals().Len())
	assert.Equal(t, nav.PageLogin, m.store.Router().Current())
}

func TestToggleSaveWhileLoggedIn(t *testing.T) {
	m := testModel(t)
	m = update(t, m, loginSubmitMsg{email: "pat@example.com", name: "Pat"})

	m = update(t, m, toggleSaveMsg{id: "test-spot"})
	assert.True(t, m.store.SavedDeals().Contains("test-spot"))

	m = update(t, m, toggleSaveMsg{id: "test-spot"})
	assert.False(t, m.store.SavedDeals().Contains("test-spot"))
}

func TestStaleConsentPromptDropped(t *testing.T) {
	m := testModel(t)
	m.consentGen = 2

	m = update(t, m, consentPromptMsg{gen: 1})
	assert.False(t, m.consentPromptVisible)

	m = update(t, m, consentPromptMsg{gen: 2})
	assert.True(t, m.consentPromptVisible)
}

func TestConsentDecisionPersistsAndDismisses(t *testing.T) {
	m := testModel(t)
	m.consentPromptVisible = true

	m = update(t, m, keyMsg("y"))
	assert.False(t, m.consentPromptVisible)
	assert.Equal(t, v1.ConsentAccepted, m.consentChoice)

	choice, err := m.consentStore.Load()
	require.NoError(t, err)
	assert.Equal(t, v1.ConsentAccepted, choice)
}

func TestStalePaymentDoneDropped(t *testing.T) {
	m := testModel(t)
	m = update(t, m, loginSubmitMsg{email: "pat@example.com", name: "Pat"})
	m = update(t, m, signupBusinessMsg{})
	require.Equal(t, nav.PageDashboard, m.store.Router().Current())

	m = update(t, m, startPaymentMsg{})
	require.True(t, m.paymentPending)

	// A tick from an abandoned flow must not complete the current one.
	m = update(t, m, paymentDoneMsg{gen: m.paymentGen - 1})
	assert.True(t, m.paymentPending)

	m = update(t, m, paymentDoneMsg{gen: m.paymentGen})
	assert.False(t, m.paymentPending)
	assert.Equal(t, nav.PageDashboard, m.store.Router().Current())
}

func TestBusinessSignupCTAPrefersSignupTab(t *testing.T) {
	m := testModel(t)
	m = update(t, m, openBusinessSignupMsg{})

	assert.Equal(t, nav.PageListYourBusiness, m.store.Router().Current())
	assert.Equal(t, nav.FormTabSignup, m.store.Router().PreferredLoginTab())
	assert.Contains(t, m.bizAuth.view(&m), "Create a business account")
}

func TestPlainNavigationResetsAuthTab(t *testing.T) {
	m := testModel(t)
	m = update(t, m, openBusinessSignupMsg{})
	require.Equal(t, nav.FormTabSignup, m.store.Router().PreferredLoginTab())

	// Re-entering through a plain navigation must land on the login tab,
	// both in the router and in what the page actually renders.
	m = update(t, m, navigateMsg{intent: nav.To(nav.PageManageYourListing)})
	assert.Equal(t, nav.FormTabLogin, m.store.Router().PreferredLoginTab())
	assert.Contains(t, m.bizAuth.view(&m), "Log in to manage your listing")
	assert.NotContains(t, m.bizAuth.view(&m), "Create a business account")
}

func TestPartnerPlainNavigationResetsAuthTab(t *testing.T) {
	m := testModel(t)
	m = update(t, m, openPartnerSignupMsg{})
	require.Equal(t, nav.FormTabSignup, m.store.Router().PreferredPartnerTab())
	require.Contains(t, m.partnerAuth.view(&m), "Apply to run")

	m = update(t, m, navigateMsg{intent: nav.To(nav.PagePartnerDashboardLogin)})
	assert.Equal(t, nav.FormTabLogin, m.store.Router().PreferredPartnerTab())
	assert.Contains(t, m.partnerAuth.view(&m), "Log in to your partner dashboard")
}

func TestDirectoryRowShowsOpenBadge(t *testing.T) {
	m := testModel(t)
	l := &v1.Listing{ListingMetadata: v1.ListingMetadata{
		ID:       "always-open",
		Name:     "Always Open",
		Category: "Cafe",
		Location: "Testville",
		Hours: &v1.Hours{
			Open:         0,
			Close:        24 * time.Hour,
			OpenWeekends: true,
			OpenHolidays: true,
		},
	}}

	row := m.dir.rowView(&m, l, false)
	assert.Contains(t, row, text.EmojiOpen)
	assert.NotContains(t, row, text.EmojiClosed)
}

func TestLogoutClearsSavedDeals(t *testing.T) {
	m := testModel(t)
	m = update(t, m, loginSubmitMsg{email: "pat@example.com", name: "Pat"})
	m = update(t, m, toggleSaveMsg{id: "test-spot"})
	require.Equal(t, 1, m.store.SavedDeals().Len())

	m = update(t, m, logoutMsg{})
	assert.Equal(t, 0, m.store.SavedDeals().Len())
	assert.False(t, m.store.Session().UserLoggedIn)
}
