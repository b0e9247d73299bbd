package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/preferreddeals/prefdeals/pkg/config"
	"github.com/preferreddeals/prefdeals/pkg/consent"
	"github.com/preferreddeals/prefdeals/pkg/db"
	"github.com/preferreddeals/prefdeals/pkg/db/fs"
	"github.com/preferreddeals/prefdeals/pkg/logging"
	"github.com/preferreddeals/prefdeals/pkg/nav"
	"github.com/preferreddeals/prefdeals/pkg/session"
	"github.com/preferreddeals/prefdeals/pkg/store"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

const statusMessageTimeout = time.Second * 2

// Model is the application root. It owns the store (the only mutation
// surface for cross-page state) and one submodel per page; page submodels
// emit messages, never mutate the store themselves.
type Model struct {
	cfg          *config.Config
	store        *store.Store
	directory    db.DirectoryBackend
	consentStore *consent.Store
	log          *zap.SugaredLogger
	keys         keyMap

	width  int
	height int

	consentChoice        v1.CookieConsent
	consentPromptVisible bool
	consentGen           int

	paymentGen     int
	paymentPending bool

	statusMessage string
	statusGen     int

	dir         directoryModel
	detail      detailModel
	login       loginModel
	bizAuth     bizAuthModel
	partnerAuth partnerAuthModel
	dash        dashboardModel
	partner     partnerModel
	userdash    userDashModel
	savedPage   savedModel
	static      staticModel
	pricing     pricingModel
	settings    settingsModel
	contact     contactModel
}

func NewFromConfigFile(path string) (Model, error) {
	cfg, err := config.NewFromFile(path)
	if err != nil {
		return Model{}, err
	}

	logger, err := logging.NewDefault()
	if err != nil {
		// Never let logging stop the app; fall back to a no-op.
		logger = zap.NewNop()
	}
	sugar := logger.Sugar()

	loader, err := fs.New(cfg.Directory, sugar)
	if err != nil {
		return Model{}, fmt.Errorf("unable to open directory storage: %w", err)
	}

	consentStore, err := consent.NewDefaultStore()
	if err != nil {
		return Model{}, err
	}

	return New(cfg, loader, consentStore, sugar), nil
}

// New wires the model from its collaborators. Split from NewFromConfigFile
// so tests can hand in their own.
func New(cfg *config.Config, directory db.DirectoryBackend, consentStore *consent.Store, log *zap.SugaredLogger) Model {
	st := store.New(session.MockAuthenticator{})
	st.SetUserType(cfg.DemoUserType)
	if start, ok := nav.PageFromTag(cfg.StartPage); ok {
		st.Navigate(nav.To(start))
	}

	return Model{
		cfg:          cfg,
		store:        st,
		directory:    directory,
		consentStore: consentStore,
		log:          log,
		keys:         defaultKeyMap(),

		consentChoice: v1.ConsentUnset,

		dir:         newDirectoryModel(),
		detail:      newDetailModel(),
		login:       newLoginModel(),
		bizAuth:     newBizAuthModel(),
		partnerAuth: newPartnerAuthModel(),
		dash:        newDashboardModel(),
		partner:     newPartnerModel(),
		userdash:    newUserDashModel(),
		savedPage:   newSavedModel(),
		static:      newStaticModel(),
		pricing:     newPricingModel(cfg.Plans),
		settings:    newSettingsModel(),
		contact:     newContactModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadConsentCmd(m.consentStore),
		findContentCmd(m.cfg.ContentDirectory),
		repaintCmd(),
	)
}

// capturingInput reports whether the current page owns the keyboard, in
// which case global single-letter bindings must not fire.
func (m Model) capturingInput() bool {
	switch m.store.Router().Current() {
	case nav.PageDirectory:
		return m.dir.filtering
	case nav.PageLogin:
		return true
	case nav.PageManageYourListing, nav.PageListYourBusiness:
		return true
	case nav.PagePartnerDashboardLogin:
		return true
	case nav.PageContactUs:
		return true
	}
	return false
}

// showStatus surfaces an ephemeral notice in the status bar. This is the
// product's whole error-reporting surface; nothing is fatal.
func (m *Model) showStatus(s string) tea.Cmd {
	m.statusMessage = s
	m.statusGen++
	return statusMessageTimeoutCmd(m.statusGen)
}

func (m *Model) decideConsent(choice v1.CookieConsent) tea.Cmd {
	m.consentChoice = choice
	m.consentPromptVisible = false
	m.consentGen++ // a pending prompt tick is now stale
	if err := m.consentStore.Save(choice); err != nil {
		m.log.Errorw("unable to persist consent", "err", err)
		return m.showStatus("could not save your cookie preference")
	}
	return m.showStatus("cookie preference saved")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.setSize(msg.Width, msg.Height)
		m.static.setSize(msg.Width, msg.Height)
		m.dir.setSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.consentPromptVisible {
			switch msg.String() {
			case "y", "Y":
				return m, m.decideConsent(v1.ConsentAccepted)
			case "n", "N":
				return m, m.decideConsent(v1.ConsentDeclined)
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if !m.capturingInput() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Home):
				m.store.Navigate(nav.To(nav.PageHome))
				return m, nil
			case key.Matches(msg, m.keys.Directory):
				m.store.Navigate(nav.To(nav.PageDirectory))
				return m, nil
			case key.Matches(msg, m.keys.SavedDeals):
				m.store.Navigate(nav.To(nav.PageSavedDeals))
				return m, nil
			case key.Matches(msg, m.keys.Help):
				m.store.Navigate(nav.To(nav.PageHelp))
				return m, nil
			}
		}

		if key.Matches(msg, m.keys.Back) {
			return m, m.goBack()
		}

	case navigateMsg:
		m.store.Navigate(msg.intent)
		return m, nil

	case loginSubmitMsg:
		if err := m.store.LoginUser(msg.email, msg.name); err != nil {
			m.log.Infow("login rejected", "err", err)
			return m, m.showStatus(fmt.Sprintf("login failed: %v", err))
		}
		return m, m.showStatus(fmt.Sprintf("welcome back, %s", m.store.Session().UserName))

	case logoutMsg:
		m.store.LogoutUser()
		return m, m.showStatus("logged out")

	case signupBusinessMsg:
		id := m.store.SignupBusiness()
		m.log.Infow("business signup", "id", id)
		return m, m.showStatus("business account created")

	case toggleSaveMsg:
		if !m.store.ToggleSave(msg.id) {
			return m, m.showStatus("log in to save deals")
		}
		if m.store.SavedDeals().Contains(msg.id) {
			return m, m.showStatus("deal saved")
		}
		return m, m.showStatus("deal removed")

	case setUserTypeMsg:
		m.store.SetUserType(msg.t)
		return m, m.showStatus(fmt.Sprintf("viewing as %s", msg.t))

	case openBusinessSignupMsg:
		// CTA path: navigate first, then ask for the signup sub-tab. The
		// manage-your-listing hook would reset it, which is exactly why the
		// preference is set after the navigation.
		m.store.Navigate(nav.To(nav.PageListYourBusiness))
		m.store.Router().SetPreferredLoginTab(nav.FormTabSignup)
		return m, nil

	case openPartnerSignupMsg:
		m.store.Navigate(nav.To(nav.PagePartnerDashboardLogin))
		m.store.Router().SetPreferredPartnerTab(nav.FormTabSignup)
		return m, nil

	case startPaymentMsg:
		m.paymentGen++
		m.paymentPending = true
		cmds = append(cmds,
			m.showStatus("processing payment…"),
			paymentRedirectCmd(m.paymentGen, m.cfg.PaymentRedirectDelay),
		)
		return m, tea.Batch(cmds...)

	case paymentDoneMsg:
		if msg.gen != m.paymentGen || !m.paymentPending {
			// Stale redirect from a torn-down flow; drop it.
			return m, nil
		}
		m.paymentPending = false
		m.store.Navigate(nav.To(nav.PageDashboard))
		return m, m.showStatus("payment recorded (mock)")

	case consentLoadedMsg:
		if msg.err != nil {
			m.log.Errorw("unable to load consent", "err", msg.err)
		}
		m.consentChoice = msg.choice
		if msg.choice == v1.ConsentUnset {
			m.consentGen++
			return m, consentPromptCmd(m.consentGen, m.cfg.CookiePromptDelay)
		}
		return m, nil

	case consentPromptMsg:
		if msg.gen != m.consentGen {
			return m, nil
		}
		m.consentPromptVisible = true
		return m, nil

	case statusMsg:
		return m, m.showStatus(msg.text)

	case statusMessageTimeoutMsg:
		if msg.gen == m.statusGen {
			m.statusMessage = ""
		}
		return m, nil

	case contentFoundMsg:
		m.static.extraPages = msg.paths
		return m, nil

	case repaintMsg:
		return m, repaintCmd()

	case errMsg:
		m.log.Errorw("ui error", "err", msg.err)
		return m, m.showStatus(msg.err.Error())
	}

	// Hand whatever is left to the current page.
	var cmd tea.Cmd
	switch m.store.Router().Current() {
	case nav.PageDirectory:
		m.dir, cmd = m.dir.update(msg, &m)
	case nav.PageListingDetail:
		m.detail, cmd = m.detail.update(msg, &m)
	case nav.PageLogin:
		m.login, cmd = m.login.update(msg, &m)
	case nav.PageManageYourListing, nav.PageListYourBusiness:
		m.bizAuth, cmd = m.bizAuth.update(msg, &m)
	case nav.PagePartnerDashboardLogin:
		m.partnerAuth, cmd = m.partnerAuth.update(msg, &m)
	case nav.PageDashboard:
		m.dash, cmd = m.dash.update(msg, &m)
	case nav.PageDistributionPartner:
		m.partner, cmd = m.partner.update(msg, &m)
	case nav.PageUserDashboard:
		m.userdash, cmd = m.userdash.update(msg, &m)
	case nav.PageSavedDeals:
		m.savedPage, cmd = m.savedPage.update(msg, &m)
	case nav.PagePricing:
		m.pricing, cmd = m.pricing.update(msg, &m)
	case nav.PageSettings:
		m.settings, cmd = m.settings.update(msg, &m)
	case nav.PageContactUs:
		m.contact, cmd = m.contact.update(msg, &m)
	case nav.PageHome:
		cmd = homeUpdate(msg, &m)
	case nav.PageBecomePartner:
		cmd = becomePartnerUpdate(msg)
	default:
		m.static, cmd = m.static.update(msg, &m)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// goBack is the esc behavior: detail returns to the directory, everything
// else returns home.
func (m *Model) goBack() tea.Cmd {
	switch m.store.Router().Current() {
	case nav.PageListingDetail:
		m.store.Navigate(nav.To(nav.PageDirectory))
	case nav.PageHome:
		// nowhere further back to go
	default:
		m.store.Navigate(nav.To(nav.PageHome))
	}
	return nil
}

func (m Model) View() string {
	var body string
	switch m.store.Router().Current() {
	case nav.PageHome:
		body = homeView(&m)
	case nav.PageDirectory:
		body = m.dir.view(&m)
	case nav.PageListingDetail:
		body = m.detail.view(&m)
	case nav.PageLogin:
		body = m.login.view(&m)
	case nav.PageManageYourListing, nav.PageListYourBusiness:
		body = m.bizAuth.view(&m)
	case nav.PagePartnerDashboardLogin:
		body = m.partnerAuth.view(&m)
	case nav.PageDashboard:
		body = m.dash.view(&m)
	case nav.PageDistributionPartner:
		body = m.partner.view(&m)
	case nav.PageUserDashboard:
		body = m.userdash.view(&m)
	case nav.PageSavedDeals:
		body = m.savedPage.view(&m)
	case nav.PagePricing:
		body = m.pricing.view(&m)
	case nav.PageSettings:
		body = m.settings.view(&m)
	case nav.PageContactUs:
		body = m.contact.view(&m)
	case nav.PageBecomePartner:
		body = becomePartnerView(&m)
	default:
		body = m.static.view(&m)
	}

	return m.shellView(body)
}
