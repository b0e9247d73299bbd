package v1

// ID identifies a listing/business in the directory.
type ID string

// UserType is a coarse role tag used only to alter which affordances are
// visible. It carries no authorization weight.
type UserType string

const (
	UserTypeUser         UserType = "user"
	UserTypePartner      UserType = "partner"
	UserTypeDistribution UserType = "distribution"
	UserTypeAdmin        UserType = "admin"
)

// CookieConsent is the only state that survives a restart.
type CookieConsent string

const (
	ConsentUnset    CookieConsent = "unset"
	ConsentAccepted CookieConsent = "accepted"
	ConsentDeclined CookieConsent = "declined"
)

type SyncStatus string

const (
	StatusUninitialized SyncStatus = "uninitialized"
	StatusOK            SyncStatus = "ok"
	StatusError         SyncStatus = "error"
)

type ByID []ID

func (p ByID) Len() int {
	return len(p)
}

func (p ByID) Less(i, j int) bool {
	return p[i] < p[j]
}

func (p ByID) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}
