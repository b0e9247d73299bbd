// Package consent persists the cookie-consent choice, the single piece of
// state that outlives the process. Everything else resets on restart.
package consent

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/preferreddeals/prefdeals/pkg/runtime"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

type Store struct {
	path string
}

type flagFile struct {
	CookieConsent v1.CookieConsent `yaml:"cookieConsent"`
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewDefaultStore places the flag file under the XDG state dir.
func NewDefaultStore() (*Store, error) {
	p, err := runtime.StateFile("cookie-consent.yaml")
	if err != nil {
		return nil, fmt.Errorf("unable to resolve consent path: %w", err)
	}
	return NewStore(p), nil
}

// Load reads the stored choice. A missing file means the user was never
// asked; that is ConsentUnset, not an error.
func (s *Store) Load() (v1.CookieConsent, error) {
	bytes, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return v1.ConsentUnset, nil
		}
		return v1.ConsentUnset, fmt.Errorf("unable to read consent flag: %w", err)
	}

	var f flagFile
	if err := yaml.Unmarshal(bytes, &f); err != nil {
		return v1.ConsentUnset, fmt.Errorf("unable to unmarshal consent flag: %w", err)
	}

	switch f.CookieConsent {
	case v1.ConsentAccepted, v1.ConsentDeclined:
		return f.CookieConsent, nil
	default:
		// Unknown values degrade to asking again.
		return v1.ConsentUnset, nil
	}
}

// Save records the user's choice.
func (s *Store) Save(c v1.CookieConsent) error {
	bytes, err := yaml.Marshal(flagFile{CookieConsent: c})
	if err != nil {
		return fmt.Errorf("unable to marshal consent flag: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("unable to create consent dir: %w", err)
	}
	if err := ioutil.WriteFile(s.path, bytes, 0o600); err != nil {
		return fmt.Errorf("unable to write consent flag: %w", err)
	}
	return nil
}
