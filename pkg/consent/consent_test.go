package consent

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "cookie-consent.yaml"))
}

func TestLoadMissingFileIsUnset(t *testing.T) {
	s := tempStore(t)
	c, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, v1.ConsentUnset, c)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Save(v1.ConsentAccepted))
	c, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, v1.ConsentAccepted, c)

	require.NoError(t, s.Save(v1.ConsentDeclined))
	c, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, v1.ConsentDeclined, c)
}

func TestLoadUnknownValueDegradesToUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie-consent.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("cookieConsent: maybe\n"), 0o600))

	c, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, v1.ConsentUnset, c)
}
