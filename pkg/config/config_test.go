package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

func TestMissingFileFallsBackToDefault(t *testing.T) {
	c, err := NewFromFile("/nonexistent/prefdeals.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default.Brand, c.Brand)
	assert.Equal(t, Default.StartPage, c.StartPage)
	assert.Len(t, c.Plans, 3)
}

func TestReaderOverridesMergeOverDefaults(t *testing.T) {
	c, err := NewFromReader(strings.NewReader(`
brand: Deals R Us
startPage: directory
demoUserType: partner
`))
	require.NoError(t, err)
	assert.Equal(t, "Deals R Us", c.Brand)
	assert.Equal(t, "directory", c.StartPage)
	assert.Equal(t, v1.UserTypePartner, c.DemoUserType)
	// untouched fields keep their defaults
	assert.Equal(t, Default.Directory, c.Directory)
	assert.Equal(t, Default.CookiePromptDelay, c.CookiePromptDelay)
}

func TestInvalidDemoUserTypeRejected(t *testing.T) {
	_, err := NewFromReader(strings.NewReader(`demoUserType: superuser`))
	assert.Error(t, err)
}

func TestDuplicatePlanNamesRejected(t *testing.T) {
	_, err := NewFromReader(strings.NewReader(`
plans:
  - name: Starter
    monthlyCents: 1000
  - name: Starter
    monthlyCents: 2000
`))
	assert.Error(t, err)
}
