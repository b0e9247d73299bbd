package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

var (
	// Default is the configuration used beneath whatever the user's file
	// overrides.
	Default = Config{
		Directory:            "~/.prefdeals.d",
		Brand:                "Preferred Deals",
		Tagline:              "local businesses, better deals",
		StartPage:            "home",
		CookiePromptDelay:    2 * time.Second,
		PaymentRedirectDelay: 3 * time.Second,
		DemoUserType:         v1.UserTypeUser,
		Plans: []v1.Plan{
			{Name: "Starter", MonthlyCents: 1900, AnnualDiscountPercent: 10},
			{Name: "Growth", MonthlyCents: 4900, AnnualDiscountPercent: 15},
			{Name: "Premium", MonthlyCents: 9900, AnnualDiscountPercent: 20},
		},
	}
)

type Config struct {
	// Directory holds the listing files served by the directory page.
	Directory string `yaml:"directory" validate:"required"`
	// ContentDirectory optionally holds extra markdown pages surfaced under
	// help. Empty disables discovery.
	ContentDirectory     string        `yaml:"contentDirectory,omitempty" validate:""`
	Brand                string        `yaml:"brand" validate:"required"`
	Tagline              string        `yaml:"tagline,omitempty" validate:""`
	StartPage            string        `yaml:"startPage" validate:"required"`
	CookiePromptDelay    time.Duration `yaml:"cookiePromptDelay" validate:"required"`
	PaymentRedirectDelay time.Duration `yaml:"paymentRedirectDelay" validate:"required"`
	DemoUserType         v1.UserType   `yaml:"demoUserType" validate:"required,oneof=user partner distribution admin"`
	Plans                []v1.Plan     `yaml:"plans" validate:"required,unique=Name,dive"`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	validate := validator.New()
	err = validate.Struct(c)
	if err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &c, nil
}

// NewFromFile loads the user's config, falling back to defaults when the
// file does not exist.
func NewFromFile(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			c := Default
			return &c, nil
		}
		return nil, fmt.Errorf("unable to open config %s: %w", expanded, err)
	}
	defer f.Close()

	return NewFromReader(f)
}
