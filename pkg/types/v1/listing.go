package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"
)

// Listing is a single directory entry: a local business, optionally carrying
// a deal and a premium placement flag.
type Listing struct {
	ListingMetadata `yaml:"metadata" validate:"required"`
	Description     string `yaml:"description,omitempty" validate:""`
	// Deal is markdown promoted on the listing card and detail page.
	Deal string `yaml:"deal,omitempty" validate:""`
}

type ListingMetadata struct {
	ID                ID        `yaml:"id" validate:"required"`
	Name              string    `yaml:"name" validate:"required"`
	Category          string    `yaml:"category" validate:"required"`
	Location          string    `yaml:"location" validate:"required"`
	Phone             string    `yaml:"phone,omitempty" validate:""`
	Email             string    `yaml:"email,omitempty" validate:"omitempty,email"`
	Website           string    `yaml:"website,omitempty" validate:"omitempty,url"`
	Premium           bool      `yaml:"premium,omitempty" validate:""`
	CreationTimestamp time.Time `yaml:"created" validate:"required"`
	Tags              []string  `yaml:"tags,omitempty" validate:"unique"`
	Hours             *Hours    `yaml:"hours,omitempty" validate:""`
}

// Hours describes when a business is open, as offsets from midnight local
// time. Businesses with no Hours never render an open/closed badge.
type Hours struct {
	Open         time.Duration `yaml:"open" validate:"required"`
	Close        time.Duration `yaml:"close" validate:"required,gtfield=Open"`
	OpenWeekends bool          `yaml:"openWeekends,omitempty"`
	OpenHolidays bool          `yaml:"openHolidays,omitempty"`
}

// UnmarshalYAML accepts durations in the "8h30m" form listing files use.
func (h *Hours) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Open         string `yaml:"open"`
		Close        string `yaml:"close"`
		OpenWeekends bool   `yaml:"openWeekends"`
		OpenHolidays bool   `yaml:"openHolidays"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	open, err := time.ParseDuration(raw.Open)
	if err != nil {
		return fmt.Errorf("unable to parse open hour %q: %w", raw.Open, err)
	}
	close, err := time.ParseDuration(raw.Close)
	if err != nil {
		return fmt.Errorf("unable to parse close hour %q: %w", raw.Close, err)
	}

	h.Open = open
	h.Close = close
	h.OpenWeekends = raw.OpenWeekends
	h.OpenHolidays = raw.OpenHolidays
	return nil
}

func (h Hours) MarshalYAML() (interface{}, error) {
	return struct {
		Open         string `yaml:"open"`
		Close        string `yaml:"close"`
		OpenWeekends bool   `yaml:"openWeekends,omitempty"`
		OpenHolidays bool   `yaml:"openHolidays,omitempty"`
	}{
		Open:         h.Open.String(),
		Close:        h.Close.String(),
		OpenWeekends: h.OpenWeekends,
		OpenHolidays: h.OpenHolidays,
	}, nil
}

func (l *Listing) HasDeal() bool {
	return l.Deal != ""
}

func (l *Listing) Validate() error {
	validate := validator.New()
	return validate.Struct(*l)
}

type ByName []*Listing

func (p ByName) Len() int {
	return len(p)
}

func (p ByName) Less(i, j int) bool {
	return p[i].Name < p[j].Name
}

func (p ByName) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

// ByPlacement sorts premium listings first, then by name. This is the order
// the directory page renders.
type ByPlacement []*Listing

func (p ByPlacement) Len() int {
	return len(p)
}

func (p ByPlacement) Less(i, j int) bool {
	if p[i].Premium != p[j].Premium {
		return p[i].Premium
	}
	return p[i].Name < p[j].Name
}

func (p ByPlacement) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}
