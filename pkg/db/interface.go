package db

import (
	"fmt"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

var (
	ErrNoListingFound = fmt.Errorf("no listing found")
)

// DirectoryBackend is the interface any provider satisfies to supply the
// business directory. fs.Loader implements this over local yaml files.
type DirectoryBackend interface {
	HasListing(v1.ID) bool
	Get(id v1.ID, hardread bool) (*v1.Listing, error)
	ListAll() ([]*v1.Listing, error)
	Count() int
	StoragePath(v1.ID) string

	Status() v1.SyncStatus
	Validate() error
}
