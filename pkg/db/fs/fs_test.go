package fs

import (
	"io/ioutil"
	"testing"

	"github.com/preferreddeals/prefdeals/pkg/db"
)

var (
	minListings = 3
)

func TestNewSeedsEmptyDirectory(t *testing.T) {
	loader, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer loader.Close()

	listings, err := loader.ListAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(listings) <= minListings {
		t.Fatalf("expected more than %d seeded listings, but found %d", minListings, len(listings))
	}

	for _, l := range listings {
		if !loader.HasListing(l.ID) {
			t.Errorf("listing %s not indexed", l.ID)
		}
		got, err := loader.Get(l.ID, false)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != l.Name {
			t.Errorf("expected %q, got %q", l.Name, got.Name)
		}
	}
}

func TestListAllPutsPremiumFirst(t *testing.T) {
	loader, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer loader.Close()

	listings, err := loader.ListAll()
	if err != nil {
		t.Fatal(err)
	}

	seenRegular := false
	for _, l := range listings {
		if !l.Premium {
			seenRegular = true
		} else if seenRegular {
			t.Fatalf("premium listing %s sorted after a regular one", l.ID)
		}
	}
}

func TestGetUnknownListing(t *testing.T) {
	loader, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer loader.Close()

	if _, err := loader.Get("no-such-business", false); err != db.ErrNoListingFound {
		t.Fatalf("expected ErrNoListingFound, got %v", err)
	}
}

func TestReconcilePicksUpEditedFile(t *testing.T) {
	loader, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer loader.Close()

	path := loader.StoragePath("brooklyn-bagel-co")
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	edited := []byte(string(bytes))
	edited = append(edited, []byte("\n")...)
	if err := ioutil.WriteFile(path, edited, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := loader.reconcilePath(path); err != nil {
		t.Fatal(err)
	}

	if _, err := loader.Get("brooklyn-bagel-co", true); err != nil {
		t.Fatal(err)
	}
}
