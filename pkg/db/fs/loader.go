package fs

import (
	"embed"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/preferreddeals/prefdeals/pkg/db"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

var (
	StorageGlob = "*.yaml"

	//go:embed defaults/*.yaml
	defaultListings embed.FS
)

// Loader serves the directory from one yaml file per listing. Files edited
// while the app runs are reconciled by an fsnotify watcher, so the directory
// page always reflects what is on disk.
type Loader struct {
	*sync.Mutex
	Directory string        `validate:"required,dir"`
	status    v1.SyncStatus `validate:"required"`
	listings  map[v1.ID]*v1.Listing

	log     *zap.SugaredLogger
	watcher *fsnotify.Watcher
}

// New creates a loader over dir, creating and seeding it with the bundled
// sample listings when it is missing or empty.
func New(dir string, logger *zap.SugaredLogger) (*Loader, error) {
	expandedPath, err := homedir.Expand(dir)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	l := Loader{
		Mutex:     &sync.Mutex{},
		Directory: expandedPath,
		status:    v1.StatusUninitialized,
		listings:  map[v1.ID]*v1.Listing{},
		log:       logger,
	}

	finfo, err := os.Stat(expandedPath)
	if err != nil || !finfo.IsDir() {
		if err := os.MkdirAll(expandedPath, 0o700); err != nil {
			return nil, fmt.Errorf("error creating %s: %w", l.Directory, err)
		}
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("error validating storage provider: %w", err)
	}

	listingFiles, err := filepath.Glob(path.Join(expandedPath, StorageGlob))
	if err != nil {
		return nil, err
	}
	if len(listingFiles) == 0 {
		if listingFiles, err = l.seed(); err != nil {
			return nil, fmt.Errorf("unable to seed sample listings: %w", err)
		}
	}

	for _, fn := range listingFiles {
		lst, err := l.LoadFromFile(fn)
		if err != nil {
			return nil, err
		}
		l.listings[lst.ID] = lst
	}

	if err := l.startWatcher(); err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}

	l.status = v1.StatusOK
	return &l, nil
}

// seed copies the bundled sample listings into an empty directory so a first
// run has something to browse.
func (x *Loader) seed() ([]string, error) {
	names, err := defaultListings.ReadDir("defaults")
	if err != nil {
		return nil, err
	}

	var written []string
	for _, de := range names {
		bytes, err := defaultListings.ReadFile(path.Join("defaults", de.Name()))
		if err != nil {
			return nil, err
		}
		target := path.Join(x.Directory, de.Name())
		if err := ioutil.WriteFile(target, bytes, 0o600); err != nil {
			return nil, err
		}
		written = append(written, target)
	}
	x.log.Infow("seeded sample listings", "count", len(written), "dir", x.Directory)
	return written, nil
}

func (x *Loader) startWatcher() error {
	if x.watcher != nil {
		_ = x.watcher.Close()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(x.Directory); err != nil {
		return fmt.Errorf("unable to watch %s: %w", x.Directory, err)
	}
	x.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					if err := x.reconcilePath(event.Name); err != nil {
						x.log.Errorw("error reconciling listing", "path", event.Name, "err", err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				x.log.Errorw("watcher error", "err", err)
			}
		}
	}()
	return nil
}

func (x *Loader) reconcilePath(fn string) error {
	if ok, _ := path.Match(StorageGlob, path.Base(fn)); !ok {
		return nil
	}
	lst, err := x.LoadFromFile(fn)
	if err != nil {
		return err
	}
	x.Lock()
	defer x.Unlock()
	x.listings[lst.ID] = lst
	return nil
}

func (x *Loader) Validate() error {
	validate := validator.New()
	return validate.Struct(*x)
}

func (x *Loader) LoadFromFile(fn string) (*v1.Listing, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", fn, err)
	}
	defer f.Close()
	return x.LoadFromReader(f)
}

func (x *Loader) LoadFromReader(r io.Reader) (*v1.Listing, error) {
	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read listing: %w", err)
	}

	var lst v1.Listing
	if err := yaml.Unmarshal(bytes, &lst); err != nil {
		return nil, fmt.Errorf("unable to unmarshal listing: %w", err)
	}
	if err := lst.Validate(); err != nil {
		return nil, fmt.Errorf("listing validation error: %w", err)
	}
	return &lst, nil
}

func (x *Loader) HasListing(id v1.ID) bool {
	x.Lock()
	defer x.Unlock()
	_, ok := x.listings[id]
	return ok
}

// Get returns a listing. With hardread the file is re-read from disk first.
func (x *Loader) Get(id v1.ID, hardread bool) (*v1.Listing, error) {
	if hardread {
		if err := x.reconcilePath(x.StoragePath(id)); err != nil {
			return nil, err
		}
	}
	x.Lock()
	defer x.Unlock()
	if lst, ok := x.listings[id]; ok {
		return lst, nil
	}
	return nil, db.ErrNoListingFound
}

// ListAll returns every listing, premium placements first.
func (x *Loader) ListAll() ([]*v1.Listing, error) {
	x.Lock()
	defer x.Unlock()
	all := make([]*v1.Listing, 0, len(x.listings))
	for _, lst := range x.listings {
		all = append(all, lst)
	}
	sort.Sort(v1.ByPlacement(all))
	return all, nil
}

func (x *Loader) Count() int {
	x.Lock()
	defer x.Unlock()
	return len(x.listings)
}

func (x *Loader) StoragePath(id v1.ID) string {
	return path.Join(x.Directory, fmt.Sprintf("%s.yaml", id))
}

func (x *Loader) Status() v1.SyncStatus {
	return x.status
}

func (x *Loader) Close() error {
	if x.watcher != nil {
		return x.watcher.Close()
	}
	return nil
}
