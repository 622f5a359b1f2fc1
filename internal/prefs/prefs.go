// ABOUTME: Local UI preference store backed by badger.
// ABOUTME: Holds display settings only; workout data always stays on the backend.
package prefs

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

const keyPrefix = "pref:"

// Known preference keys.
const (
	KeyTheme        = "theme"
	KeyExpanded     = "expanded"
	KeyCalendarView = "calendar_view"
)

// Theme controls colored terminal output.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeColor Theme = "color"
	ThemePlain Theme = "plain"
)

// Prefs is the typed view of every preference.
type Prefs struct {
	Theme        Theme  `json:"theme"`
	Expanded     bool   `json:"expanded"`
	CalendarView string `json:"calendar_view"`
}

// Defaults returns the preferences used before anything is saved.
func Defaults() Prefs {
	return Prefs{Theme: ThemeAuto, Expanded: true, CalendarView: "month"}
}

// Store is a badger-backed key/value preference store.
type Store struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens or creates the store in dir.
func Open(dir string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that is discarded on Close.
func OpenInMemory() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open in-memory preference store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Validate checks that value is acceptable for key.
func Validate(key, value string) error {
	switch key {
	case KeyTheme:
		switch Theme(value) {
		case ThemeAuto, ThemeColor, ThemePlain:
			return nil
		}
		return fmt.Errorf("invalid theme %q (want auto, color, or plain)", value)
	case KeyExpanded:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid expanded value %q (want true or false)", value)
		}
		return nil
	case KeyCalendarView:
		switch value {
		case "week", "month", "year":
			return nil
		}
		return fmt.Errorf("invalid calendar view %q (want week, month, or year)", value)
	default:
		return fmt.Errorf("unknown preference %q", key)
	}
}

// Get returns the stored value for key and whether it was set.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}
	return string(val), true, nil
}

// Set validates and stores value under key.
func (s *Store) Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

// Delete removes key so its default applies again.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + key))
	})
	if err != nil {
		return fmt.Errorf("delete preference %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored preference keys in sorted order.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Load returns every preference, falling back to Defaults for unset keys.
func (s *Store) Load() (Prefs, error) {
	p := Defaults()

	if v, ok, err := s.Get(KeyTheme); err != nil {
		return p, err
	} else if ok {
		p.Theme = Theme(v)
	}

	if v, ok, err := s.Get(KeyExpanded); err != nil {
		return p, err
	} else if ok {
		p.Expanded, _ = strconv.ParseBool(v)
	}

	if v, ok, err := s.Get(KeyCalendarView); err != nil {
		return p, err
	} else if ok {
		p.CalendarView = v
	}

	return p, nil
}

// Save stores every field of p.
func (s *Store) Save(p Prefs) error {
	if err := s.Set(KeyTheme, string(p.Theme)); err != nil {
		return err
	}
	if err := s.Set(KeyExpanded, strconv.FormatBool(p.Expanded)); err != nil {
		return err
	}
	return s.Set(KeyCalendarView, p.CalendarView)
}
