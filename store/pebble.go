package store

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// Pebble PebbleDB 저장소
type Pebble struct {
	db *pebble.DB
}

func OpenPebble(dir string) (*Pebble, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "store: open pebble %s", dir)
	}
	return &Pebble{db: db}, nil
}

func (s *Pebble) Put(key string, data []int) error {
	return errors.Wrapf(s.db.Set([]byte(key), encodeInts(data), pebble.Sync), "store: pebble put %q", key)
}

func (s *Pebble) Get(key string) ([]int, error) {
	v, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "key %q", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "store: pebble get %q", key)
	}
	defer closer.Close()

	// v 는 closer.Close 전까지만 유효
	return decodeInts(v)
}

func (s *Pebble) Close() error {
	return errors.Wrap(s.db.Close(), "store: close pebble")
}
