package store

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
)

// Badger BadgerDB 저장소
type Badger struct {
	db *badger.DB
}

func OpenBadger(dir string) (*Badger, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrapf(err, "store: open badger %s", dir)
	}
	return &Badger{db: db}, nil
}

func (s *Badger) Put(key string, data []int) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), encodeInts(data))
	})
	return errors.Wrapf(err, "store: badger put %q", key)
}

func (s *Badger) Get(key string) ([]int, error) {
	var data []int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(ErrNotFound, "key %q", key)
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			data, err = decodeInts(v)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Badger) Close() error {
	return errors.Wrap(s.db.Close(), "store: close badger")
}
