package store

import (
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

var bucketName = []byte("datasets")

// Bbolt 단일 파일 bbolt 저장소
type Bbolt struct {
	db *bbolt.DB
}

func OpenBbolt(path string) (*Bbolt, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "store: open bbolt %s", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "store: create bbolt bucket")
	}
	return &Bbolt{db: db}, nil
}

func (s *Bbolt) Put(key string, data []int) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), encodeInts(data))
	})
	return errors.Wrapf(err, "store: bbolt put %q", key)
}

func (s *Bbolt) Get(key string) ([]int, error) {
	var data []int
	err := s.db.View(func(tx *bbolt.Tx) error {
		// 반환된 값은 트랜잭션 안에서만 유효하므로 여기서 디코딩
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v == nil {
			return errors.Wrapf(ErrNotFound, "key %q", key)
		}
		var err error
		data, err = decodeInts(v)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Bbolt) Close() error {
	return errors.Wrap(s.db.Close(), "store: close bbolt")
}
