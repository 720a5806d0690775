// Package store 벤치마크 입력 데이터셋 저장소.
//
// 같은 데이터셋을 매 실행마다 다시 읽어 오도록 해서, 정렬 알고리즘끼리
// 동일한 입력으로 비교되게 한다.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNotFound 키에 해당하는 데이터셋이 없음
var ErrNotFound = errors.New("store: dataset not found")

// Store 데이터셋 저장소 인터페이스.
// 구현체는 서로 다른 키에 대한 동시 Put/Get 을 허용해야 한다.
type Store interface {
	Put(key string, data []int) error
	Get(key string) ([]int, error)
	Close() error
}

// Kind 저장소 종류
type Kind string

const (
	KindMemory Kind = "memory"
	KindFile   Kind = "file"
	KindBbolt  Kind = "bbolt"
	KindBadger Kind = "badger"
	KindPebble Kind = "pebble"
)

// Kinds 지원하는 저장소 종류 목록
func Kinds() []Kind {
	return []Kind{KindMemory, KindFile, KindBbolt, KindBadger, KindPebble}
}

// ParseKind 문자열을 Kind 로 변환
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Newf("store: unknown storage kind %q", s)
}

// Open kind 에 맞는 저장소를 dir 아래에 연다. memory 는 dir 을 쓰지 않는다.
func Open(kind Kind, dir string) (Store, error) {
	if kind == KindMemory {
		return NewMemory(), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "store: create %s", dir)
	}

	switch kind {
	case KindFile:
		return OpenFile(filepath.Join(dir, "files"))
	case KindBbolt:
		return OpenBbolt(filepath.Join(dir, "datasets.db"))
	case KindBadger:
		return OpenBadger(filepath.Join(dir, "badger"))
	case KindPebble:
		return OpenPebble(filepath.Join(dir, "pebble"))
	}
	return nil, errors.Newf("store: unknown storage kind %q", kind)
}

// DatasetKey 크기와 시드로 데이터셋 키 생성
func DatasetKey(size int, seed int64) string {
	return fmt.Sprintf("n=%d/seed=%d", size, seed)
}
