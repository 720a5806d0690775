package main

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"timbench/store"
)

// prepareDatasets 크기별 데이터셋을 생성해 저장소에 넣는다.
// 동시 생성 개수는 CPU 코어 수로 제한.
func prepareDatasets(st store.Store, sizes []int, maxValue int, seed int64) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, size := range sizes {
		size := size // go 1.21: 반복마다 변수 복사
		g.Go(func() error {
			data := generateRandomData(size, maxValue, seed)
			return errors.Wrapf(st.Put(store.DatasetKey(size, seed), data), "데이터셋 저장 실패 (n=%d)", size)
		})
	}
	return g.Wait()
}
