package main

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"

	"timbench/store"
)

// BenchmarkResult 벤치마크 결과를 저장하는 구조체
type BenchmarkResult struct {
	Algorithm    string        `json:"algorithm"`
	DataSize     int           `json:"data_size"`
	StorageType  string        `json:"storage_type"`
	TestRun      int           `json:"test_run"`
	Duration     time.Duration `json:"duration"`
	MemoryUsage  uint64        `json:"memory_usage_bytes"`
	GoroutineNum int           `json:"goroutine_num"`
}

// SystemStats 시스템 통계를 위한 구조체
type SystemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
	endMem    runtime.MemStats
}

// generateRandomData [0, maxValue] 범위 랜덤 데이터 생성.
// 같은 (size, seed) 는 항상 같은 데이터를 만든다.
func generateRandomData(size, maxValue int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed + int64(size)))

	data := make([]int, size)
	for i := range data {
		data[i] = int(rng.Int63n(int64(maxValue) + 1))
	}
	return data
}

// startStats 성능 측정 시작
func startStats() *SystemStats {
	runtime.GC() // 가비지 컬렉션으로 정확한 측정
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemStats{
		startTime: time.Now(),
		startMem:  m,
	}
}

// endStats 경과 시간과 측정 구간에서 할당된 바이트
func (s *SystemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)
	runtime.ReadMemStats(&s.endMem)
	return duration, s.endMem.TotalAlloc - s.startMem.TotalAlloc
}

// runBenchmark 데이터 한 벌을 한 번 정렬하고 결과를 검증
func runBenchmark(algorithm string, data []int, storage store.Kind) (BenchmarkResult, error) {
	sorter, ok := sorters[algorithm]
	if !ok {
		return BenchmarkResult{}, errors.Newf("알 수 없는 알고리즘: %q", algorithm)
	}

	result := BenchmarkResult{
		Algorithm:    algorithm,
		DataSize:     len(data),
		StorageType:  string(storage),
		GoroutineNum: runtime.NumGoroutine(),
	}

	testData := make([]int, len(data))
	copy(testData, data)
	before := fingerprintOf(testData)

	stats := startStats()
	sorter(testData)
	result.Duration, result.MemoryUsage = stats.endStats()

	if err := verifySorted(before, testData); err != nil {
		return result, errors.Wrapf(err, "%s n=%d", algorithm, len(data))
	}
	return result, nil
}

// runBenchmarks 크기 → 알고리즘 → 반복 순으로 전체 측정
func runBenchmarks(opts *options, st store.Store, kind store.Kind, out io.Writer, m *benchMetrics) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	for _, size := range opts.sizes {
		fmt.Fprintf(out, "%d개 데이터 (%s) 테스트 중...\n", size, storageNames[kind])
		key := store.DatasetKey(size, opts.seed)

		for _, algo := range opts.algorithms {
			for run := 1; run <= opts.runs; run++ {
				// 매번 저장소에서 다시 읽기
				data, err := st.Get(key)
				if err != nil {
					return results, err
				}

				result, err := runBenchmark(algo, data, kind)
				if err != nil {
					if errors.Is(err, errVerify) {
						m.failures.Inc()
					}
					return results, err
				}
				result.TestRun = run
				results = append(results, result)
				m.observe(result)

				fmt.Fprintf(out, "  %s - 테스트 %d: 배열 크기: %d, 걸린 시간: %.6f초\n",
					algo, run, size, result.Duration.Seconds())
			}
		}
	}
	return results, nil
}
