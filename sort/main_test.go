package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timbench/store"
)

func testOptions(t *testing.T) *options {
	t.Helper()
	opts := defaultOptions()
	opts.maxValue = 1000
	opts.sizes = []int{0, 1, 33, 1000}
	opts.runs = 1
	opts.dataDir = filepath.Join(t.TempDir(), "data")
	opts.outDir = filepath.Join(t.TempDir(), "out")
	return opts
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(o *options)
		ok     bool
	}{
		{"defaults", func(o *options) {}, true},
		{"negative max", func(o *options) { o.maxValue = -1 }, false},
		{"no sizes", func(o *options) { o.sizes = nil }, false},
		{"negative size", func(o *options) { o.sizes = []int{10, -1} }, false},
		{"zero runs", func(o *options) { o.runs = 0 }, false},
		{"unknown storage", func(o *options) { o.storage = "rocksdb" }, false},
		{"unknown algorithm", func(o *options) { o.algorithms = []string{"bogosort"} }, false},
		{"no algorithms", func(o *options) { o.algorithms = nil }, false},
		{"empty out dir", func(o *options) { o.outDir = "" }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := testOptions(t)
			c.modify(opts)
			err := opts.validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateDedupesSizes(t *testing.T) {
	opts := testOptions(t)
	opts.sizes = []int{10, 100, 10}
	opts.algorithms = []string{"timsort", "timsort"}
	require.NoError(t, opts.validate())
	assert.Equal(t, []int{10, 100}, opts.sizes)
	assert.Equal(t, []string{"timsort"}, opts.algorithms)
}

func TestReadMaxValue(t *testing.T) {
	var prompt bytes.Buffer
	v, err := readMaxValue(strings.NewReader("1000\n"), &prompt)
	require.NoError(t, err)
	assert.Equal(t, 1000, v)
	assert.Contains(t, prompt.String(), "최대값")

	v, err = readMaxValue(strings.NewReader(" 77 "), &prompt)
	require.NoError(t, err)
	assert.Equal(t, 77, v)

	for _, in := range []string{"", "abc\n", "-5\n", "1.5\n"} {
		_, err := readMaxValue(strings.NewReader(in), &prompt)
		assert.Errorf(t, err, "input %q", in)
	}
}

func TestGenerateRandomData(t *testing.T) {
	a := generateRandomData(500, 10, 42)
	b := generateRandomData(500, 10, 42)
	assert.Equal(t, a, b)
	for _, v := range a {
		require.True(t, v >= 0 && v <= 10, "value %d out of range", v)
	}
	assert.Empty(t, generateRandomData(0, 10, 42))
	assert.Equal(t, []int{0, 0, 0}, generateRandomData(3, 0, 1))
}

func TestVerifySorted(t *testing.T) {
	data := []int{3, 1, 2, 2}
	before := fingerprintOf(data)

	assert.NoError(t, verifySorted(before, []int{1, 2, 2, 3}))

	err := verifySorted(before, []int{1, 2, 3, 2})
	assert.True(t, errors.Is(err, errVerify), "got %v", err)

	err = verifySorted(before, []int{1, 2, 3, 3})
	assert.True(t, errors.Is(err, errVerify), "got %v", err)

	err = verifySorted(before, []int{1, 2, 3})
	assert.True(t, errors.Is(err, errVerify), "got %v", err)
}

func TestRunBenchmark(t *testing.T) {
	data := generateRandomData(2000, 1000, 1)
	for _, algo := range algorithmNames() {
		result, err := runBenchmark(algo, data, store.KindMemory)
		require.NoError(t, err, algo)
		assert.Equal(t, algo, result.Algorithm)
		assert.Equal(t, 2000, result.DataSize)
		assert.Equal(t, "memory", result.StorageType)
	}

	_, err := runBenchmark("bogosort", data, store.KindMemory)
	assert.Error(t, err)
}

func TestTheoreticalTimes(t *testing.T) {
	summaries := []sizeSummary{
		{size: 1, avgDuration: 5 * time.Nanosecond},
		{size: 10, avgDuration: 10 * time.Microsecond},
		{size: 100, avgDuration: 50 * time.Microsecond},
	}
	theory := theoreticalTimes(summaries)
	require.Len(t, theory, 3)
	assert.Zero(t, theory[0])
	assert.InDelta(t, float64(10*time.Microsecond), float64(theory[1]), 1)
	// 100·log2(100) / (10·log2(10)) = 20
	assert.InDelta(t, float64(200*time.Microsecond), float64(theory[2]), 1)

	assert.Nil(t, theoreticalTimes([]sizeSummary{{size: 0}, {size: 1, avgDuration: time.Millisecond}}))
}

func TestRenderChart(t *testing.T) {
	summaries := []sizeSummary{
		{size: 10, avgDuration: time.Millisecond},
		{size: 1000, avgDuration: 2 * time.Millisecond},
	}
	chart := renderChart(summaries, []time.Duration{time.Millisecond, 4 * time.Millisecond})
	lines := strings.Split(strings.TrimSpace(chart), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "n=1,000")
	assert.Equal(t, chartWidth, strings.Count(lines[3], "."))
	assert.Equal(t, chartWidth/2, strings.Count(lines[2], "#"))
}

func TestRunEndToEnd(t *testing.T) {
	for _, kind := range []store.Kind{store.KindMemory, store.KindFile, store.KindBbolt} {
		t.Run(string(kind), func(t *testing.T) {
			opts := testOptions(t)
			opts.storage = string(kind)
			opts.metricsOut = filepath.Join(t.TempDir(), "bench.prom")

			var out bytes.Buffer
			require.NoError(t, run(opts, &out))
			assert.Contains(t, out.String(), "벤치마크 완료!")

			raw, err := os.ReadFile(filepath.Join(opts.outDir, "benchmark_results.json"))
			require.NoError(t, err)
			var results []BenchmarkResult
			require.NoError(t, json.Unmarshal(raw, &results))
			assert.Len(t, results, len(opts.sizes)*len(opts.algorithms)*opts.runs)
			for _, r := range results {
				assert.Equal(t, string(kind), r.StorageType)
			}

			md, err := os.ReadFile(filepath.Join(opts.outDir, "benchmark_results.md"))
			require.NoError(t, err)
			assert.Contains(t, string(md), "# 정렬 알고리즘 벤치마크 결과")
			assert.Contains(t, string(md), "### 팀소트")
			assert.Contains(t, string(md), "O(n log n)")

			prom, err := os.ReadFile(opts.metricsOut)
			require.NoError(t, err)
			assert.Contains(t, string(prom), `timsort_bench_sort_duration_seconds_count{algorithm="timsort",size="1000"} 1`)
			assert.Contains(t, string(prom), "timsort_bench_verify_failures_total 0")
		})
	}
}

func TestRootCmdPromptsForMaxValue(t *testing.T) {
	outDir := t.TempDir()
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("500\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--sizes", "10,64", "--runs", "1", "--algorithms", "timsort", "--out-dir", outDir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "배열 원소의 최대값을 입력하세요")
	assert.FileExists(t, filepath.Join(outDir, "benchmark_results.md"))
}

func TestRootCmdRejectsBadMaxValue(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("many\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--out-dir", t.TempDir()})
	assert.Error(t, cmd.Execute())
}

func TestBenchMetrics(t *testing.T) {
	m := newBenchMetrics()
	m.observe(BenchmarkResult{Algorithm: "timsort", DataSize: 10, Duration: time.Millisecond})
	m.observe(BenchmarkResult{Algorithm: "timsort", DataSize: 10, Duration: 2 * time.Millisecond})
	m.observe(BenchmarkResult{Algorithm: "stdlib", DataSize: 10, Duration: time.Millisecond})

	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
	assert.Zero(t, testutil.ToFloat64(m.failures))

	path := filepath.Join(t.TempDir(), "m.prom")
	require.NoError(t, m.writeTextfile(path))
	assert.FileExists(t, path)
}
