package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"timbench/store"
)

var storageNames = map[store.Kind]string{
	store.KindMemory: "인메모리",
	store.KindFile:   "파일",
	store.KindBbolt:  "bbolt",
	store.KindBadger: "BadgerDB",
	store.KindPebble: "PebbleDB",
}

// 차트 막대 최대 길이
const chartWidth = 40

// sizeSummary 알고리즘 하나의 크기별 평균
type sizeSummary struct {
	size        int
	avgDuration time.Duration
	avgMemory   uint64
}

// summarize opts.sizes 순서대로 algo 의 평균을 모은다. 결과가 없는 크기는 건너뛴다.
func summarize(results []BenchmarkResult, algo string, sizes []int) []sizeSummary {
	var out []sizeSummary
	for _, size := range sizes {
		matched := lo.Filter(results, func(r BenchmarkResult, _ int) bool {
			return r.Algorithm == algo && r.DataSize == size
		})
		if len(matched) == 0 {
			continue
		}

		var totalDuration time.Duration
		var totalMemory uint64
		for _, r := range matched {
			totalDuration += r.Duration
			totalMemory += r.MemoryUsage
		}
		out = append(out, sizeSummary{
			size:        size,
			avgDuration: totalDuration / time.Duration(len(matched)),
			avgMemory:   totalMemory / uint64(len(matched)),
		})
	}
	return out
}

// theoreticalTimes 실측값에 맞춘 O(n log n) 곡선.
//
// 기준점은 n >= 2 이고 시간이 0 보다 큰 첫 항목이다. 기준점이 없으면 nil.
// n < 2 인 항목은 0.
func theoreticalTimes(summaries []sizeSummary) []time.Duration {
	anchor, ok := lo.Find(summaries, func(s sizeSummary) bool {
		return s.size >= 2 && s.avgDuration > 0
	})
	if !ok {
		return nil
	}

	nlogn := func(n int) float64 { return float64(n) * math.Log2(float64(n)) }
	scale := float64(anchor.avgDuration) / nlogn(anchor.size)

	out := make([]time.Duration, len(summaries))
	for i, s := range summaries {
		if s.size < 2 {
			continue
		}
		out[i] = time.Duration(nlogn(s.size) * scale)
	}
	return out
}

// renderChart 크기-시간 막대 차트. '#' 실측, '.' O(n log n)
func renderChart(summaries []sizeSummary, theory []time.Duration) string {
	longest := lo.Max(append(lo.Map(summaries, func(s sizeSummary, _ int) time.Duration { return s.avgDuration }), theory...))

	bar := func(d time.Duration, ch string) string {
		if longest <= 0 {
			return ""
		}
		return strings.Repeat(ch, int(math.Round(float64(d)/float64(longest)*chartWidth)))
	}

	var b strings.Builder
	for i, s := range summaries {
		fmt.Fprintf(&b, "n=%-8s |%-*s %v\n", humanize.Comma(int64(s.size)), chartWidth, bar(s.avgDuration, "#"), s.avgDuration)
		if theory != nil {
			fmt.Fprintf(&b, "%-10s |%-*s %v\n", "", chartWidth, bar(theory[i], "."), theory[i])
		}
	}
	return b.String()
}

// saveResultsToMarkdown 측정 결과 마크다운 저장
func saveResultsToMarkdown(path string, results []BenchmarkResult, opts *options) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "마크다운 파일 생성 실패: %s", path)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	if _, err := writer.WriteString(renderMarkdown(results, opts, time.Now())); err != nil {
		return errors.Wrap(err, "마크다운 쓰기 실패")
	}
	return errors.Wrap(writer.Flush(), "마크다운 쓰기 실패")
}

func renderMarkdown(results []BenchmarkResult, opts *options, now time.Time) string {
	var builder strings.Builder
	kind := store.Kind(opts.storage)

	builder.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", now.Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0)))
	builder.WriteString(fmt.Sprintf("저장소: %s, 최대값: %s, 시드: %d\n\n", storageNames[kind], humanize.Comma(int64(opts.maxValue)), opts.seed))

	for _, size := range opts.sizes {
		builder.WriteString(fmt.Sprintf("## %s - %s개 데이터\n\n", storageNames[kind], humanize.Comma(int64(size))))
		builder.WriteString("| 알고리즘 | 테스트 | 실행시간 | 메모리사용량 | 고루틴수 |\n")
		builder.WriteString("|----------|--------|----------|--------------|----------|\n")

		for _, algo := range opts.algorithms {
			for _, r := range results {
				if r.Algorithm == algo && r.DataSize == size {
					builder.WriteString(fmt.Sprintf("| %s | %d | %v | %s | %d |\n",
						algoNames[algo], r.TestRun, r.Duration, humanize.Bytes(r.MemoryUsage), r.GoroutineNum))
				}
			}
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## 요약 통계\n\n")
	for _, algo := range opts.algorithms {
		summaries := summarize(results, algo, opts.sizes)
		if len(summaries) == 0 {
			continue
		}
		theory := theoreticalTimes(summaries)

		builder.WriteString(fmt.Sprintf("### %s\n\n", algoNames[algo]))
		builder.WriteString("| 크기 | 평균 실행시간 | O(n log n) | 평균 메모리사용량 |\n")
		builder.WriteString("|------|---------------|------------|-------------------|\n")
		for i, s := range summaries {
			expected := "-"
			if theory != nil && s.size >= 2 {
				expected = theory[i].String()
			}
			builder.WriteString(fmt.Sprintf("| %s | %v | %s | %s |\n",
				humanize.Comma(int64(s.size)), s.avgDuration, expected, humanize.Bytes(s.avgMemory)))
		}
		builder.WriteString("\n```\n")
		builder.WriteString(renderChart(summaries, theory))
		builder.WriteString("```\n\n")
	}
	return builder.String()
}

// saveResultsToJSON JSON 저장
func saveResultsToJSON(path string, results []BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "JSON 파일 생성 실패: %s", path)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return errors.Wrap(err, "JSON 인코딩 실패")
	}
	return errors.Wrap(writer.Flush(), "JSON 쓰기 실패")
}
