package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"timbench/store"
)

// 원본 측정 크기 목록
var defaultSizes = []int{10, 100, 500, 1000, 5000, 10000}

// options 벤치마크 설정
type options struct {
	maxValue   int
	sizes      []int
	runs       int
	seed       int64
	storage    string
	dataDir    string
	outDir     string
	algorithms []string
	metricsOut string
}

func defaultOptions() *options {
	return &options{
		maxValue:   -1,
		sizes:      append([]int(nil), defaultSizes...),
		runs:       3,
		seed:       42, // 고정 시드로 재현 가능한 벤치마크
		storage:    string(store.KindMemory),
		dataDir:    ".bench-data",
		outDir:     ".",
		algorithms: algorithmNames(),
	}
}

func (o *options) bindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.maxValue, "max-value", o.maxValue, "랜덤 원소의 최대값 (생략하면 입력받음)")
	fs.IntSliceVar(&o.sizes, "sizes", o.sizes, "측정할 배열 크기 목록")
	fs.IntVar(&o.runs, "runs", o.runs, "크기/알고리즘별 반복 횟수")
	fs.Int64Var(&o.seed, "seed", o.seed, "랜덤 시드")
	fs.StringVar(&o.storage, "storage", o.storage,
		"데이터셋 저장소 ("+strings.Join(lo.Map(store.Kinds(), func(k store.Kind, _ int) string { return string(k) }), ", ")+")")
	fs.StringVar(&o.dataDir, "data-dir", o.dataDir, "데이터셋 저장 디렉터리")
	fs.StringVar(&o.outDir, "out-dir", o.outDir, "결과 파일 디렉터리")
	fs.StringSliceVar(&o.algorithms, "algorithms", o.algorithms, "측정할 알고리즘 ("+strings.Join(algorithmNames(), ", ")+")")
	fs.StringVar(&o.metricsOut, "metrics-out", o.metricsOut, "Prometheus textfile 출력 경로 (비우면 생략)")
}

// validate 설정 검증. 크기 목록의 중복은 제거한다.
func (o *options) validate() error {
	if o.maxValue < 0 || o.maxValue >= math.MaxInt {
		return errors.Newf("최대값은 0 이상 %d 미만이어야 합니다: %d", math.MaxInt, o.maxValue)
	}
	if len(o.sizes) == 0 {
		return errors.New("측정할 배열 크기가 없습니다")
	}
	for _, size := range o.sizes {
		if size < 0 {
			return errors.Newf("배열 크기는 음수일 수 없습니다: %d", size)
		}
	}
	o.sizes = lo.Uniq(o.sizes)

	if o.runs < 1 {
		return errors.Newf("반복 횟수는 1 이상이어야 합니다: %d", o.runs)
	}
	if _, err := store.ParseKind(o.storage); err != nil {
		return err
	}
	if len(o.algorithms) == 0 {
		return errors.New("측정할 알고리즘이 없습니다")
	}
	for _, algo := range o.algorithms {
		if _, ok := sorters[algo]; !ok {
			return errors.Newf("알 수 없는 알고리즘: %q", algo)
		}
	}
	o.algorithms = lo.Uniq(o.algorithms)

	if o.outDir == "" {
		return errors.New("결과 디렉터리가 비어 있습니다")
	}
	return nil
}

// readMaxValue 최대값을 한 줄 입력받는다
func readMaxValue(r io.Reader, w io.Writer) (int, error) {
	fmt.Fprint(w, "배열 원소의 최대값을 입력하세요: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, errors.Wrap(err, "최대값 입력 읽기 실패")
	}

	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errors.Newf("잘못된 최대값 입력: %q", strings.TrimSpace(line))
	}
	if v < 0 {
		return 0, errors.Newf("최대값은 음수일 수 없습니다: %d", v)
	}
	return v, nil
}
