// Command sort 팀소트와 표준 라이브러리 정렬의 실행 시간을 비교하는 벤치마크.
//
//	go run ./sort --max-value 1000000 --storage pebble --metrics-out bench.prom
//
// --max-value 를 생략하면 표준 입력으로 받는다.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"timbench/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("벤치마크 실패: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:           "sort",
		Short:         "정렬 알고리즘 벤치마크",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("max-value") {
				v, err := readMaxValue(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				opts.maxValue = v
			}
			return run(opts, cmd.OutOrStdout())
		},
	}
	opts.bindFlags(cmd.Flags())
	return cmd
}

func run(opts *options, out io.Writer) (err error) {
	if err := opts.validate(); err != nil {
		return err
	}
	kind, _ := store.ParseKind(opts.storage)
	opts.storage = string(kind)

	fmt.Fprintln(out, "정렬 알고리즘 벤치마크 시작...")
	fmt.Fprintf(out, "CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Fprintf(out, "GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	st, err := store.Open(kind, opts.dataDir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := prepareDatasets(st, opts.sizes, opts.maxValue, opts.seed); err != nil {
		return err
	}

	m := newBenchMetrics()
	results, err := runBenchmarks(opts, st, kind, out, m)
	if opts.metricsOut != "" {
		// 검증 실패도 메트릭에 남긴다
		if merr := m.writeTextfile(opts.metricsOut); merr != nil {
			log.Printf("%v", merr)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "결과 저장 중...")
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return errors.Wrapf(err, "결과 디렉터리 생성 실패: %s", opts.outDir)
	}

	mdPath := filepath.Join(opts.outDir, "benchmark_results.md")
	if err := saveResultsToMarkdown(mdPath, results, opts); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s 파일이 생성되었습니다.\n", mdPath)

	jsonPath := filepath.Join(opts.outDir, "benchmark_results.json")
	if err := saveResultsToJSON(jsonPath, results); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s 파일이 생성되었습니다.\n", jsonPath)

	fmt.Fprintln(out, "벤치마크 완료!")
	return nil
}
