package store

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// File 키마다 텍스트 파일 하나. 한 줄에 정수 하나.
type File struct {
	dir string
}

var fileNameReplacer = strings.NewReplacer("/", "_", `\`, "_", "=", "-")

func OpenFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "store: create %s", dir)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, fileNameReplacer.Replace(key)+".txt")
}

// Put 큰 버퍼로 한 번에 쓴다
func (f *File) Put(key string, data []int) error {
	file, err := os.Create(f.path(key))
	if err != nil {
		return errors.Wrapf(err, "store: create dataset %q", key)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 64*1024)
	line := make([]byte, 0, 24)
	for i, num := range data {
		line = line[:0]
		if i > 0 {
			line = append(line, '\n')
		}
		line = strconv.AppendInt(line, int64(num), 10)
		if _, err := writer.Write(line); err != nil {
			return errors.Wrapf(err, "store: write dataset %q", key)
		}
	}

	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "store: flush dataset %q", key)
	}
	return errors.Wrapf(file.Close(), "store: close dataset %q", key)
}

func (f *File) Get(key string) ([]int, error) {
	file, err := os.Open(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "key %q", key)
		}
		return nil, errors.Wrapf(err, "store: open dataset %q", key)
	}
	defer file.Close()

	// 파일 크기로 개수 추정 (평균 6자리 + 개행)
	estimated := 0
	if info, err := file.Stat(); err == nil {
		estimated = int(info.Size() / 7)
	}
	data := make([]int, 0, estimated)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		num, err := strconv.Atoi(line)
		if err != nil {
			return nil, errors.Wrapf(err, "store: parse dataset %q", key)
		}
		data = append(data, num)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "store: read dataset %q", key)
	}
	return data, nil
}

func (f *File) Close() error { return nil }
