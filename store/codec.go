package store

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// encodeInts [개수 8바이트][값 8바이트 ...] 빅엔디언 인코딩
func encodeInts(data []int) []byte {
	buf := make([]byte, 8+8*len(data))
	binary.BigEndian.PutUint64(buf, uint64(len(data)))
	for i, v := range data {
		binary.BigEndian.PutUint64(buf[8+8*i:], uint64(int64(v)))
	}
	return buf
}

func decodeInts(buf []byte) ([]int, error) {
	if len(buf) < 8 {
		return nil, errors.Newf("store: corrupt value: %d bytes", len(buf))
	}
	n := binary.BigEndian.Uint64(buf)
	if uint64(len(buf)-8) != n*8 {
		return nil, errors.Newf("store: corrupt value: header says %d values, body has %d bytes", n, len(buf)-8)
	}

	data := make([]int, n)
	for i := range data {
		data[i] = int(int64(binary.BigEndian.Uint64(buf[8+8*i:])))
	}
	return data, nil
}
