package main

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"

	"timbench/timsort"
)

var errVerify = errors.New("정렬 검증 실패")

// fingerprint 순서와 무관한 multiset 요약값
type fingerprint struct {
	n   int
	sum uint64
	xor uint64
}

func fingerprintOf(data []int) fingerprint {
	var buf [8]byte
	fp := fingerprint{n: len(data)}
	for _, v := range data {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h := xxhash.Sum64(buf[:])
		fp.sum += h
		fp.xor ^= h
	}
	return fp
}

// verifySorted 정렬 순서와 원소 보존 확인
func verifySorted(before fingerprint, sorted []int) error {
	if !timsort.IsSorted(sorted) {
		for i := 1; i < len(sorted); i++ {
			if sorted[i] < sorted[i-1] {
				return errors.Wrapf(errVerify, "%d번째 원소에서 순서가 깨짐 (%d > %d)", i, sorted[i-1], sorted[i])
			}
		}
	}
	if after := fingerprintOf(sorted); after != before {
		return errors.Wrapf(errVerify, "원소 구성이 바뀜 (길이 %d -> %d)", before.n, after.n)
	}
	return nil
}
