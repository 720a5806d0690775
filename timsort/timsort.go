package timsort

import "golang.org/x/exp/constraints"

// Sort s 를 오름차순으로 제자리 정렬한다. 안정 정렬.
func Sort[T constraints.Ordered](s []T) {
	n := len(s)
	minrun := MinRunLength(n)

	// 1. minrun 단위 구간 삽입정렬
	for start := 0; start < n; start += minrun {
		insertionSort(s, start, min(start+minrun-1, n-1))
	}

	// 2. 인접 run 을 두 배씩 병합
	for size := minrun; size < n; size *= 2 {
		for left := 0; left < n; left += 2 * size {
			mid := min(left+size-1, n-1)
			right := min(left+2*size-1, n-1)
			if mid < right {
				merge(s, left, mid, right)
			}
		}
	}
}

// SortFunc less 로 정의된 순서에 따라 s 를 제자리 정렬한다.
//
// less 는 엄격한 전순서(strict total order)여야 한다. 그렇지 않으면 결과
// 순서는 정해지지 않지만 원소가 사라지거나 중복되지는 않는다.
func SortFunc[T any](s []T, less func(a, b T) bool) {
	n := len(s)
	minrun := MinRunLength(n)

	for start := 0; start < n; start += minrun {
		insertionSortFunc(s, start, min(start+minrun-1, n-1), less)
	}

	for size := minrun; size < n; size *= 2 {
		for left := 0; left < n; left += 2 * size {
			mid := min(left+size-1, n-1)
			right := min(left+2*size-1, n-1)
			if mid < right {
				mergeFunc(s, left, mid, right, less)
			}
		}
	}
}

// IsSorted s 가 오름차순(비내림차순)인지 확인.
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc less 기준 IsSorted.
func IsSortedFunc[T any](s []T, less func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}
