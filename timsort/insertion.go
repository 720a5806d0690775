package timsort

import "golang.org/x/exp/constraints"

// insertionSort s[left..right] (양끝 포함) 구간 삽입정렬.
// 앞 원소가 엄격히 클 때만 밀어내므로 같은 값의 순서는 유지된다.
func insertionSort[T constraints.Ordered](s []T, left, right int) {
	for i := left + 1; i <= right; i++ {
		v := s[i]
		j := i - 1
		for j >= left && v < s[j] {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

// insertionSortFunc less 비교를 쓰는 insertionSort.
func insertionSortFunc[T any](s []T, left, right int, less func(a, b T) bool) {
	for i := left + 1; i <= right; i++ {
		v := s[i]
		j := i - 1
		for j >= left && less(v, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}
