package timsort

import "golang.org/x/exp/constraints"

// merge 정렬된 s[left..mid] 와 s[mid+1..right] 를 s[left..right] 로 병합.
//
// 두 구간을 임시 버퍼로 복사한 뒤 앞에서부터 작은 쪽을 되돌려 쓴다.
// 값이 같으면 왼쪽 버퍼가 먼저다. 버퍼는 호출이 끝나면 버려진다.
func merge[T constraints.Ordered](s []T, left, mid, right int) {
	lo := append([]T(nil), s[left:mid+1]...)
	hi := append([]T(nil), s[mid+1:right+1]...)

	i, j, k := 0, 0, left
	for i < len(lo) && j < len(hi) {
		if hi[j] < lo[i] {
			s[k] = hi[j]
			j++
		} else {
			s[k] = lo[i]
			i++
		}
		k++
	}

	// 남은 쪽은 그대로 복사
	k += copy(s[k:], lo[i:])
	copy(s[k:], hi[j:])
}

// mergeFunc less 비교를 쓰는 merge.
func mergeFunc[T any](s []T, left, mid, right int, less func(a, b T) bool) {
	lo := append([]T(nil), s[left:mid+1]...)
	hi := append([]T(nil), s[mid+1:right+1]...)

	i, j, k := 0, 0, left
	for i < len(lo) && j < len(hi) {
		if less(hi[j], lo[i]) {
			s[k] = hi[j]
			j++
		} else {
			s[k] = lo[i]
			i++
		}
		k++
	}

	k += copy(s[k:], lo[i:])
	copy(s[k:], hi[j:])
}
