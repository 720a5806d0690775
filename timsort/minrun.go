package timsort

// MergeThreshold 이 길이 미만의 입력은 run 하나로 취급한다.
const MergeThreshold = 32

// MinRunLength n 개 원소를 정렬할 때 쓸 최소 run 길이.
//
// n 이 MergeThreshold 미만이면 n 을 그대로 돌려준다. 그 외에는 n 을
// MergeThreshold 미만이 될 때까지 반으로 줄이면서, 도중에 한 번이라도
// 홀수였으면 1 을 더한다. 결과는 [MergeThreshold/2, MergeThreshold] 범위.
func MinRunLength(n int) int {
	r := 0 // 버려진 하위 비트가 있었는지
	for n >= MergeThreshold {
		r |= n & 1
		n >>= 1
	}
	return n + r
}
