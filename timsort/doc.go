// Package timsort 삽입정렬과 병합을 섞은 하이브리드 정렬 엔진.
//
// 입력을 minrun 길이의 연속 구간(run)으로 나눠 각 구간을 삽입정렬한 뒤,
// 인접한 run 을 두 배씩 커지는 크기로 병합해 하나의 정렬된 구간을 만든다.
//
//	data := []int{5, 3, 3, 1, 2, 2}
//	timsort.Sort(data) // [1 2 2 3 3 5]
//
// 병합은 같은 값이면 왼쪽 run 의 원소를 먼저 쓰므로 정렬은 안정적이다.
// 추가 메모리는 한 번의 병합 구간 크기를 넘지 않는다.
// 정렬 중에는 호출자가 슬라이스에 동시에 접근하면 안 된다.
package timsort
