package main

import (
	"cmp"
	"slices"

	"timbench/timsort"
)

// sorters 측정 대상 정렬 함수. 모두 제자리 정렬.
var sorters = map[string]func([]int){
	"timsort": timsort.Sort[int],
	"stdlib": func(s []int) {
		slices.Sort(s)
	},
	"stdlib_stable": func(s []int) {
		slices.SortStableFunc(s, cmp.Compare[int])
	},
}

// 보고서 표기 이름
var algoNames = map[string]string{
	"timsort":       "팀소트",
	"stdlib":        "표준 정렬",
	"stdlib_stable": "표준 안정 정렬",
}

// algorithmNames 보고서 출력 순서
func algorithmNames() []string {
	return []string{"timsort", "stdlib", "stdlib_stable"}
}
