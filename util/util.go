package util

import "golang.org/x/exp/constraints"

// Range returns from..to inclusive. It is empty when to < from.
func Range[A constraints.Integer](from A, to A) []A {
	var res []A
	for i := from; i <= to; i++ {
		res = append(res, i)
	}
	return res
}

func MapSlice[A any, B any](items []A, f func(A) B) []B {
	res := make([]B, 0, len(items))
	for _, v := range items {
		res = append(res, f(v))
	}
	return res
}

func Sum[A constraints.Integer](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}
