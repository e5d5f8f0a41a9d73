// Package comb generates k-element combinations of index sequences.
//
// The page solver branches over every way to pick a page worth of eligible
// photos; this package enumerates those picks as index subsets so callers
// can stay agnostic of what the indices refer to.
package comb

import "slices"

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for initializing index sequences before enumeration.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Binomial returns C(n, k), the number of k-element subsets of an n-element
// set. For k < 0 or k > n, Binomial returns 0.
//
// This function is useful for sizing the branch space before enumerating it.
// Binomial coefficients grow fast: C(40, 20) already exceeds 137 billion.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// Generate returns the k-element combinations of [0, 1, ..., n-1] in
// lexicographic order.
//
// If limit > 0, Generate returns at most limit combinations.
// If limit <= 0, Generate returns all C(n, k) combinations.
//
// Each returned slice is a separate allocation, safe to modify without
// affecting others.
//
// Generate handles edge cases gracefully:
//   - k = 0: returns [[]] (one empty combination)
//   - k > n or n < 0: returns nil (no valid combination)
//
// The combination count explodes for mid-range k. Always use a limit when n
// is large, or your program will exhaust memory.
func Generate(n, k, limit int) [][]int {
	if n < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}

	capacity := limit
	if capacity <= 0 {
		capacity = Binomial(n, k)
	}
	result := make([][]int, 0, capacity)

	idx := Seq(k)
	for {
		result = append(result, slices.Clone(idx))
		if limit > 0 && len(result) >= limit {
			return result
		}

		// Advance the rightmost index that still has room, then reset the
		// tail to the values immediately following it.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return result
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
