package handicap

// Chunk partitions the row positions 0..n-1 into contiguous groups of size,
// starting at position 0. Positions that do not fill a whole group are
// returned as rest. Grouping is purely positional: rows 0 and 1 are partners,
// rows 2 and 3 are partners, and so on.
func Chunk(n, size int) (groups [][]int, rest []int) {
	if size <= 0 {
		return nil, nil
	}
	for start := 0; start < n; start += size {
		end := start + size
		idx := make([]int, 0, size)
		for i := start; i < end && i < n; i++ {
			idx = append(idx, i)
		}
		if end > n {
			rest = idx
			break
		}
		groups = append(groups, idx)
	}
	return groups, rest
}

// Pairs is Chunk with groups of two.
func Pairs(n int) (pairs [][]int, unpaired []int) {
	return Chunk(n, 2)
}
