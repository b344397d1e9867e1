package navigation

// Wrap moves idx by delta modulo n. It returns 0 for an empty list.
func Wrap(idx, delta, n int) int {
	if n <= 0 {
		return 0
	}
	idx = Clamp(idx, n)
	return ((idx+delta)%n + n) % n
}

// Clamp bounds idx to [0, n-1]. It returns 0 for an empty list.
func Clamp(idx, n int) int {
	if n <= 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// VisibleOffset returns the first row to draw so the cursor stays inside a
// window of maxVisible rows, starting from the previous offset.
func VisibleOffset(cursor, offset, total, maxVisible int) int {
	if total <= 0 || maxVisible <= 0 {
		return 0
	}
	cursor = Clamp(cursor, total)
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < offset {
		offset = cursor
	}
	if upper := offset + maxVisible - 1; cursor > upper {
		offset = cursor - maxVisible + 1
		if offset > maxOffset {
			offset = maxOffset
		}
	}
	return offset
}
