package scenario

import "slices"

// sortByOrder sorts labels by their position in order. Unknown labels sort last.
func sortByOrder(labels []string, order map[string]int) {
	pos := func(l string) int {
		if i, ok := order[l]; ok {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(labels, func(a, b string) int { return pos(a) - pos(b) })
}
