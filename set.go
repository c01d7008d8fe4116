package probability

// Set is a finite collection of distinct outcomes. As a sample space every
// outcome is equally likely; as an event it is a plain subset of outcomes.
type Set[T comparable] map[T]struct{}

// NewSet builds a set from items; duplicates collapse
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Range returns the set of integers in [lo, hi]
func Range(lo, hi int) Set[int] {
	if lo > hi {
		return Set[int]{}
	}

	s := make(Set[int], hi-lo+1)
	for i := lo; i <= hi; i++ {
		s[i] = struct{}{}
	}
	return s
}

// Add inserts o into the set
func (s Set[T]) Add(o T) { s[o] = struct{}{} }

// Contains reports whether o is in the set
func (s Set[T]) Contains(o T) bool {
	_, ok := s[o]
	return ok
}

// Len returns the number of outcomes
func (s Set[T]) Len() int { return len(s) }

// Slice returns the outcomes in unspecified order
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	for o := range s {
		out = append(out, o)
	}
	return out
}

// Equal reports whether both sets hold the same outcomes
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for o := range s {
		if !other.Contains(o) {
			return false
		}
	}
	return true
}

// Union returns the outcomes in any of the sets
func Union[T comparable](sets ...Set[T]) Set[T] {
	size := 0
	for _, s := range sets {
		size = max(size, len(s))
	}

	out := make(Set[T], size)
	for _, s := range sets {
		for o := range s {
			out[o] = struct{}{}
		}
	}
	return out
}

// Intersect returns the outcomes present in every set. With no arguments
// the result is empty.
func Intersect[T comparable](sets ...Set[T]) Set[T] {
	if len(sets) == 0 {
		return Set[T]{}
	}

	smallest := 0
	for i, s := range sets {
		if len(s) < len(sets[smallest]) {
			smallest = i
		}
	}

	out := make(Set[T])
next:
	for o := range sets[smallest] {
		for i, s := range sets {
			if i != smallest && !s.Contains(o) {
				continue next
			}
		}
		out[o] = struct{}{}
	}
	return out
}

// Difference returns the outcomes of a that are not in b
func Difference[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T])
	for o := range a {
		if !b.Contains(o) {
			out[o] = struct{}{}
		}
	}
	return out
}

// Pair is a composite outcome of two independent components
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// Cross returns every pairing of an outcome of a with an outcome of b
func Cross[A, B comparable](a Set[A], b Set[B]) Set[Pair[A, B]] {
	out := make(Set[Pair[A, B]], len(a)*len(b))
	for x := range a {
		for y := range b {
			out[Pair[A, B]{First: x, Second: y}] = struct{}{}
		}
	}
	return out
}
