package prefixparse

import "fmt"

// ParseAll strings into numbers, O(n). Stops at the first failure, reporting its index.
func ParseAll[T Integer](in []string) ([]T, error) {
	return For[T]().ParseAll(in)
}

// ParseAllWith is ParseAll using ParseWith(f, ...) for every element.
func ParseAllWith[T Integer](f Format, in []string) ([]T, error) {
	return For[T]().ParseAllWith(f, in)
}

func (p Parser[T]) ParseAll(in []string) ([]T, error) {
	return each(in, p.Parse)
}

func (p Parser[T]) ParseAllWith(f Format, in []string) ([]T, error) {
	return each(in, func(s string) (T, error) {
		return p.ParseWith(f, s)
	})
}

// IndexError wraps the error of one element in a batch.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// returns the values parsed so far along with the error
func each[T any](a []string, fn func(s string) (T, error)) ([]T, error) {
	k := make([]T, 0, len(a))
	for i := range a {
		x, err := fn(a[i])
		if err != nil {
			return k, &IndexError{Index: i, Err: err}
		}
		k = append(k, x)
	}
	return k, nil
}
