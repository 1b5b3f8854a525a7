package configs

import "iter"

// All yields the value at path from every config file that defines it,
// in precedence order. Unreadable configs are a panic: a bad config file
// is a deployment error, not a runtime condition.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				break
			}
		}
	}
}
