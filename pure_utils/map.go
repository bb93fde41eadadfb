package pure_utils

import "slices"

// Map returns a new slice with the same length as src, but with values transformed by f
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// FlatMap returns a new flattened slice composed of the result of passing each element of the input slice
// to a function returning a slice of element. This is the equivalent of doing a Map, then a Flatten.
func FlatMap[T, U any](src []T, f func(T) []U) []U {
	us := make([]U, 0, len(src))
	for _, item := range src {
		us = append(us, f(item)...)
	}
	return slices.Clip(us)
}

// MapErr returns a new slice with the same length as src, but with values transformed by f
// If f returns an error, the function stops and returns the error.
func MapErr[T, U any](src []T, f func(T) (U, error)) ([]U, error) {
	us := make([]U, len(src))
	for i := range src {
		var err error
		us[i], err = f(src[i])
		if err != nil {
			return nil, err
		}
	}
	return us, nil
}
