// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

// Map

// MapXI maps slice S to []U with error propagation.
// - X: Stops on failure and returns error.
// - I: Provides index to callback.
func MapXI[T, U any, S ~[]T](s S, fn func(int, T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(i, v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

// MapI maps slice S to []U.
// - I: Provides index to callback.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result, _ := MapXI(s, func(i int, t T) (U, error) {
		return fn(i, t), nil
	})
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapXI(s, func(_ int, t T) (U, error) {
		return fn(t), nil
	})
	return result
}

// Filter

// FilterI keeps the elements for which fn returns true. The result never
// aliases s.
// - I: Provides index to callback.
func FilterI[T any, S ~[]T](s S, fn func(int, T) bool) S {
	result := make(S, 0, len(s))
	for i, t := range s {
		if fn(i, t) {
			result = append(result, t)
		}
	}
	return result
}

func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	return FilterI(s, func(_ int, t T) bool {
		return fn(t)
	})
}

// Find

// Find returns the first element for which fn returns true.
func Find[T any, S ~[]T](s S, fn func(T) bool) (T, bool) {
	for _, t := range s {
		if fn(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}
