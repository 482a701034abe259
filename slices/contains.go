package slices

import (
	"golang.org/x/exp/slices"
)

// Contains checks if slice contains given element.
func Contains[E comparable](slice []E, element E) bool {
	return slices.Contains(slice, element)
}
