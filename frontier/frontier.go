// Package frontier provides the ordering containers used to hold
// discovered but not yet expanded search entries.
package frontier

// Frontier is the common contract of every ordering discipline.
type Frontier[T any] interface {
	Push(item T)
	Pop() T
	IsEmpty() bool
	Len() int
}
