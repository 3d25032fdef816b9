package reactive

// Ref holds a mutable reference to a value, typically a DOM element
// captured during construction. Setting happens once, when the element is
// built; reading happens from application code afterwards.
type Ref[T any] struct {
	value T
	isSet bool
}

// NewRef creates an empty ref.
func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Current returns the ref's value (the zero value until Set is called).
func (r *Ref[T]) Current() T {
	return r.value
}

// Set stores a value in the ref.
func (r *Ref[T]) Set(value T) {
	r.value = value
	r.isSet = true
}

// IsSet reports whether the ref has been set.
func (r *Ref[T]) IsSet() bool {
	return r.isSet
}

// Clear resets the ref to its zero value.
func (r *Ref[T]) Clear() {
	var zero T
	r.value = zero
	r.isSet = false
}
