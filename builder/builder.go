package builder

import "context"

// Builder separates the construction of a complex object from its representation.
type Builder[T any] interface {
	// Build assembles the object, or reports why it could not.
	Build(ctx context.Context) (T, error)
}

// The BuilderFunc type is an adapter to allow the use of ordinary functions as Builder.
type BuilderFunc[T any] func(ctx context.Context) (T, error)

// Build call f(ctx).
func (f BuilderFunc[T]) Build(ctx context.Context) (T, error) {
	return f(ctx)
}
