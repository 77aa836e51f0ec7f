package decorator

// Decorator allows us to write something like decorators to object.
// It wraps an object and returns a new one exposing the same behaviour plus its own.
type Decorator[T any] interface {
	// Decorate wraps the underlying obj, adding some functionality.
	Decorate(obj T) (T, error)
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[T any] func(obj T) (T, error)

// Decorate call f(obj).
func (f DecoratorFunc[T]) Decorate(obj T) (T, error) {
	return f(obj)
}

// Chain decorates the given object with all decorators, in the order they are given.
// The last decorator is the outermost one. Chain stops at the first failing decorator.
func Chain[T any](obj T, decorators ...Decorator[T]) (T, error) {
	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		decorated, err := decorator.Decorate(obj)
		if err != nil {
			return obj, err
		}
		obj = decorated
	}
	return obj, nil
}
