package interfaces

// Cache is a keyed memo for values derived from the immutable catalog.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	// GetOrCompute returns the cached value, storing fn() first when absent.
	GetOrCompute(key K, fn func() V) V
	Delete(key K)
	Clear()
}
