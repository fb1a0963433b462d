package utils

func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value behind ptr or def when ptr is nil.
func Deref[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}
