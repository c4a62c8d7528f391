package utils

// Ptr returns a pointer to v. Useful for the optional string fields on
// agent cards.
func Ptr[T any](v T) *T {
	return &v
}
