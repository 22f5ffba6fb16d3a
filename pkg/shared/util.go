package shared

// Contains checks if a slice contains the given value
func Contains[T comparable](s []T, value T) bool {
	for _, v := range s {
		if v == value {
			return true
		}
	}
	return false
}

// FirstNonEmptyOrDefault returns the first non-empty string between the passed in values.
// If no non-empty string can be found, returns defaultValue
func FirstNonEmptyOrDefault(defaultValue string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return defaultValue
}
