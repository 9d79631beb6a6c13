package collection

// Map returns a new slice holding f applied to every element of input.
func Map[A any, B any](input []A, f func(A) B) []B {
	output, _ := mapInternal(input, func(a A) (B, error) {
		return f(a), nil
	})
	return output
}

// MapE is Map for a fallible f. It stops at the first error and returns it.
func MapE[A any, B any](input []A, f func(A) (B, error)) ([]B, error) {
	return mapInternal(input, f)
}

func mapInternal[A any, B any](input []A, f func(A) (B, error)) ([]B, error) {
	output := make([]B, len(input))
	for i, v := range input {
		mapped, err := f(v)
		if err != nil {
			return nil, err
		}
		output[i] = mapped
	}
	return output, nil
}
