package intsx

import "golang.org/x/exp/constraints"

func MaxOf[T constraints.Ordered](args ...T) T {
	result := args[0]
	for _, arg := range args {
		if arg > result {
			result = arg
		}
	}
	return result
}

// Clamp limits value to the range [lower, upper]
func Clamp[T constraints.Integer](value, lower, upper T) T {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
