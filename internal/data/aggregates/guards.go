package aggregates

import "fmt"

// requireAffected turns a zero-row write against a root id into a not-found error.
func requireAffected(n int64, what string, id uint) error {
	if n > 0 {
		return nil
	}
	return NotFoundError(fmt.Sprintf("%s %d not found", what, id))
}
