package method

import "fmt"

// DetermineViolation is raised by AddMethod when the new method would
// give a variable a second writer. The attempted method is rolled back
// before this is returned.
type DetermineViolation[V any] struct {
	Variable V
}

func (e *DetermineViolation[V]) Error() string {
	return fmt.Sprintf("method graph: variable %v would have more than one writer", e.Variable)
}

// CycleViolation is raised by AddMethod when the new method would close
// a directed cycle through the variable/method graph. Rollback
// discipline matches DetermineViolation.
type CycleViolation[V any] struct {
	Variable V
}

func (e *CycleViolation[V]) Error() string {
	return fmt.Sprintf("method graph: adding this method would create a cycle through %v", e.Variable)
}
