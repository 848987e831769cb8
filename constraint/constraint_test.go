package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solvergeo/rigidcore/constraint"
	"github.com/solvergeo/rigidcore/geom"
)

func TestPlusConstraint_Satisfied(t *testing.T) {
	c := constraint.NewPlusConstraint("a", "b", "c")
	assignment := map[string]geom.Vector{
		"a": {X: 2, Y: 0}, "b": {X: 3, Y: 0}, "c": {X: 5, Y: 0},
	}
	assert.True(t, c.Satisfied(assignment))

	bad := map[string]geom.Vector{
		"a": {X: 2, Y: 0}, "b": {X: 3, Y: 0}, "c": {X: 99, Y: 0},
	}
	assert.False(t, c.Satisfied(bad))
}

// S7: coincident points satisfy NotClockwise and NotCounterClockwise.
func TestSelectionConstraint_S7Coincident(t *testing.T) {
	p := geom.Vector{X: 1, Y: 1}
	assignment := map[string]geom.Vector{"a": p, "b": p, "c": p}

	nc := constraint.NewNotClockwise("a", "b", "c")
	ncc := constraint.NewNotCounterClockwise("a", "b", "c")
	assert.True(t, nc.Satisfied(assignment))
	assert.True(t, ncc.Satisfied(assignment))
}

func TestConstraintGraph_AddConstraintWiresVariables(t *testing.T) {
	cg := constraint.New[string]()
	c := constraint.NewPlusConstraint("a", "b", "c")
	cg.AddConstraint(c)

	assert.True(t, cg.HasVariable("a"))
	assert.True(t, cg.HasVariable("b"))
	assert.True(t, cg.HasVariable("c"))
	assert.Len(t, cg.ConstraintsOn("a"), 1)
}

func TestConstraintGraph_RemoveVariableCascadesConstraints(t *testing.T) {
	cg := constraint.New[string]()
	c := constraint.NewPlusConstraint("a", "b", "c")
	cg.AddConstraint(c)

	cg.RemoveVariable("a")
	assert.False(t, cg.HasVariable("a"))
	assert.Empty(t, cg.ConstraintsOn("b"))
}

func TestConstraintGraph_RemoveAbsentVariableWarnsNotPanics(t *testing.T) {
	cg := constraint.New[string]()
	assert.NotPanics(t, func() { cg.RemoveVariable("ghost") })
}

func TestConstraintGraph_ConstraintsOnAllAndAny(t *testing.T) {
	cg := constraint.New[string]()
	c1 := constraint.NewPlusConstraint("a", "b", "c")
	c2 := constraint.NewPlusConstraint("a", "x", "y")
	cg.AddConstraint(c1)
	cg.AddConstraint(c2)

	all := cg.ConstraintsOnAll([]string{"a", "b"})
	assert.Len(t, all, 1)

	any := cg.ConstraintsOnAny([]string{"b", "x"})
	assert.Len(t, any, 2)
}

func TestConstraintGraph_AddConstraintIdempotent(t *testing.T) {
	cg := constraint.New[string]()
	c := constraint.NewPlusConstraint("a", "b", "c")
	cg.AddConstraint(c)
	cg.AddConstraint(c)
	assert.Len(t, cg.ConstraintsOn("a"), 1)
}
