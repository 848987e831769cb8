package digraph_test

import (
	"fmt"

	"github.com/solvergeo/rigidcore/digraph"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Path a->c?", g.Path("a", "c"))

	g.RemoveVertex("b")
	fmt.Println("Vertices after removing b:", g.Vertices())
	fmt.Println("Path a->c?", g.Path("a", "c"))

	// Output:
	// Vertices: [a b c]
	// Path a->c? true
	// Vertices after removing b: [a c]
	// Path a->c? false
}
