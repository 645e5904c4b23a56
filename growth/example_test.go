// File: growth/example_test.go
package growth_test

import (
	"fmt"

	"github.com/katalvlaran/dla/growth"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Grow
////////////////////////////////////////////////////////////////////////////////

// ExampleGrow grows a small cluster with a fixed seed.
// Scenario:
//
//   - 101×101 grid, 50 particles, default drift slack.
//   - Seeded options make the run reproducible: the seed cell plus one
//     cell per particle.
func ExampleGrow() {
	opts := growth.DefaultOptions()
	opts.Seed = 1

	g, err := growth.Grow(101, 50, opts)
	if err != nil {
		fmt.Println("grow:", err)
		return
	}
	fmt.Println("occupied cells:", g.Occupied())
	fmt.Println("center:", g.Center())

	// Output:
	// occupied cells: 51
	// center: {50 50}
}
