package fire_test

import (
	"fmt"

	"github.com/katalvlaran/shipfire/fire"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/ship"
)

// ExampleModel_IgnitionProbability prints the ignition table for q=0.5.
func ExampleModel_IgnitionProbability() {
	m, _ := fire.NewModel(0.5)
	for k := 0; k <= fire.MaxNeighbors; k++ {
		p, _ := m.IgnitionProbability(k)
		fmt.Printf("p%d=%.4f\n", k, p)
	}
	// Output:
	// p0=0.0000
	// p1=0.5000
	// p2=0.7500
	// p3=0.8750
	// p4=0.9375
}

// ExampleSpread shows a full-flammability tick igniting every frontier cell.
func ExampleSpread() {
	s, _ := ship.Parse(`
		O O O
		O F O
		B O G`, 1)
	caught, _ := fire.Spread(s, randsrc.FromSeed(1))
	fmt.Println(caught)
	fmt.Println(s.FireCount(), s.AgentBurning(), s.GoalBurning())
	// Output:
	// [(0, 1) (1, 0) (1, 2) (2, 1)]
	// 5 false false
}
