package sim_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shipfire/bot"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/ship"
	"github.com/katalvlaran/shipfire/sim"
)

// ExampleRunTrial runs bot A on a deck where the fire cannot spread.
func ExampleRunTrial() {
	world, _ := ship.Parse(`
		B O O
		# # O
		F # G`, 0)
	policy, _ := bot.New(bot.CommitOnce)
	rep, _ := sim.RunTrial(context.Background(), world, policy, randsrc.FromSeed(1))
	fmt.Println(rep.Outcome, rep.Moves, rep.Ticks)
	// Output: win 4 3
}
