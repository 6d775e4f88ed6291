// Package shipfire simulates an agent escaping a burning ship.
//
// A square deck is carved into corridors, a fire is lit, and a navigation
// policy moves the agent one cell per round while the fire spreads one tick
// per round. The library is split into small packages:
//
//	gridgraph/   coordinates, directions, connectivity, BFS distances, island repair
//	randsrc/     seeded and derived random streams
//	maze/        corridor growth with dead-end culling
//	ship/        the live world: open and burning cells, agent, goal, rendering
//	fire/        synchronous probabilistic spread, pK = 1−(1−q)^K
//	astar/       plain, fire-avoiding and risk-weighted A*
//	risk/        Monte-Carlo ignition estimates over a horizon
//	bot/         policies A (commit once) to D (risk aware)
//	sim/         single trial orchestration and reports
//	experiment/  flammability sweeps with win rates and move statistics
//	config/      environment and .env settings
//
// Quick start:
//
//	world, _ := sim.NewWorld(50, 0.3, randsrc.FromSeed(1))
//	policy, _ := bot.New(bot.FireAware)
//	rep, _ := sim.RunTrial(ctx, world, policy, randsrc.FromSeed(2))
//	fmt.Println(rep.Outcome, rep.Moves)
//
// Every random choice goes through an explicit *rand.Rand, so a seed fixes
// the deck, the placement, the fire and the risk rollouts.
package shipfire
