// Package sim runs single trials: one world, one policy, until the agent
// escapes, burns, or runs out of routes.
//
// Each round of RunTrial:
//
//  1. the policy takes one step;
//  2. agent on the goal → Win;
//  3. no move possible → NoPath;
//  4. the fire advances one tick;
//  5. agent's or goal's cell burning → Burned.
//
// The live ship is mutated only here. Policy errors (broken plans, failing
// estimates, cancellation) abort the trial and are returned wrapped with
// the trial ID; a lost trial is a Report, never an error.
package sim
