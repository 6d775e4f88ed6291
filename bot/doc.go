// Package bot implements the navigation policies that move the agent
// towards the goal, one cell per Step.
//
//   - CommitOnce (bot A) plans a plain route at its first step and then
//     follows it blindly, even into fire.
//   - Replan (bot B) recomputes a plain route every step and takes its first
//     move.
//   - FireAware (bot C) recomputes every step, first avoiding cells next to
//     fire and falling back to a plain route when that fails.
//   - RiskAware (bot D) runs a Monte-Carlo risk estimate every step and
//     takes the first move of a risk-weighted route.
//
// Step reports whether the agent moved. (false, nil) means no route to the
// goal exists right now; interpreting that as a loss is the caller's job.
// A non-nil error means a broken plan (ErrInvalidPlan, ship.ErrInvalidMove)
// or a failing risk estimate, and the trial must be aborted.
//
// Each policy walks Unplanned → Planned → Done, or Unplanned/Planned →
// Failed. Policies keep per-trial state: build a fresh one for every trial.
package bot
