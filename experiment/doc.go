// Package experiment sweeps flammability for several policies and reports
// win rates and move statistics.
//
// For every policy and every q in QStart, QStart+QStep, … up to QEnd
// (inclusive within 0.005), Sweep runs Runs trials on freshly generated
// worlds. Trial i at flammability index j uses the same world seed for
// every policy, so policies are compared on identical decks.
//
// Move statistics (mean, population standard deviation, median) cover
// winning trials only and are computed with montanaflynn/stats.
package experiment
