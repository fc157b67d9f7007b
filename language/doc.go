// Package language assembles the communicative strategy a sender uses: one
// bound operator for the goal location, a different bound operator for the
// goal orientation, and the order in which the two signals are given.
//
// A Language is plain configuration. Build one directly from bound
// operators for reproducible experiments, or let New sample it: New picks a
// location operator and a distinct orientation operator uniformly from the
// given pools, binds every free variable to a uniformly chosen value of its
// domain, and picks a signal order unless WithOrder fixes it. Sampling
// needs an explicit random source (WithSeed or WithRand); nothing random
// happens without one.
package language
