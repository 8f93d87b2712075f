// Package foundations implements the element model at the heart of the
// typograph content representation: a closed registry of native element
// kinds, a uniform handle over their static metadata, capability lookup by
// type identity, the numeric field-access contract, selectors, and the
// interaction behaviour attached to packed instances.
//
// Kinds are registered once at process start (the built-in set lives in the
// elements package) and never change afterward. All metadata reads are safe
// from any number of concurrent compilation passes without locking.
package foundations
