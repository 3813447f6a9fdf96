// Package orbit explores the action of a finitely generated matrix
// group on the projective line P¹(Q).
//
// What:
//
//	Given a generator set acting by Möbius transformations, Explore runs
//	a breadth-first enumeration of the orbit of a seed point, pruned by
//	word length, a height cap, and a node budget. FindPath runs a beam
//	search for a word carrying a start point to the simplest (lowest
//	height) member of a target set, reconstructing the generator word.
//	Sphere enumerates the height-bounded test set S_H used to probe
//	transitivity, and Cover greedily covers S_H with orbits, returning
//	one representative seed per orbit found.
//
// Why:
//
//	Orbit finiteness and height-reduction questions (does every point
//	flow to a small fundamental set?) are answered by exactly these
//	bounded enumerations; exact arithmetic keeps the pruning sound.
//
// Options follow the functional-option convention: invalid values are
// recorded when the option is applied and surfaced as ErrOptionViolation
// when the search starts.
package orbit
