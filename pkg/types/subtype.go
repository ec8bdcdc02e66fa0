package types

import "github.com/hashicorp/go-set/v3"

// reaches reports whether target is reachable from start by following
// direct-supertype edges zero or more times. The worklist carries an
// explicit visited set so diamond-shaped graphs count each ancestor
// once and a supertype list that accidentally cycles still terminates.
func reaches(start, target Type) bool {
	if start == target {
		return true
	}
	seen := set.New[Type](4)
	seen.Insert(start)
	work := []Type{start}
	for len(work) > 0 {
		next := work[0]
		work = work[1:]
		for _, super := range next.DirectSupertypes() {
			if super == target {
				return true
			}
			if seen.Insert(super) {
				work = append(work, super)
			}
		}
	}
	return false
}

// Ancestors returns the reflexive-transitive supertype closure of t in
// breadth-first order, starting with t itself. Each ancestor appears
// exactly once even when it is reachable along several paths.
func Ancestors(t Type) []Type {
	seen := set.New[Type](4)
	seen.Insert(t)
	closure := []Type{t}
	for i := 0; i < len(closure); i++ {
		for _, super := range closure[i].DirectSupertypes() {
			if seen.Insert(super) {
				closure = append(closure, super)
			}
		}
	}
	return closure
}
