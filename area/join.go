package area

// join drags to along whenever from moves.
type join struct {
	from, to Entity
}

// Join records that whenever a moves, b is moved by the same amount, even if b is
// not pushable. Joins are directional: moving b does not move a. Joining the same
// pair twice has no effect.
func (a *Area) Join(from, to Entity) {
	if from == to {
		return
	}
	for _, j := range a.joins {
		if j.from == from && j.to == to {
			return
		}
	}
	a.joins = append(a.joins, join{from: from, to: to})
	a.log.Debugf("area %d: joined %d -> %d", a.guid, from.GUID(), to.GUID())
}

// Unjoin removes the join from a to b. It returns false if there was none.
func (a *Area) Unjoin(from, to Entity) bool {
	for i, j := range a.joins {
		if j.from == from && j.to == to {
			a.joins = append(a.joins[:i], a.joins[i+1:]...)
			a.log.Debugf("area %d: unjoined %d -> %d", a.guid, from.GUID(), to.GUID())
			return true
		}
	}
	return false
}

// Joined returns every entity dragged along by the entity passed, in the order the
// joins were made.
func (a *Area) Joined(from Entity) []Entity {
	var out []Entity
	for _, j := range a.joins {
		if j.from == from {
			out = append(out, j.to)
		}
	}
	return out
}

// dropJoins forgets every join involving the entity.
func (a *Area) dropJoins(e Entity) {
	kept := a.joins[:0]
	for _, j := range a.joins {
		if j.from != e && j.to != e {
			kept = append(kept, j)
		}
	}
	a.joins = kept
}
