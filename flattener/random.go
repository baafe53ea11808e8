package flattener

import "math/rand/v2"

// RandomEntry returns a pseudo-randomly chosen leaf of root. ok is false
// when root has no leaves. Passing a seeded rng makes the choice
// reproducible; a nil rng uses the runtime's shared source.
func RandomEntry(root any, rng *rand.Rand, opts ...Option) (entry Entry, ok bool) {
	flat := Flatten(root, opts...)
	if flat.Len() == 0 {
		return Entry{}, false
	}

	var i int
	if rng != nil {
		i = rng.IntN(flat.Len())
	} else {
		i = rand.IntN(flat.Len())
	}
	key := flat.keys[i]
	return Entry{Path: key, Value: flat.values[key]}, true
}
