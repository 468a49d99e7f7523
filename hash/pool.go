package hash

import (
	stdhash "hash"
	"sync"
)

// pool amortizes allocations of keccak hashers.
var pool = &sync.Pool{
	New: func() any {
		return New()
	},
}

// GetHasher will get a keccak hasher from the pool.
// It may or may not allocate a new one.
func GetHasher() stdhash.Hash {
	return pool.Get().(stdhash.Hash)
}

// PutHasher resets the hasher and returns it back to the pool.
func PutHasher(hasher stdhash.Hash) {
	hasher.Reset()
	pool.Put(hasher)
}
