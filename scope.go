package vpack

// SliceScope is an owning arena for Slice values: it copies bytes in so
// the resulting Slice stays valid independent of whatever buffer produced
// it (for example a pooled Builder that gets Reset and reused). Grounded
// on VelocyPack's SliceScope (_examples/original_source/src/Slice.cpp,
// SliceScope::add), generalized from its explicit-free C++ ownership
// model to plain Go garbage collection: there is no Close/Destroy, the
// blocks are simply kept alive by the returned Slices and the scope
// itself.
type SliceScope struct {
	blocks [][]byte
}

// NewSliceScope returns an empty scope.
func NewSliceScope() *SliceScope {
	return &SliceScope{}
}

// Add copies data into a new block owned by the scope and returns a
// Slice over that copy.
func (sc *SliceScope) Add(data []byte) Slice {
	block := make([]byte, len(data))
	copy(block, data)
	sc.blocks = append(sc.blocks, block)
	return Slice{buf: block}
}

// Reset releases the scope's references to its blocks, letting the
// garbage collector reclaim them once no Slice still points at them.
func (sc *SliceScope) Reset() {
	sc.blocks = sc.blocks[:0]
}
