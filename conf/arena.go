package conf

// DefaultBlockSize is the number of Conf slots per arena block when the
// caller does not specify one.
const DefaultBlockSize = 1000

// Arena is a bulk allocator for fixed-width configuration vectors.
// It owns a growing list of blocks, each holding blockSize slots of
// width counts. Copies handed out by Copy are sub-slices of a block;
// blocks are never reallocated or shrunk, so every returned Conf stays
// valid and stable until the arena itself is dropped.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	width     int       // counts per slot
	blockSize int       // slots per block
	blocks    [][]int32 // all blocks ever allocated
	used      int       // slots consumed in the last block
	total     int       // slots handed out overall
}

// NewArena returns an arena producing slots of the given width.
// Non-positive width yields a degenerate arena that only ever hands out
// empty vectors; non-positive blockSize falls back to DefaultBlockSize.
func NewArena(width, blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if width < 0 {
		width = 0
	}

	return &Arena{
		width:     width,
		blockSize: blockSize,
		used:      blockSize, // force a fresh block on first Copy
	}
}

// Copy stores an arena-owned copy of c and returns it.
// c must have the arena's width.
func (a *Arena) Copy(c Conf) Conf {
	if a.used == a.blockSize {
		a.blocks = append(a.blocks, make([]int32, a.width*a.blockSize))
		a.used = 0
	}
	block := a.blocks[len(a.blocks)-1]
	slot := block[a.used*a.width : (a.used+1)*a.width : (a.used+1)*a.width]
	copy(slot, c)
	a.used++
	a.total++

	return slot
}

// Len returns the number of slots handed out so far.
func (a *Arena) Len() int { return a.total }
