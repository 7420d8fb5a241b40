package voxel

// Block is one cell of a chunk.
//
// Num is the block's current slot in the owning chunk's array. It is a
// display-order position, not an identity: it is rewritten to match the array
// offset every time the array is reordered, and the cell a Solid flag describes
// is the one Num decodes to.
type Block struct {
	Solid bool
	Num   uint16
}
