package ringalloc

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the number of arena bytes every allocation spends on
// bookkeeping. It is the same on every platform; an arena of
// k*(itemSize+HeaderSize) bytes holds exactly k word-sized items.
const HeaderSize = 8

// none marks an empty head, tail or next link.
const none = -1

// blockHeader is a view of the header preceding a payload:
//
//	[0:4] payload length, rounded to WordSize
//	[4:8] offset of the next younger header, or none
type blockHeader []byte

// header returns the header view at off. Offsets come only from the chain,
// so an out of range offset means the arena was overwritten.
func (r *Ring) header(off int) blockHeader {
	if off < 0 || off+HeaderSize > len(r.mem) {
		panic(fmt.Errorf("%w: header offset %d outside arena of %d bytes", ErrCorrupt, off, len(r.mem)))
	}
	return blockHeader(r.mem[off : off+HeaderSize : off+HeaderSize])
}

func (h blockHeader) length() int {
	return int(binary.LittleEndian.Uint32(h[0:4]))
}

func (h blockHeader) setLength(n int) {
	binary.LittleEndian.PutUint32(h[0:4], uint32(n))
}

func (h blockHeader) next() int {
	return int(int32(binary.LittleEndian.Uint32(h[4:8])))
}

func (h blockHeader) setNext(off int) {
	binary.LittleEndian.PutUint32(h[4:8], uint32(int32(off)))
}
