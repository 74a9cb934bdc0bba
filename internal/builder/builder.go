// Package builder implements the Builder side of VPACK: the single
// component that actually emits head bytes and payloads into a growing
// byte buffer. Grounded on two things from the retrieved corpus: the
// pooled growing-buffer style of biggeezerdevelopment/simdjson-go's
// encoder.go (newEncoder/e.buf) for the buffer-growth mechanics, and
// ArangoDB VelocyPack's Parser.cpp for
// the reportAdd/cleanupAdd bookkeeping and the short-to-long string
// promotion technique (_examples/original_source/src/Parser.cpp,
// Parser::parseString).
//
// Containers are built depth-first: Open* records where the container's
// head byte will eventually go but writes nothing there yet, children are
// appended directly afterward, and Close inserts the now-known header (and,
// for index-table/cuckoo variants, appends the trailing index) in one
// shift. This mirrors the string promotion trick (write first, fix the
// header once the final size is known) rather than a two-pass length
// precomputation.
package builder

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/vpackdb/vpack/internal/vhash"
	"github.com/vpackdb/vpack/internal/vtype"
	"github.com/vpackdb/vpack/internal/wire"
)

// Builder accumulates a single VPACK value (scalar, or an array/object
// tree) into Buf. The zero value is ready to use.
type Builder struct {
	Buf []byte

	// SortAttributeNames orders object payload entries lexicographically
	// by key before the cuckoo table is built, matching the reference
	// default. Lookup correctness does not depend on this; only the
	// on-wire entry order does.
	SortAttributeNames bool

	// CheckAttributeUniqueness rejects an object close when two keys in
	// the same object compare equal.
	CheckAttributeUniqueness bool

	// Compact, when set, makes Close emit the linear-scan compact
	// encoding (head 0x13/0x14) instead of the indexed/cuckoo form. Off
	// by default so ordinary building exercises the index table and
	// cuckoo hash machinery the rest of the package is built around.
	Compact bool

	stack []frame
}

type frame struct {
	start    int
	isObject bool
	keyOpen  bool
	entries  []int // start offsets of each array element, or each object key
}

// New returns a ready-to-use Builder.
func New() *Builder {
	return &Builder{}
}

// Reset empties the builder so it can be reused for a new value.
func (b *Builder) Reset() {
	b.Buf = b.Buf[:0]
	b.stack = b.stack[:0]
}

// ReserveSpace ensures the builder's buffer can grow by n bytes without a
// further reallocation. Part of the Builder contract; ordinary Add calls
// already grow the buffer themselves via append, so callers rarely need
// this directly.
func (b *Builder) ReserveSpace(n int) {
	if cap(b.Buf)-len(b.Buf) >= n {
		return
	}
	grown := make([]byte, len(b.Buf), len(b.Buf)+n+len(b.Buf)/2+64)
	copy(grown, b.Buf)
	b.Buf = grown
}

func (b *Builder) topFrame() *frame {
	return &b.stack[len(b.stack)-1]
}

// reportAdd records the bookkeeping for a value about to be written at
// the current buffer position: inside an array it remembers the new
// element's start offset, inside an object it closes out the key that
// was opened by AddKeyString/AddKeyID. At the top level it is a no-op.
func (b *Builder) reportAdd() {
	if len(b.stack) == 0 {
		return
	}
	f := b.topFrame()
	if f.isObject {
		f.keyOpen = false
		return
	}
	f.entries = append(f.entries, len(b.Buf))
}

// CleanupAdd undoes the bookkeeping reportAdd performed for a value that
// turned out to fail mid-write (for example a parse error partway through
// a nested container), discarding whatever bytes were written for it.
// Part of the Builder contract mirroring Parser::cleanupAdd.
func (b *Builder) CleanupAdd() {
	b.RemoveLast()
}

// RemoveLast discards the most recently added element (array) or
// key/value pair (object) from the currently open container.
func (b *Builder) RemoveLast() {
	if len(b.stack) == 0 {
		return
	}
	f := b.topFrame()
	if len(f.entries) == 0 {
		return
	}
	last := f.entries[len(f.entries)-1]
	f.entries = f.entries[:len(f.entries)-1]
	b.Buf = b.Buf[:last]
	f.keyOpen = false
}

// ---- scalars ----

func (b *Builder) AddNull() {
	b.reportAdd()
	b.Buf = append(b.Buf, vtype.HeadNull)
}

func (b *Builder) AddBool(v bool) {
	b.reportAdd()
	if v {
		b.Buf = append(b.Buf, vtype.HeadTrue)
	} else {
		b.Buf = append(b.Buf, vtype.HeadFalse)
	}
}

func (b *Builder) AddDouble(v float64) {
	b.reportAdd()
	b.Buf = append(b.Buf, vtype.HeadDouble)
	var tmp [8]byte
	wire.PutUint(tmp[:], 8, math.Float64bits(v))
	b.Buf = append(b.Buf, tmp[:]...)
}

func (b *Builder) AddUTCDate(millis int64) {
	b.reportAdd()
	b.Buf = append(b.Buf, vtype.HeadUTCDate)
	var tmp [8]byte
	wire.PutUint(tmp[:], 8, uint64(millis))
	b.Buf = append(b.Buf, tmp[:]...)
}

// AddInt appends a signed integer, using the SmallInt encoding for -6..9
// and the minimal-width two's-complement encoding otherwise.
func (b *Builder) AddInt(v int64) {
	b.reportAdd()
	if v >= -6 && v <= 9 {
		b.appendSmallInt(v)
		return
	}
	w := signedWidth(v)
	b.Buf = append(b.Buf, byte(vtype.HeadIntBase+w))
	var tmp [8]byte
	wire.PutUint(tmp[:], w, uint64(v)&widthMask(w))
	b.Buf = append(b.Buf, tmp[:w]...)
}

// AddUInt appends an unsigned integer, using the SmallInt encoding for
// 0..9 and the minimal-width encoding otherwise.
func (b *Builder) AddUInt(v uint64) {
	b.reportAdd()
	if v <= 9 {
		b.appendSmallInt(int64(v))
		return
	}
	w := wire.WidthFor(v)
	b.Buf = append(b.Buf, byte(vtype.HeadUIntBase+w))
	var tmp [8]byte
	wire.PutUint(tmp[:], w, v)
	b.Buf = append(b.Buf, tmp[:w]...)
}

func (b *Builder) appendSmallInt(v int64) {
	if v >= 0 {
		b.Buf = append(b.Buf, byte(vtype.HeadSmallIntPosBase+v))
		return
	}
	b.Buf = append(b.Buf, byte(vtype.HeadSmallIntNegBase+(v+6)))
}

// AppendUInt writes head followed by the minimal little-endian width
// needed to hold value, growing head by (width-1). Used for Binary-style
// heads (0xc0 base) and anywhere else a value needs an explicit,
// caller-chosen base head byte.
func (b *Builder) AppendUInt(value uint64, head byte) {
	w := wire.WidthFor(value)
	b.Buf = append(b.Buf, head+byte(w-1))
	var tmp [8]byte
	wire.PutUint(tmp[:], w, value)
	b.Buf = append(b.Buf, tmp[:w]...)
}

func (b *Builder) AddString(s string) {
	b.reportAdd()
	b.writeStringValue(s)
}

func (b *Builder) writeStringValue(s string) {
	if len(s) <= 126 {
		b.Buf = append(b.Buf, byte(vtype.HeadShortStringBase+len(s)))
		b.Buf = append(b.Buf, s...)
		return
	}
	b.Buf = append(b.Buf, vtype.HeadLongString)
	var tmp [8]byte
	wire.PutUint(tmp[:], 8, uint64(len(s)))
	b.Buf = append(b.Buf, tmp[:]...)
	b.Buf = append(b.Buf, s...)
}

func (b *Builder) AddBinary(data []byte) {
	b.reportAdd()
	w := wire.WidthFor(uint64(len(data)))
	b.Buf = append(b.Buf, byte(vtype.HeadBinaryBase+w-1))
	var tmp [8]byte
	wire.PutUint(tmp[:], w, uint64(len(data)))
	b.Buf = append(b.Buf, tmp[:w]...)
	b.Buf = append(b.Buf, data...)
}

// AddKeyString opens an object key with a plain string name. Must be
// called while an object is open and no key is currently awaiting a
// value.
func (b *Builder) AddKeyString(name string) error {
	f, err := b.requireObjectForKey()
	if err != nil {
		return err
	}
	f.entries = append(f.entries, len(b.Buf))
	b.writeStringValue(name)
	f.keyOpen = true
	return nil
}

// AddKeyID opens an object key using a translated integer attribute id
// (SmallInt/UInt encoding) instead of a string name.
func (b *Builder) AddKeyID(id uint64) error {
	f, err := b.requireObjectForKey()
	if err != nil {
		return err
	}
	f.entries = append(f.entries, len(b.Buf))
	if id <= 9 {
		b.appendSmallInt(int64(id))
	} else {
		w := wire.WidthFor(id)
		b.Buf = append(b.Buf, byte(vtype.HeadUIntBase+w))
		var tmp [8]byte
		wire.PutUint(tmp[:], w, id)
		b.Buf = append(b.Buf, tmp[:w]...)
	}
	f.keyOpen = true
	return nil
}

// AddKeyRaw opens an object key using an already-encoded VPACK value
// (head byte plus payload) supplied verbatim, as produced by an
// AttributeTranslator.
func (b *Builder) AddKeyRaw(encoded []byte) error {
	f, err := b.requireObjectForKey()
	if err != nil {
		return err
	}
	f.entries = append(f.entries, len(b.Buf))
	b.Buf = append(b.Buf, encoded...)
	f.keyOpen = true
	return nil
}

func (b *Builder) requireObjectForKey() (*frame, error) {
	if len(b.stack) == 0 || !b.topFrame().isObject {
		return nil, fmt.Errorf("vpack: AddKey called outside an open object")
	}
	f := b.topFrame()
	if f.keyOpen {
		return nil, fmt.Errorf("vpack: AddKey called while a key is already awaiting a value")
	}
	return f, nil
}

// ---- containers ----

func (b *Builder) OpenArray() {
	b.reportAdd()
	b.stack = append(b.stack, frame{start: len(b.Buf)})
}

func (b *Builder) OpenObject() {
	b.reportAdd()
	b.stack = append(b.stack, frame{start: len(b.Buf), isObject: true})
}

// IsOpen reports whether any array or object is still awaiting Close.
// A Builder left open by a caller that skipped the outermost Close
// (see Parser.Options.KeepTopLevelOpen) is not yet a valid encoded
// value.
func (b *Builder) IsOpen() bool {
	return len(b.stack) > 0
}

// Close finalizes the innermost open array or object, writing its head,
// length fields and (for non-compact containers) index table.
func (b *Builder) Close() error {
	if len(b.stack) == 0 {
		return fmt.Errorf("vpack: Close called with no open container")
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if f.isObject {
		return b.closeObject(f)
	}
	return b.closeArray(f)
}

// insertAt splices seg into buf at pos, shifting everything from pos
// onward forward by len(seg).
func insertAt(buf []byte, pos int, seg []byte) []byte {
	buf = append(buf, seg...)
	copy(buf[pos+len(seg):], buf[pos:len(buf)-len(seg)])
	copy(buf[pos:], seg)
	return buf
}

func (b *Builder) closeArray(f frame) error {
	n := len(f.entries)
	if n == 0 {
		b.Buf = insertAt(b.Buf, f.start, []byte{vtype.HeadEmptyArray})
		return nil
	}
	if b.Compact {
		return b.closeArrayCompact(f)
	}

	payloadLen := len(b.Buf) - f.start
	if sameSize := elementSizesUniform(f.entries, len(b.Buf)); sameSize {
		return b.closeArrayNoIndex(f, payloadLen)
	}
	return b.closeArrayIndexed(f, payloadLen)
}

func elementSizesUniform(entries []int, end int) bool {
	if len(entries) < 2 {
		return true
	}
	size := entries[1] - entries[0]
	for i := 1; i < len(entries); i++ {
		next := end
		if i+1 < len(entries) {
			next = entries[i+1]
		}
		if next-entries[i] != size {
			return false
		}
	}
	return true
}

func (b *Builder) closeArrayNoIndex(f frame, payloadLen int) error {
	w := 1
	for {
		total := 1 + w + payloadLen
		w2 := wire.WidthFor(uint64(total))
		if w2 <= w {
			break
		}
		w = w2
	}
	header := make([]byte, 1+w)
	header[0] = byte(vtype.HeadArrayNoIndex1 + widthIndex(w))
	wire.PutUint(header[1:], w, uint64(1+w+payloadLen))
	b.Buf = insertAt(b.Buf, f.start, header)
	return nil
}

func (b *Builder) closeArrayIndexed(f frame, payloadLen int) error {
	n := len(f.entries)
	w := 1
	for {
		headerLen := 1 + 2*w
		total := headerLen + payloadLen + n*w
		w2 := wire.WidthFor(uint64(total))
		if w2 <= w {
			break
		}
		w = w2
	}
	headerLen := 1 + 2*w
	header := make([]byte, headerLen)
	header[0] = byte(vtype.HeadArrayIndexed1 + widthIndex(w))
	total := headerLen + payloadLen + n*w
	wire.PutUint(header[1:], w, uint64(total))
	wire.PutUint(header[1+w:], w, uint64(n))

	idx := make([]byte, n*w)
	for i, e := range f.entries {
		rel := headerLen + (e - f.start)
		wire.PutUint(idx[i*w:], w, uint64(rel))
	}

	b.Buf = insertAt(b.Buf, f.start, header)
	b.Buf = append(b.Buf, idx...)
	return nil
}

func (b *Builder) closeArrayCompact(f frame) error {
	n := len(f.entries)
	payloadLen := len(b.Buf) - f.start
	vlen := 1
	for {
		total := 1 + vlen + payloadLen + varintReverseLen(uint64(n))
		vlen2 := varintForwardLen(uint64(total))
		if vlen2 == vlen {
			break
		}
		vlen = vlen2
	}
	total := 1 + vlen + payloadLen + varintReverseLen(uint64(n))
	header := make([]byte, 0, 1+vlen)
	header = append(header, vtype.HeadCompactArray)
	header = wire.AppendVarint(header, uint64(total))
	b.Buf = insertAt(b.Buf, f.start, header)
	b.Buf = wire.AppendVarintReversed(b.Buf, uint64(n))
	return nil
}

func (b *Builder) closeObject(f frame) error {
	n := len(f.entries)
	if n == 0 {
		b.Buf = insertAt(b.Buf, f.start, []byte{vtype.HeadEmptyObject})
		return nil
	}
	if b.Compact {
		return b.closeObjectCompact(f)
	}
	return b.closeObjectIndexed(f)
}

type pairRange struct{ start, end int }

func (b *Builder) closeObjectIndexed(f frame) (err error) {
	n := len(f.entries)
	pairs := make([]pairRange, n)
	for i, e := range f.entries {
		end := len(b.Buf)
		if i+1 < n {
			end = f.entries[i+1]
		}
		pairs[i] = pairRange{e, end}
	}

	payloadStart := f.start
	if b.SortAttributeNames || b.CheckAttributeUniqueness {
		sort.Slice(pairs, func(i, j int) bool {
			return bytes.Compare(keySortBytes(b.Buf, pairs[i].start), keySortBytes(b.Buf, pairs[j].start)) < 0
		})
		if b.CheckAttributeUniqueness {
			for i := 1; i < n; i++ {
				if bytes.Equal(keySortBytes(b.Buf, pairs[i-1].start), keySortBytes(b.Buf, pairs[i].start)) {
					return fmt.Errorf("vpack: duplicate attribute name")
				}
			}
		}
	}

	newPayload := make([]byte, 0, len(b.Buf)-payloadStart)
	relStarts := make([]int, n)
	for i, p := range pairs {
		relStarts[i] = len(newPayload)
		newPayload = append(newPayload, b.Buf[p.start:p.end]...)
	}
	b.Buf = append(b.Buf[:payloadStart], newPayload...)
	payloadLen := len(newPayload)

	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = keySortBytes(b.Buf, payloadStart+relStarts[i])
	}

	nSlots, seed, slots, err := buildCuckooTable(keys)
	if err != nil {
		return err
	}

	w := 1
	for {
		headerLen := 2 + 3*w
		total := headerLen + payloadLen + nSlots*w
		w2 := wire.WidthFor(uint64(total))
		if w2 <= w {
			break
		}
		w = w2
	}
	headerLen := 2 + 3*w
	total := headerLen + payloadLen + nSlots*w

	header := make([]byte, headerLen)
	header[0] = byte(vtype.HeadObjectIndexed1 + widthIndex(w))
	wire.PutUint(header[1:], w, uint64(total))
	wire.PutUint(header[1+w:], w, uint64(n))
	wire.PutUint(header[1+2*w:], w, uint64(nSlots))
	header[1+3*w] = byte(seed)

	idx := make([]byte, nSlots*w)
	for slotIdx, keyIdx := range slots {
		if keyIdx < 0 {
			continue
		}
		rel := headerLen + relStarts[keyIdx]
		wire.PutUint(idx[slotIdx*w:], w, uint64(rel))
	}

	b.Buf = insertAt(b.Buf, f.start, header)
	b.Buf = append(b.Buf, idx...)
	return nil
}

func (b *Builder) closeObjectCompact(f frame) error {
	n := len(f.entries)
	payloadLen := len(b.Buf) - f.start
	vlen := 1
	for {
		total := 1 + vlen + payloadLen + varintReverseLen(uint64(n))
		vlen2 := varintForwardLen(uint64(total))
		if vlen2 == vlen {
			break
		}
		vlen = vlen2
	}
	total := 1 + vlen + payloadLen + varintReverseLen(uint64(n))
	header := make([]byte, 0, 1+vlen)
	header = append(header, vtype.HeadCompactObject)
	header = wire.AppendVarint(header, uint64(total))
	b.Buf = insertAt(b.Buf, f.start, header)
	b.Buf = wire.AppendVarintReversed(b.Buf, uint64(n))
	return nil
}

// keySortBytes returns the comparable/hashable bytes for the key value
// starting at buf[at]: the decoded string content for String keys, or
// the raw head byte for translated (integer) keys, which sort and hash
// by their encoded representation instead.
func keySortBytes(buf []byte, at int) []byte {
	head := buf[at]
	switch {
	case head >= vtype.HeadShortStringBase && head <= vtype.HeadShortStringEnd:
		l := int(head - vtype.HeadShortStringBase)
		return buf[at+1 : at+1+l]
	case head == vtype.HeadLongString:
		l := int(wire.ReadUint(buf[at+1:], 8))
		return buf[at+9 : at+9+l]
	default:
		return buf[at : at+1]
	}
}

// buildCuckooTable searches seeds 0..255 and growing slot counts for a
// cuckoo placement of all of keys, exactly as Slice.Get later expects to
// find them (fasthash64x3 over the raw key bytes, using the reference
// seed table).
func buildCuckooTable(keys [][]byte) (nSlots int, seed int, slots []int, err error) {
	n := len(keys)
	if n == 0 {
		return 0, 0, nil, nil
	}
	nSlots = n + n/4 + 1
	for tries := 0; tries < 32; tries++ {
		for s := 0; s < 256; s++ {
			seeds := [3]uint64{
				vtype.SeedTable[s*3],
				vtype.SeedTable[s*3+1],
				vtype.SeedTable[s*3+2],
			}
			if placement, ok := tryCuckooPlacement(keys, nSlots, seeds); ok {
				return nSlots, s, placement, nil
			}
		}
		nSlots = nSlots + nSlots/2 + 1
	}
	return 0, 0, nil, fmt.Errorf("vpack: could not find a cuckoo placement for %d attributes", n)
}

func slotFor(h uint64, nSlots int) int {
	if nSlots <= (1 << 24) {
		return int(vhash.FastMod32(h, uint64(nSlots)))
	}
	return int(h % uint64(nSlots))
}

func tryCuckooPlacement(keys [][]byte, nSlots int, seeds [3]uint64) ([]int, bool) {
	slots := make([]int, nSlots)
	for i := range slots {
		slots[i] = -1
	}
	maxKicks := nSlots*2 + 32
	for i := range keys {
		cur := i
		for kicks := 0; ; kicks++ {
			if kicks > maxKicks {
				return nil, false
			}
			h := vhash.Hash64x3(keys[cur], seeds)
			pos := [3]int{slotFor(h[0], nSlots), slotFor(h[1], nSlots), slotFor(h[2], nSlots)}
			placed := false
			for _, p := range pos {
				if slots[p] == -1 {
					slots[p] = cur
					placed = true
					break
				}
			}
			if placed {
				break
			}
			evictSlot := pos[0]
			cur, slots[evictSlot] = slots[evictSlot], cur
		}
	}
	return slots, true
}

func signedWidth(v int64) int {
	if v >= -128 && v <= 127 {
		return 1
	}
	if v >= -32768 && v <= 32767 {
		return 2
	}
	if v >= -2147483648 && v <= 2147483647 {
		return 4
	}
	return 8
}

func widthMask(w int) uint64 {
	if w >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << (8 * uint(w))) - 1
}

func widthIndex(w int) int {
	switch w {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	default:
		return 3
	}
}

func varintForwardLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

func varintReverseLen(v uint64) int {
	return varintForwardLen(v)
}
