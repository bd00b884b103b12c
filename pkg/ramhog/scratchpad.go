// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package ramhog

import (
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// Pads is the scratchpad set RamHog reads and writes during a hash. It is
// an ordered sequence of N pads of C 64-bit words each, allocated
// contiguously per pad per spec (prefetch locality). Implementations are
// not safe for concurrent use by more than one in-flight hash.
type Pads interface {
	N() int
	C() int
	// Pad returns the backing slice for scratchpad k, 0 <= k < N().
	Pad(k int) []uint64
	// Free releases the backing memory. Safe to call more than once.
	Free()
}

// slicePads is the Managed/Reusable allocator built on ordinary GC-managed
// slices: make N pads of C words up front, hold them for the caller's
// lifetime of choice.
type slicePads struct {
	pads [][]uint64
}

// NewPads allocates N contiguous pads of C 64-bit words each using the Go
// allocator. This is the "Managed" and "Reusable" entry point described in
// spec §4.3: callers that want a one-shot scratchpad set for a single hash
// use it directly and call Free when done; callers in a hot path allocate
// once at startup and reuse the same Pads across every call to
// HashWithPads.
func NewPads(n, c int) (Pads, error) {
	if n <= 0 || c <= 0 {
		return nil, errors.New("ramhog: N and C must be positive")
	}
	pads := make([][]uint64, n)
	for i := range pads {
		pads[i] = make([]uint64, c)
	}
	return &slicePads{pads: pads}, nil
}

func (p *slicePads) N() int            { return len(p.pads) }
func (p *slicePads) C() int            { return len(p.pads[0]) }
func (p *slicePads) Pad(k int) []uint64 { return p.pads[k] }
func (p *slicePads) Free()             { p.pads = nil }

// mmapPads is the mmap-backed allocator variant described in
// SPEC_FULL.md §1.2: one anonymous, contiguous mapping per pad, released
// explicitly via Unmap rather than left to GC timing. Useful for the
// reference parameters' multi-gigabyte footprint, where a caller wants a
// release point independent of the garbage collector.
type mmapPads struct {
	regions []mmap.MMap
	words   [][]uint64
}

// NewMmapPads allocates N pads of C 64-bit words each as anonymous memory
// mappings. It satisfies the same Pads contract as NewPads.
func NewMmapPads(n, c int) (Pads, error) {
	if n <= 0 || c <= 0 {
		return nil, errors.New("ramhog: N and C must be positive")
	}

	regions := make([]mmap.MMap, n)
	words := make([][]uint64, n)
	for i := 0; i < n; i++ {
		region, err := mmap.MapRegion(nil, c*8, mmap.RDWR, mmap.ANON, 0)
		if err != nil {
			for j := 0; j < i; j++ {
				_ = regions[j].Unmap()
			}
			return nil, errors.Wrap(err, "ramhog: mmap scratchpad")
		}
		regions[i] = region
		words[i] = unsafe.Slice((*uint64)(unsafe.Pointer(&region[0])), c)
	}

	return &mmapPads{regions: regions, words: words}, nil
}

func (p *mmapPads) N() int             { return len(p.words) }
func (p *mmapPads) C() int             { return len(p.words[0]) }
func (p *mmapPads) Pad(k int) []uint64 { return p.words[k] }

func (p *mmapPads) Free() {
	for _, r := range p.regions {
		if r != nil {
			_ = r.Unmap()
		}
	}
	p.regions = nil
	p.words = nil
}
