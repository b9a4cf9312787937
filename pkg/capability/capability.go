// Package capability implements the fat-pointer capability model: a
// bounds- and permission-carrying pointer value that can only be
// narrowed, never widened, after creation.
package capability

import (
	"fmt"
	"strings"
)

// Perms is the capability permission bitset.
type Perms uint8

const (
	PermRead   Perms = 1 << 0
	PermWrite  Perms = 1 << 1
	PermExec   Perms = 1 << 2
	PermCap    Perms = 1 << 3 // May store/load capabilities
	PermSeal   Perms = 1 << 4
	PermUnseal Perms = 1 << 5
)

// CanRead reports whether the read bit is set.
func (p Perms) CanRead() bool { return p&PermRead != 0 }

// CanWrite reports whether the write bit is set.
func (p Perms) CanWrite() bool { return p&PermWrite != 0 }

// CanExec reports whether the execute bit is set.
func (p Perms) CanExec() bool { return p&PermExec != 0 }

// CanRestrictTo reports whether other is a bitwise subset of p, i.e.
// restricting to other would not add permissions.
func (p Perms) CanRestrictTo(other Perms) bool {
	return p&other == other
}

// String renders the permission set as a short flag string, e.g. "rw".
func (p Perms) String() string {
	var b strings.Builder
	flags := []struct {
		bit Perms
		c   byte
	}{
		{PermRead, 'r'}, {PermWrite, 'w'}, {PermExec, 'x'},
		{PermCap, 'c'}, {PermSeal, 's'}, {PermUnseal, 'u'},
	}
	for _, f := range flags {
		if p&f.bit != 0 {
			b.WriteByte(f.c)
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// ValidTag is the magic tag marking a live capability.
const ValidTag uint8 = 0xCA

// FatPointer is a 128-bit capability: a cursor (Address) into a bounded
// region [Base, Base+Length) with a permission set and a taint level.
//
// Packed register representation:
//
//	meta word: [tag:8][taint:8][perms:8][length:32][base low:8]
//	addr word: [base high:8][address:56]
type FatPointer struct {
	Tag     uint8
	Taint   uint8
	Perms   Perms
	Length  uint32
	Base    uint64
	Address uint64
}

// New creates a capability spanning [base, base+length) with the given
// permissions. The cursor starts at base and the taint level at zero.
func New(base uint64, length uint32, perms Perms) FatPointer {
	return FatPointer{
		Tag:     ValidTag,
		Perms:   perms,
		Length:  length,
		Base:    base,
		Address: base,
	}
}

// IsValid reports whether the tag marks a live capability.
func (f FatPointer) IsValid() bool {
	return f.Tag == ValidTag
}

// Invalidate returns the capability with its tag cleared. All later
// bounds and permission checks on the result fail.
func (f FatPointer) Invalidate() FatPointer {
	f.Tag = 0
	return f
}

// HasPerm reports whether every bit of p is granted.
func (f FatPointer) HasPerm(p Perms) bool {
	return f.IsValid() && f.Perms&p == p
}

// CheckBounds reports whether an access of size bytes at the current
// address stays inside the region.
func (f FatPointer) CheckBounds(size uint64) bool {
	if !f.IsValid() {
		return false
	}
	end := satAdd(f.Address, size)
	return f.Address >= f.Base && end <= satAdd(f.Base, uint64(f.Length))
}

// Restrict derives a narrower capability. It fails if the new region is
// not contained in the current one or the new permissions are not a
// subset of the current ones. Taint carries over; restriction can never
// launder it. The derived cursor starts at the new base.
func (f FatPointer) Restrict(newBase uint64, newLength uint32, newPerms Perms) (FatPointer, bool) {
	if newBase < f.Base {
		return FatPointer{}, false
	}
	if newBase+uint64(newLength) > f.Base+uint64(f.Length) {
		return FatPointer{}, false
	}
	if !f.Perms.CanRestrictTo(newPerms) {
		return FatPointer{}, false
	}
	return FatPointer{
		Tag:     ValidTag,
		Taint:   f.Taint,
		Perms:   newPerms,
		Length:  newLength,
		Base:    newBase,
		Address: newBase,
	}, true
}

// Pack encodes the capability into two 64-bit words.
func (f FatPointer) Pack() (meta, addr uint64) {
	meta = uint64(f.Tag)<<56 |
		uint64(f.Taint)<<48 |
		uint64(f.Perms)<<40 |
		uint64(f.Length)<<8 |
		f.Base&0xFF
	addr = f.Address | (f.Base>>8)<<56
	return meta, addr
}

// Unpack decodes a capability from its two-word packed form. Pack and
// Unpack are exact inverses for any value produced by New.
func Unpack(meta, addr uint64) FatPointer {
	return FatPointer{
		Tag:     uint8(meta >> 56),
		Taint:   uint8(meta >> 48),
		Perms:   Perms(meta >> 40),
		Length:  uint32(meta >> 8),
		Base:    (addr>>56)<<8 | meta&0xFF,
		Address: addr & 0x00FF_FFFF_FFFF_FFFF,
	}
}

// String renders the capability for diagnostics.
func (f FatPointer) String() string {
	if !f.IsValid() {
		return "cap(invalid)"
	}
	return fmt.Sprintf("cap(%s base=0x%x len=%d addr=0x%x taint=%d)",
		f.Perms, f.Base, f.Length, f.Address, f.Taint)
}

func satAdd(a, b uint64) uint64 {
	if s := a + b; s >= a {
		return s
	}
	return ^uint64(0)
}
