package capability

import "testing"

func TestCheckBounds(t *testing.T) {
	p := New(0x1000, 256, PermRead|PermWrite)

	if !p.CheckBounds(1) {
		t.Error("1-byte access at base should be in bounds")
	}
	if !p.CheckBounds(256) {
		t.Error("access of exactly the region length should be in bounds")
	}
	if p.CheckBounds(257) {
		t.Error("access one past the region should be out of bounds")
	}
}

func TestCheckBoundsInvalidTag(t *testing.T) {
	p := New(0x1000, 256, PermRead)
	p.Tag = 0
	if p.CheckBounds(1) {
		t.Error("invalid capability must fail bounds checks")
	}
}

func TestCheckBoundsSaturates(t *testing.T) {
	p := New(^uint64(0)-16, 16, PermRead)
	if p.CheckBounds(^uint64(0)) {
		t.Error("overflowing access size must not wrap into bounds")
	}
}

func TestRestrict(t *testing.T) {
	p := New(0x1000, 256, PermRead|PermWrite)

	r, ok := p.Restrict(0x1010, 100, PermRead)
	if !ok {
		t.Fatal("valid restriction failed")
	}
	if r.Base != 0x1010 || r.Length != 100 || r.Address != 0x1010 {
		t.Errorf("restricted region = base 0x%x len %d addr 0x%x", r.Base, r.Length, r.Address)
	}
	if !r.Perms.CanRead() || r.Perms.CanWrite() {
		t.Errorf("restricted perms = %v, want read-only", r.Perms)
	}

	if _, ok := p.Restrict(0x0F00, 256, PermRead); ok {
		t.Error("lowering the base must fail")
	}
	if _, ok := p.Restrict(0x1000, 257, PermRead); ok {
		t.Error("growing the length must fail")
	}
	if _, ok := p.Restrict(0x10F0, 32, PermRead); ok {
		t.Error("region extending past the end must fail")
	}
	if _, ok := p.Restrict(0x1000, 256, PermRead|PermExec); ok {
		t.Error("adding permissions must fail")
	}
}

func TestRestrictMonotone(t *testing.T) {
	p := New(0x2000, 512, PermRead|PermWrite|PermCap)
	cases := []struct {
		base  uint64
		len   uint32
		perms Perms
	}{
		{0x2000, 512, PermRead | PermWrite | PermCap},
		{0x2010, 64, PermRead},
		{0x2100, 0, 0},
	}
	for _, c := range cases {
		r, ok := p.Restrict(c.base, c.len, c.perms)
		if !ok {
			t.Fatalf("Restrict(0x%x, %d, %v) failed", c.base, c.len, c.perms)
		}
		if r.Base < p.Base {
			t.Errorf("base widened: 0x%x < 0x%x", r.Base, p.Base)
		}
		if r.Base+uint64(r.Length) > p.Base+uint64(p.Length) {
			t.Error("region end widened")
		}
		if !p.Perms.CanRestrictTo(r.Perms) {
			t.Errorf("perms widened: %v not subset of %v", r.Perms, p.Perms)
		}
	}
}

func TestRestrictPreservesTaint(t *testing.T) {
	p := New(0x1000, 256, PermRead|PermWrite)
	p.Taint = 3
	r, ok := p.Restrict(0x1000, 128, PermRead)
	if !ok {
		t.Fatal("restriction failed")
	}
	if r.Taint != 3 {
		t.Errorf("taint = %d after restriction, want 3", r.Taint)
	}
}

func TestInvalidate(t *testing.T) {
	p := New(0x1000, 256, PermRead|PermWrite)
	dead := p.Invalidate()
	if dead.IsValid() {
		t.Error("invalidated capability reports valid")
	}
	if dead.CheckBounds(1) {
		t.Error("invalidated capability passes bounds check")
	}
	if dead.HasPerm(PermRead) {
		t.Error("invalidated capability still grants read")
	}
	if !p.IsValid() {
		t.Error("Invalidate mutated the receiver")
	}
}

func TestHasPerm(t *testing.T) {
	p := New(0x1000, 256, PermRead|PermWrite)
	if !p.HasPerm(PermRead) || !p.HasPerm(PermRead|PermWrite) {
		t.Error("granted permissions not reported")
	}
	if p.HasPerm(PermExec) || p.HasPerm(PermRead|PermExec) {
		t.Error("ungranted permission reported")
	}
}

func TestPackUnpack(t *testing.T) {
	cases := []FatPointer{
		New(0, 0, 0),
		New(0x1000, 256, PermRead|PermWrite),
		New(0xDEAD_BEEF_00, 0xFFFF_FFFF, PermRead|PermWrite|PermExec|PermCap|PermSeal|PermUnseal),
		New(0x00FF_FFFF_FFFF_FF00, 1, PermExec),
	}
	for _, want := range cases {
		want.Taint = 7
		meta, addr := want.Pack()
		got := Unpack(meta, addr)
		if got != want {
			t.Errorf("Unpack(Pack(%+v)) = %+v", want, got)
		}
	}
}

func TestPermsSubset(t *testing.T) {
	rw := PermRead | PermWrite
	if !rw.CanRestrictTo(PermRead) {
		t.Error("rw should restrict to r")
	}
	if !rw.CanRestrictTo(0) {
		t.Error("any perms should restrict to none")
	}
	if rw.CanRestrictTo(PermExec) {
		t.Error("rw should not restrict to x")
	}
}

func TestPermsString(t *testing.T) {
	if got := (PermRead | PermWrite).String(); got != "rw" {
		t.Errorf("Perms.String() = %q, want %q", got, "rw")
	}
	if got := Perms(0).String(); got != "-" {
		t.Errorf("empty Perms.String() = %q, want %q", got, "-")
	}
}
