package arena

import "testing"

func TestArenaAlignAndGrow(t *testing.T) {
	a, err := New("test", 4<<20)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Free()

	p := a.Alloc(37, 16)
	if len(p) != 37 {
		t.Fatalf("got %d bytes, want 37", len(p))
	}
	if a.Used()%16 != 0 && (a.Used()-37)%16 != 0 {
		t.Fatalf("allocation not aligned, used=%d", a.Used())
	}
	if a.Used() > a.Reserved() {
		t.Fatalf("used %d exceeds reservation %d", a.Used(), a.Reserved())
	}
}

func TestArenaZeroSizeNeverNil(t *testing.T) {
	a, err := New("zero", 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Free()

	p := a.Alloc(0, 8)
	if p == nil {
		t.Fatal("zero-size allocation returned nil")
	}
}

func TestArenaScopeRestoresWatermark(t *testing.T) {
	a, err := New("scope", 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Free()

	before := a.Used()
	a.Scope(func() {
		a.Alloc(1024, 8)
	})
	if a.Used() != before {
		t.Fatalf("scope leaked: used=%d, want %d", a.Used(), before)
	}
}

func TestArenaDebugLeakDetection(t *testing.T) {
	a, err := New("leaky", 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	a.Debug = true
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a leak panic on Free with an outstanding allocation")
		}
	}()
	a.Alloc(16, 8)
	a.Free()
}

func TestArenaDebugScopeTrimsLog(t *testing.T) {
	a, err := New("scoped-debug", 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	a.Debug = true
	defer a.Free() // nothing outstanding once the scope unwinds

	a.Scope(func() {
		a.Alloc(16, 8)
	})
	if a.log != nil {
		t.Fatal("debug log should be empty after the scope exits")
	}
}

func TestFreelistAllocFreeCoalesce(t *testing.T) {
	f, err := NewFreelist("fl", 1<<16)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Release()

	a := f.Alloc(100, 8)
	b := f.Alloc(200, 8)
	if a == nil || b == nil {
		t.Fatal("expected successful allocations")
	}
	f.Free(a)
	f.Free(b)

	if len(f.free) != 1 {
		t.Fatalf("expected coalesced freelist to have 1 span, got %d", len(f.free))
	}
}

func TestPowFreelistGrowsOnExhaustion(t *testing.T) {
	pf, err := NewPowFreelist("pow", 4, 8, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer pf.Release()

	var ptrs [][]byte
	for i := 0; i < 10; i++ {
		ptrs = append(ptrs, pf.Alloc(64))
	}
	for _, p := range ptrs {
		pf.Free(p)
	}
}

func TestRingWraps(t *testing.T) {
	r, err := NewRing("ring", 256)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	r.Alloc(200, 8)
	p := r.Alloc(200, 8)
	if len(p) != 200 {
		t.Fatalf("expected wrap to still satisfy the request, got %d bytes", len(p))
	}
}
