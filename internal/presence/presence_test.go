package presence

import "testing"

type fakeSource struct {
	inFlight bool
}

func (f *fakeSource) InFlight() bool { return f.inFlight }

func TestIndicatorTracksSource(t *testing.T) {
	src := &fakeSource{}
	ind := New(src)

	if ind.Asserted() {
		t.Fatal("indicator must be deasserted while nothing is in flight")
	}

	src.inFlight = true
	if !ind.Asserted() {
		t.Fatal("indicator must assert exactly while a request is outstanding")
	}

	src.inFlight = false
	if ind.Asserted() {
		t.Fatal("indicator must deassert once the exchange settles")
	}
}

func TestIndicatorNilSource(t *testing.T) {
	if New(nil).Asserted() {
		t.Fatal("indicator without a source never asserts")
	}
}
