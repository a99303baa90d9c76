package version

import "testing"

func TestShort(t *testing.T) {
	if got := Short(); got != Major+"."+Minor {
		t.Fatalf("Short() = %q", got)
	}
}

func TestFull(t *testing.T) {
	if got := Full(); got != Major+"."+Minor+"."+Patch {
		t.Fatalf("Full() = %q", got)
	}
}
