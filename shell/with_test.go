package shell

import (
	"os"
	"testing"
)

func TestPushWithAndWithoutRoundTrip(t *testing.T) {
	t.Setenv("WSH_TEST_VAR", "original")

	sh := &Shell{aliases: map[string]string{}}

	if err := sh.PushWith("WSH_TEST_VAR", "temporary"); err != nil {
		t.Fatal(err)
	}
	if got := sh.Getenv("WSH_TEST_VAR"); got != "temporary" {
		t.Fatalf("got %q", got)
	}
	if !sh.HasOpenWithScope() {
		t.Fatal("expected an open with-scope")
	}

	sh.Without()

	if got := sh.Getenv("WSH_TEST_VAR"); got != "original" {
		t.Fatalf("got %q, want original restored", got)
	}
	if sh.HasOpenWithScope() {
		t.Fatal("with-scope should be closed")
	}
}

func TestPushWithUnsetPriorIsRemovedAfterWithout(t *testing.T) {
	sh := &Shell{aliases: map[string]string{}}

	if err := sh.PushWith("WSH_TEST_UNSET_VAR", "v"); err != nil {
		t.Fatal(err)
	}
	sh.Without()

	if _, ok := os.LookupEnv("WSH_TEST_UNSET_VAR"); ok {
		t.Fatal("variable should be unset again")
	}
}

func TestPushWithStacksMultipleFrames(t *testing.T) {
	t.Setenv("WSH_TEST_A", "a0")
	t.Setenv("WSH_TEST_B", "b0")

	sh := &Shell{aliases: map[string]string{}}
	sh.PushWith("WSH_TEST_A", "a1")
	sh.PushWith("WSH_TEST_B", "b1")

	if sh.Getenv("WSH_TEST_A") != "a1" || sh.Getenv("WSH_TEST_B") != "b1" {
		t.Fatal("expected both overrides applied")
	}

	sh.Without()

	if sh.Getenv("WSH_TEST_A") != "a0" || sh.Getenv("WSH_TEST_B") != "b0" {
		t.Fatal("expected both originals restored")
	}
}
