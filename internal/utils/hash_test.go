package utils

import "testing"

func TestHash(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := Hash("abc"); got != want {
		t.Errorf("Hash(abc) = %s, want %s", got, want)
	}
	if Hash("a|1") == Hash("a|2") {
		t.Errorf("expected distinct hashes")
	}
}
