package common

import "testing"

func TestHasAny(t *testing.T) {
	if !HasAny("ada banjir di sini", "banjir", "longsor") {
		t.Error("expected match on banjir")
	}
	if HasAny("cerah sepanjang hari", "banjir", "longsor") {
		t.Error("unexpected match")
	}
	if HasAny("apa saja") {
		t.Error("no substrings should never match")
	}
}
