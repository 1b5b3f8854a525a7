package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y"} {
		if !StrToBool(str) {
			t.Fatalf("%q should be true", str)
		}
	}
	for _, str := range []string{"false", "F", "no", "n", "whatever", ""} {
		if StrToBool(str) {
			t.Fatalf("%q should be false", str)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if FirstNonZero(0, 0, 3, 4) != 3 {
		t.Fatal()
	}
	if FirstNonZero("", "a") != "a" {
		t.Fatal()
	}
	if FirstNonZero(0, 0) != 0 {
		t.Fatal()
	}
}
