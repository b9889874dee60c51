package validators

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"(11) 98765-4321":  "11987654321",
		"11987654321":      "11987654321",
		"+55 11 98765-432": "5511987654",
		"sem numero":       "",
		"":                 "",
	}

	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHasMinPhoneDigits(t *testing.T) {
	if HasMinPhoneDigits("119876543") {
		t.Error("9 digits should not be enough")
	}
	if !HasMinPhoneDigits("1198765432") {
		t.Error("10 digits should be enough")
	}
}
