package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Kimchi Jjigae", "kimchi-jjigae"},
		{"punctuation stripped", "Joko's Bibim-Guksu!", "jokos-bibim-guksu"},
		{"whitespace collapsed", "Dak  Galbi \t Stew", "dak-galbi-stew"},
		{"hyphen runs collapsed", "jang--namul---bap", "jang-namul-bap"},
		{"leading trailing trimmed", " -Soy Egg- ", "soy-egg"},
		{"already a slug", "kimchi-jjigae", "kimchi-jjigae"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.in); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Kimchi Jjigae", "Joko's Jang-Namul-Bap", "  Odd   Input -- here "}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
