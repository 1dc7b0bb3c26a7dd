package theme

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw    string
		want   Mode
		wantOK bool
	}{
		{"dark", Dark, true},
		{"light", Light, true},
		{"system", System, true},
		{"neon", "", false},
		{"", "", false},
		{"Dark", "", false},
		{" dark", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseMode(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ParseMode(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestModeNext_ClosedThreeCycle(t *testing.T) {
	for _, m := range Modes() {
		if got := m.Next().Next().Next(); got != m {
			t.Fatalf("%q advanced three times = %q, want %q", m, got, m)
		}
	}
	if got := Dark.Next(); got != Light {
		t.Fatalf("Dark.Next() = %q, want light", got)
	}
	if got := Light.Next(); got != System {
		t.Fatalf("Light.Next() = %q, want system", got)
	}
	if got := System.Next(); got != Dark {
		t.Fatalf("System.Next() = %q, want dark", got)
	}
}

func TestModeNext_UnknownTreatedAsDefault(t *testing.T) {
	if got := Mode("neon").Next(); got != Light {
		t.Fatalf("Mode(neon).Next() = %q, want light", got)
	}
}

func TestResolvedOther(t *testing.T) {
	if ResolvedDark.Other() != ResolvedLight || ResolvedLight.Other() != ResolvedDark {
		t.Fatalf("Other() is not an involution between dark and light")
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		raw  string
		want Mode
	}{
		{"drak", Dark},
		{"ligth", Light},
		{"sytem", System},
		{"neon", ""},
		{"purple", ""},
	}

	for _, tt := range tests {
		if got := Suggest(tt.raw); got != tt.want {
			t.Fatalf("Suggest(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestApply_ExactlyOneClass(t *testing.T) {
	var root ClassList
	root.AddClass("dark")
	root.AddClass("light")

	Apply(&root, ResolvedLight)
	if got := root.Classes(); len(got) != 1 || got[0] != "light" {
		t.Fatalf("Classes() = %v, want [light]", got)
	}

	Apply(&root, ResolvedDark)
	if got := root.Classes(); len(got) != 1 || got[0] != "dark" {
		t.Fatalf("Classes() = %v, want [dark]", got)
	}
}

func TestApply_NilRoot(t *testing.T) {
	Apply(nil, ResolvedLight)
}
