package textutil

import "testing"

func TestValidFileName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"2024-02-16 Zermatt", true},
		{"Familie Kurmann-Glück", true},
		{"", false},
		{"   ", false},
		{"bad|name", false},
		{"bad:name", false},
		{"question?", false},
		{"a/b", false},
		{"a\\b", false},
		{"tab\tname", false},
	}
	for _, tt := range tests {
		if got := ValidFileName(tt.name); got != tt.valid {
			t.Errorf("ValidFileName(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestTrimSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"- Ausflug -", "Ausflug"},
		{"__titel__", "titel"},
		{" , .Zermatt. , ", "Zermatt"},
		{"kein-schnitt", "kein-schnitt"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := TrimSeparators(tt.in); got != tt.want {
			t.Errorf("TrimSeparators(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTernary(t *testing.T) {
	if got := Ternary(true, "a", "b"); got != "a" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := Ternary(false, 1, 2); got != 2 {
		t.Fatalf("unexpected: %d", got)
	}
}
