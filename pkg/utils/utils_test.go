package utils

import "testing"

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()
	if len(id) != 32 {
		t.Errorf("Expected uuid of length 32, got %d", len(id))
	}
	if id == GenerateUUID() {
		t.Errorf("Expected distinct uuids")
	}
}

func TestIsValidRepoSlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want bool
	}{
		{"owner and name", "octo/hello", true},
		{"missing owner", "/hello", false},
		{"missing name", "octo/", false},
		{"no separator", "hello", false},
		{"nested path", "octo/hello/world", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidRepoSlug(tt.slug); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCoalesceString(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"first set", []string{"a", "b"}, "a"},
		{"skips blank", []string{"", "  ", "b"}, "b"},
		{"all blank", []string{"", ""}, ""},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoalesceString(tt.values...); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
