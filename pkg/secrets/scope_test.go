package secrets

import (
	"reflect"
	"testing"
)

func TestScopeChain(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  []string
	}{
		{"global", "", []string{""}},
		{"single folder", "org", []string{"org", ""}},
		{"nested", "org/repo/main", []string{"org/repo/main", "org/repo", "org", ""}},
		{"surrounding slashes", "/org/repo/", []string{"org/repo", "org", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScopeChain(tt.scope); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
