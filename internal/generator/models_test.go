package generator

import "testing"

func TestResolveModel(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"gpt-4", "gpt-4o"},
		{"gpt-4o-mini", "gpt-4o-mini"},
		{"gpt-3.5", "gpt-3.5-turbo"},
		{"", "gpt-4o-mini"},
		{"custom-model", "gpt-4o-mini"},
	}

	for _, tt := range tests {
		if got := ResolveModel(tt.id, "gpt-4o-mini"); got != tt.want {
			t.Errorf("ResolveModel(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
