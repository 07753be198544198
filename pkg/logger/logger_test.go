//go:build !integration

package logger

import "testing"

func TestEnabled(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		patterns  string
		want      bool
	}{
		{
			name:      "empty DEBUG disables everything",
			namespace: "translate:feature",
			patterns:  "",
			want:      false,
		},
		{
			name:      "star enables everything",
			namespace: "translate:feature",
			patterns:  "*",
			want:      true,
		},
		{
			name:      "namespace wildcard matches subtree",
			namespace: "translate:feature",
			patterns:  "translate:*",
			want:      true,
		},
		{
			name:      "namespace wildcard does not match other subtree",
			namespace: "cli:compile",
			patterns:  "translate:*",
			want:      false,
		},
		{
			name:      "exact namespace match",
			namespace: "descriptor",
			patterns:  "descriptor",
			want:      true,
		},
		{
			name:      "multiple patterns",
			namespace: "cli:compile",
			patterns:  "translate:*,cli:*",
			want:      true,
		},
		{
			name:      "exclusion wins over star",
			namespace: "translate:watch",
			patterns:  "*,-translate:watch",
			want:      false,
		},
		{
			name:      "exclusion wins regardless of order",
			namespace: "translate:watch",
			patterns:  "-translate:watch,*",
			want:      false,
		},
		{
			name:      "exclusion only enables nothing",
			namespace: "translate:feature",
			patterns:  "-cli:*",
			want:      false,
		},
		{
			name:      "wildcard exclusion inside subtree",
			namespace: "translate:manifest",
			patterns:  "translate:*,-translate:watch",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enabled(tt.namespace, tt.patterns); got != tt.want {
				t.Errorf("enabled(%q, %q) = %v, want %v", tt.namespace, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestDisabledLoggerIsQuiet(t *testing.T) {
	t.Setenv("DEBUG", "")
	log := New("translate:quiet")
	if log.Enabled() {
		t.Fatal("logger should be disabled with empty DEBUG")
	}
	// Must not panic or write anything observable
	log.Print("dropped")
	log.Printf("dropped %d", 1)
}
