package etl

import "testing"

func TestResolverStaticAliases(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	cases := []struct {
		raw  string
		want string
	}{
		{"England", "United Kingdom"},
		{"WALES", "United Kingdom"},
		{"  iran  ", "Iran"},
		{"Zaïre", "Democratic Republic of the Congo"},
		{"china pr", "China"},
		{"Czech Republic", "Czechia"},
		{"Unknown Place", "Unknown Place"},
	}
	for _, tc := range cases {
		got, ok := r.Resolve(tc.raw)
		if !ok {
			t.Fatalf("Resolve(%q) ok = false, want true", tc.raw)
		}
		if got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestResolverBlankInput(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	for _, raw := range []string{"", "   "} {
		if got, ok := r.Resolve(raw); ok {
			t.Fatalf("Resolve(%q) = (%q, true), want ok=false", raw, got)
		}
	}
}

func TestResolverFormerNames(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	r.RegisterFormerName("West Germany", "Germany")

	got, ok := r.Resolve("  west germany ")
	if !ok || got != "Germany" {
		t.Fatalf("Resolve(west germany) = (%q, %v), want (Germany, true)", got, ok)
	}

	// Static aliases win over registered former names.
	r.RegisterFormerName("England", "Not The UK")
	got, _ = r.Resolve("England")
	if got != "United Kingdom" {
		t.Fatalf("Resolve(England) = %q, want United Kingdom", got)
	}
}
