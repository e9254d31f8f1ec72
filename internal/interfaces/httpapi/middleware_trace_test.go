package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/healthz":               false,
		" /HEALTHZ ":             false,
		"/readyz":                false,
		"/metrics":               false,
		"/":                      true,
		"/waiverwire":            true,
		"/team/3/picks":          true,
		"/seed_draft_ratings":    true,
		"/matching-players/2025": true,
	}

	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", path, got, want)
		}
	}
}
