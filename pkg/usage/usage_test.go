package usage

import "testing"

func TestRecordAndFilter(t *testing.T) {
	r := NewRecorder()

	r.Record("alice", "generate", 10, 20)
	r.Record("bob", "generate", 5, 5)
	r.Record("alice", "generate", 1, 2)

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	if all[0].TotalTokens != 30 {
		t.Fatalf("total = %d, want 30", all[0].TotalTokens)
	}
	if all[0].ID == "" || all[0].ID == all[1].ID {
		t.Fatal("record IDs must be unique and non-empty")
	}

	alice := r.ForUser("alice")
	if len(alice) != 2 {
		t.Fatalf("got %d records for alice, want 2", len(alice))
	}
	if r.ForUser("nobody") != nil {
		t.Fatal("expected no records for unknown user")
	}
}

func TestCountTokens(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"abcd", 1},
		{"abcde", 2},
		{"The sky is blue.", 4},
	}
	for _, tc := range cases {
		if got := CountTokens(tc.text); got != tc.want {
			t.Errorf("CountTokens(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}
