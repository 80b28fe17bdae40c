package store

import "testing"

func filterFixture() []QuotationRecord {
	return []QuotationRecord{
		{ID: "1", FullName: "Maria Santos", Email: "maria@santos.ph", Company: "Santos Trading", ProductType: "notebook"},
		{ID: "2", FullName: "Carlos Mendoza", Email: "carlos@mendoza.ph", Company: "Mendoza Corp", ProductType: "shirt"},
		{ID: "3", FullName: "Jennifer Lee", Email: "jlee@leegroup.com", Company: "Lee Group", ProductType: "jacket"},
	}
}

func TestFilterQuotations(t *testing.T) {
	recs := filterFixture()

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{"empty term returns everything", "", []string{"1", "2", "3"}},
		{"whitespace term returns everything", "   ", []string{"1", "2", "3"}},
		{"match by name case-insensitive", "MARIA", []string{"1"}},
		{"match by email", "jlee@", []string{"3"}},
		{"match by company", "corp", []string{"2"}},
		{"match by product type", "jacket", []string{"3"}},
		{"substring spans records", "mendoza", []string{"2"}},
		{"santos matches name and company", "santos", []string{"1"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterQuotations(recs, tt.term)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("record %d = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterSubscriptions(t *testing.T) {
	recs := []SubscriptionRecord{
		{ID: "1", Email: "maria@example.com"},
		{ID: "2", Email: "carlos@example.com"},
		{ID: "3", Email: "maria.backup@other.org"},
	}

	got := FilterSubscriptions(recs, "MARIA")
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("order not preserved: %q, %q", got[0].ID, got[1].ID)
	}

	if got := FilterSubscriptions(recs, ""); len(got) != 3 {
		t.Errorf("empty term: got %d records, want 3", len(got))
	}
	if got := FilterSubscriptions(recs, "nobody"); len(got) != 0 {
		t.Errorf("no match: got %d records, want 0", len(got))
	}
}
