package model

import "testing"

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Approved", "Rejected"} {
		if !IsValidStatus(s) {
			t.Fatalf("IsValidStatus(%q) = false, want true", s)
		}
	}

	for _, s := range []string{"", "pending", "Cancelled", "APPROVED"} {
		if IsValidStatus(s) {
			t.Fatalf("IsValidStatus(%q) = true, want false", s)
		}
	}
}

func TestIsValidService(t *testing.T) {
	if !IsValidService("kitchen-cleaning") {
		t.Fatalf("kitchen-cleaning must be in the catalog")
	}
	if IsValidService("pool-cleaning") {
		t.Fatalf("pool-cleaning must not be in the catalog")
	}
	if IsValidService("") {
		t.Fatalf("empty service id must not be in the catalog")
	}
}

func TestServiceCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool, len(ServiceCatalog))
	for _, s := range ServiceCatalog {
		if s.ID == "" || s.Title == "" {
			t.Fatalf("catalog entry without id or title: %+v", s)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate service id %q", s.ID)
		}
		seen[s.ID] = true
	}
}
