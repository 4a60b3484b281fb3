package classify

import "testing"

func TestCategory_String(t *testing.T) {
	cases := map[Category]string{
		NoPerson: "noperson",
		Friend:   "friend",
		Delivery: "delivery",
		Thief:    "thief",
	}

	for cat, want := range cases {
		if got := cat.String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}

func TestCategory_StringOutOfRange(t *testing.T) {
	got := Category(42).String()

	if got != "Category(42)" {
		t.Errorf("expected 'Category(42)', got '%s'", got)
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, cat := range []Category{NoPerson, Friend, Delivery, Thief} {
		if !cat.Valid() {
			t.Errorf("expected %s to be valid", cat)
		}
	}

	if Category(-1).Valid() {
		t.Error("expected Category(-1) to be invalid")
	}

	if Category(NumCategories).Valid() {
		t.Error("expected Category(NumCategories) to be invalid")
	}
}

func TestNumCategories(t *testing.T) {
	if NumCategories != 4 {
		t.Errorf("expected 4 categories, got %d", NumCategories)
	}
}
