package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(3)
	r := BagReporter{Bag: bag}
	Infof(r, ExtMalformedRow, Location{Anchor: "b", Element: "tr 2"}, "row has %d cells", 1)
	Warnf(r, ExtUnknownDirection, Location{Anchor: "a"}, "direction %q", "sideways")
	Infof(r, ExtMalformedClause, Location{Anchor: "a"}, "clause %q", "T")
	Infof(r, ExtMalformedClause, Location{Anchor: "c"}, "dropped")

	if bag.Len() != 3 || bag.Dropped() != 1 {
		t.Fatalf("Len/Dropped = %d/%d, want 3/1", bag.Len(), bag.Dropped())
	}
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("HasWarnings/HasErrors = %v/%v", bag.HasWarnings(), bag.HasErrors())
	}

	bag.Sort()
	want := "warning EXT1005 #a direction \"sideways\"\n" +
		"info EXT1003 #a clause \"T\"\n" +
		"info EXT1002 #b > tr 2 row has 1 cells"
	lines := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		lines = append(lines, FormatLine(d))
	}
	if got := strings.Join(lines, "\n"); got != want {
		t.Fatalf("FormatLine:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestBagDedup(t *testing.T) {
	a := NewBag(0)
	a.Add(New(SevInfo, ExtMissingSection, Location{Anchor: "x"}, "missing"))
	a.Add(New(SevInfo, ExtMissingSection, Location{Anchor: "x"}, "missing"))
	a.Add(New(SevInfo, ExtMalformedRow, Location{}, "row"))
	a.Dedup()
	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}
	counts := a.CountByCode()
	if counts[ExtMissingSection] != 1 || counts[ExtMalformedRow] != 1 {
		t.Fatalf("CountByCode = %v", counts)
	}
}

func TestStructuralError(t *testing.T) {
	err := fmt.Errorf("extract functions: %w", Structuralf(StructUnexpectedElement,
		Location{Anchor: "texture-builtin-functions", Element: "h2"}, "expected h3"))
	se, ok := AsStructural(err)
	if !ok {
		t.Fatalf("AsStructural failed for %v", err)
	}
	if se.Code != StructUnexpectedElement {
		t.Fatalf("code = %v", se.Code)
	}
	want := "extract functions: STR2001: #texture-builtin-functions > h2: expected h3"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if _, ok := AsStructural(errors.New("plain")); ok {
		t.Fatalf("plain error reported as structural")
	}
}

func TestCodeStrings(t *testing.T) {
	cases := map[Code]string{
		ExtMalformedRow:         "[EXT1002]: Table row skipped",
		StructUnexpectedElement: "[STR2001]: Anchor has unexpected element kind",
		IOWriteFail:             "[IO3002]: Failed to write output",
		Code(42):                "[E0000]: Unknown problem",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", code, got, want)
		}
	}
	if (Location{}).String() != "<document>" {
		t.Fatalf("empty location = %q", Location{}.String())
	}
}
