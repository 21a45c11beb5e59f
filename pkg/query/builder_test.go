package query

import (
	"strings"
	"testing"
)

func testProjection() *ProjectionMap {
	return NewProjectionMap("public", "patients", "p").
		Project("id", "ID").
		Project("name", "Name").
		Project("age", "Age").
		Project("diseases", "Diseases")
}

func TestBuildWithoutConditions(t *testing.T) {
	sql, args := NewBuilder(testProjection()).Build()

	want := "SELECT p.id, p.name, p.age, p.diseases FROM public.patients p"
	if sql != want {
		t.Errorf("Build() = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildNumbersParametersSequentially(t *testing.T) {
	gender := "Female"
	disease := "Anemia"
	minAge := 18

	sql, args := NewBuilder(testProjection()).
		WhereEquals("Name", &gender).
		WhereAtLeast("Age", &minAge).
		WhereJSONHas("Diseases", &disease).
		Build()

	for _, placeholder := range []string{"$1", "$2", "$3"} {
		if !strings.Contains(sql, placeholder) {
			t.Errorf("expected %s in query: %s", placeholder, sql)
		}
	}
	if strings.Contains(sql, "$%d") {
		t.Errorf("unreplaced placeholder in query: %s", sql)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[2] != `["Anemia"]` {
		t.Errorf("expected JSONB containment arg [\"Anemia\"], got %v", args[2])
	}
}

func TestWhereJSONHasEmitsContainment(t *testing.T) {
	disease := "Diabetes"
	sql, _ := NewBuilder(testProjection()).
		WhereJSONHas("Diseases", &disease).
		Build()

	if !strings.Contains(sql, "p.diseases @> $1") {
		t.Errorf("expected containment clause, got %s", sql)
	}
}

func TestNilFiltersAreNoOps(t *testing.T) {
	sql, args := NewBuilder(testProjection()).
		WhereEquals("Name", (*string)(nil)).
		WhereAtLeast("Age", (*int)(nil)).
		WhereAtMost("Age", (*int)(nil)).
		WhereJSONHas("Diseases", nil).
		WhereSearch(nil, "Name").
		Build()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("expected no WHERE clause, got %s", sql)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildPageAppliesLimitAndOffset(t *testing.T) {
	sql, _ := NewBuilder(testProjection()).BuildPage(3, 25)

	if !strings.Contains(sql, "LIMIT 25 OFFSET 50") {
		t.Errorf("expected LIMIT 25 OFFSET 50, got %s", sql)
	}
}

func TestOrderByFieldsOverridesDefaultSort(t *testing.T) {
	defaultSort := SortField{Field: "Name", Descending: false}

	sql, _ := NewBuilder(testProjection(), defaultSort).
		OrderByFields([]SortField{{Field: "Age", Descending: true}}).
		Build()

	if !strings.Contains(sql, "ORDER BY p.age DESC") {
		t.Errorf("expected override sort, got %s", sql)
	}
	if strings.Contains(sql, "p.name ASC") {
		t.Errorf("default sort should be overridden: %s", sql)
	}
}

func TestParseSortFields(t *testing.T) {
	fields := ParseSortFields("Name,-Age")

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Field != "Name" || fields[0].Descending {
		t.Errorf("expected Name ascending, got %+v", fields[0])
	}
	if fields[1].Field != "Age" || !fields[1].Descending {
		t.Errorf("expected Age descending, got %+v", fields[1])
	}
}
