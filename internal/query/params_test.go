package query

import (
	"net/url"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	p := Parse(url.Values{}, "status")
	if p.Page != 1 || p.Limit != DefaultLimit {
		t.Fatalf("unexpected defaults: page=%d limit=%d", p.Page, p.Limit)
	}
	if p.Search != "" || len(p.Fields) != 0 {
		t.Fatalf("expected no criteria, got %+v", p)
	}
}

func TestParseCapsLimit(t *testing.T) {
	values := url.Values{"limit": {"500"}, "page": {"3"}}
	p := Parse(values)
	if p.Limit != MaxLimit {
		t.Fatalf("limit not capped: got %d", p.Limit)
	}
	if p.Page != 3 {
		t.Fatalf("page parsed incorrectly: got %d", p.Page)
	}
	if p.Offset() != 2*MaxLimit {
		t.Fatalf("offset wrong: got %d", p.Offset())
	}
}

func TestParseIgnoresUnknownAndEmptyFields(t *testing.T) {
	values := url.Values{"status": {"  "}, "bogus": {"x"}, "category": {"laptop"}}
	p := Parse(values, "status", "category")
	if _, ok := p.Fields["status"]; ok {
		t.Fatalf("blank field should be absent")
	}
	if _, ok := p.Fields["bogus"]; ok {
		t.Fatalf("unknown field should be ignored")
	}
	if p.Field("category") != "laptop" {
		t.Fatalf("category not parsed: %q", p.Field("category"))
	}
}

func TestEncodeOmitsDefaultsAndEmpty(t *testing.T) {
	p := ListParams{Page: 1, Limit: DefaultLimit, Fields: map[string]string{"status": ""}}
	encoded := p.Encode()
	if len(encoded) != 0 {
		t.Fatalf("expected empty encoding, got %v", encoded)
	}
}

func TestRoundTrip(t *testing.T) {
	p := ListParams{
		Page:    4,
		Limit:   50,
		Search:  "dell",
		SortBy:  "name",
		SortDir: "desc",
		Fields:  map[string]string{"status": "available", "companyId": "7"},
	}

	got := Parse(p.Encode(), "status", "companyId")

	if got.Page != p.Page || got.Limit != p.Limit || got.Search != p.Search {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, p)
	}
	if got.SortBy != p.SortBy || got.SortDir != p.SortDir {
		t.Fatalf("sort round trip mismatch: got %+v", got)
	}
	if got.Field("status") != "available" {
		t.Fatalf("status lost in round trip: %q", got.Field("status"))
	}
	if id, ok := got.IntField("companyId"); !ok || id != 7 {
		t.Fatalf("companyId lost in round trip: %d %v", id, ok)
	}
}

func TestWithFieldClearsOnEmpty(t *testing.T) {
	p := ListParams{Fields: map[string]string{"status": "retired"}}
	p = p.WithField("status", "")
	if _, ok := p.Fields["status"]; ok {
		t.Fatalf("empty value should clear the field")
	}
	if _, ok := p.Encode()["status"]; ok {
		t.Fatalf("cleared field must be absent from encoding")
	}
}

func TestEnumField(t *testing.T) {
	p := ListParams{Fields: map[string]string{"status": "Available"}}
	v, ok := p.EnumField("status", "available", "retired")
	if !ok || v != "available" {
		t.Fatalf("enum match failed: %q %v", v, ok)
	}
	if _, ok := p.EnumField("status", "pending"); ok {
		t.Fatalf("value outside allowed set should not match")
	}
}

func TestMeta(t *testing.T) {
	p := ListParams{Page: 2, Limit: 20}
	meta := p.Meta(45)
	if meta.TotalPages != 3 {
		t.Fatalf("total pages wrong: got %d", meta.TotalPages)
	}
	if meta.Page != 2 || meta.Total != 45 {
		t.Fatalf("meta wrong: %+v", meta)
	}

	empty := ListParams{}.Meta(0)
	if empty.TotalPages != 1 || empty.Page != 1 {
		t.Fatalf("empty meta wrong: %+v", empty)
	}
}
