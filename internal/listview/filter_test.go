package listview

import (
	"strconv"
	"testing"

	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"
)

func assetFields(a models.Asset) RowFields {
	return RowFields{
		Text:  []string{a.Name, a.AssetTag, a.SerialNumber},
		Enums: map[string]string{"status": a.Status, "category": a.Category},
		IDs:   map[string]string{"companyId": strconv.FormatInt(a.CompanyID, 10)},
	}
}

func sampleAssets() []models.Asset {
	return []models.Asset{
		{Name: "Dell XPS", AssetTag: "A-1", Status: "Available", CompanyID: 1},
		{Name: "iPad", AssetTag: "A-2", Status: "Retired", CompanyID: 2},
	}
}

func TestApplyEmptyCriteriaIsIdentity(t *testing.T) {
	assets := sampleAssets()
	got := Apply(assets, Criteria{Enums: map[string]string{"status": ""}}, assetFields)
	if len(got) != len(assets) {
		t.Fatalf("identity law broken: got %d items, want %d", len(got), len(assets))
	}
	for i := range got {
		if got[i].AssetTag != assets[i].AssetTag {
			t.Fatalf("order changed at %d: %+v", i, got[i])
		}
	}
}

func TestApplySearchMatchesCaseInsensitive(t *testing.T) {
	got := Apply(sampleAssets(), Criteria{Search: "dell"}, assetFields)
	if len(got) != 1 || got[0].Name != "Dell XPS" {
		t.Fatalf("search result wrong: %+v", got)
	}
}

func TestApplySearchMatchesTagField(t *testing.T) {
	got := Apply(sampleAssets(), Criteria{Search: "a-2"}, assetFields)
	if len(got) != 1 || got[0].Name != "iPad" {
		t.Fatalf("tag search result wrong: %+v", got)
	}
}

func TestApplyEnumExactCaseInsensitive(t *testing.T) {
	got := Apply(sampleAssets(), Criteria{Enums: map[string]string{"status": "retired"}}, assetFields)
	if len(got) != 1 || got[0].Name != "iPad" {
		t.Fatalf("enum filter wrong: %+v", got)
	}

	// substring must NOT match enums
	got = Apply(sampleAssets(), Criteria{Enums: map[string]string{"status": "retire"}}, assetFields)
	if len(got) != 0 {
		t.Fatalf("enum filter should be exact, got %+v", got)
	}
}

func TestApplyCriteriaAreANDed(t *testing.T) {
	c := Criteria{Search: "a-", Enums: map[string]string{"status": "available"}}
	got := Apply(sampleAssets(), c, assetFields)
	if len(got) != 1 || got[0].Name != "Dell XPS" {
		t.Fatalf("AND across criteria broken: %+v", got)
	}
}

func TestApplyIDExact(t *testing.T) {
	got := Apply(sampleAssets(), Criteria{IDs: map[string]string{"companyId": "2"}}, assetFields)
	if len(got) != 1 || got[0].Name != "iPad" {
		t.Fatalf("id filter wrong: %+v", got)
	}
}

func TestCriteriaFrom(t *testing.T) {
	p := query.ListParams{
		Search: "dell",
		Fields: map[string]string{"status": "available", "companyId": "1"},
	}
	c := CriteriaFrom(p, []string{"status"}, []string{"companyId"})
	if c.Search != "dell" || c.Enums["status"] != "available" || c.IDs["companyId"] != "1" {
		t.Fatalf("criteria mapping wrong: %+v", c)
	}
}
