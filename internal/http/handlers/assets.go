package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/listview"
	"staffdesk/internal/query"
	"staffdesk/internal/repositories"
	"staffdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type assetRow struct {
	models.Asset
	Sublabel     string `json:"sublabel"`
	StatusBadge  string `json:"statusBadge"`
	PriceDisplay string `json:"priceDisplay"`
	DateDisplay  string `json:"dateDisplay"`
}

func presentAsset(a models.Asset) assetRow {
	sublabel := a.AssetTag
	if a.SerialNumber != "" {
		sublabel = a.AssetTag + " · " + a.SerialNumber
	}
	return assetRow{
		Asset:        a,
		Sublabel:     sublabel,
		StatusBadge:  listview.BadgeClass(a.Status),
		PriceDisplay: listview.FormatAmount(a.PurchasePrice, a.Currency),
		DateDisplay:  listview.FormatDate(a.PurchaseDate),
	}
}

func assetRowFields(a models.Asset) listview.RowFields {
	return listview.RowFields{
		Text:  []string{a.Name, a.AssetTag, a.SerialNumber},
		Enums: map[string]string{"status": a.Status, "category": a.Category},
		IDs:   map[string]string{"companyId": strconv.FormatInt(a.CompanyID, 10)},
	}
}

// GET /api/assets?q=&status=&category=&companyId=&page=&limit=&sortBy=&sortDir=
func GetAssets(c *gin.Context) {
	params := query.Parse(c.Request.URL.Query(), "status", "category", "companyId")

	repo := repositories.AssetRepository{}
	assets, total, err := repo.List(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// Criteria are already pushed into SQL; re-applying over the fetched
	// page guards against replicas serving stale filter columns.
	criteria := listview.CriteriaFrom(params, []string{"status", "category"}, []string{"companyId"})
	assets = listview.Apply(assets, criteria, assetRowFields)

	rows := make([]assetRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, presentAsset(a))
	}
	c.JSON(http.StatusOK, ListResponse(rows, params.Meta(total)))
}

func GetAssetByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	asset, err := repositories.AssetRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentAsset(asset))
}

func CreateAsset(c *gin.Context) {
	var payload models.AssetPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if payload.Status == "" {
		payload.Status = domain.AssetAvailable
	}
	if !domain.ValidAssetStatus(payload.Status) {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status " + payload.Status})
		return
	}
	if payload.PurchaseDate != "" {
		if _, err := utils.ParseDate(payload.PurchaseDate); err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "purchaseDate", Msg: "want YYYY-MM-DD"})
			return
		}
	}

	id, err := repositories.AssetRepository{}.Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func UpdateAsset(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var payload models.AssetPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if payload.Status != "" && !domain.ValidAssetStatus(payload.Status) {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status " + payload.Status})
		return
	}

	if err := (repositories.AssetRepository{}).Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeleteAsset(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.AssetRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type assetAssignRequest struct {
	AssignedTo string `json:"assignedTo" binding:"required"`
}

// PUT /api/assets/:id/assign moves an available/reserved asset to assigned.
func AssignAsset(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req assetAssignRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.AssetRepository{}
	asset, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	switch strings.ToLower(asset.Status) {
	case domain.AssetAvailable, domain.AssetReserved:
	default:
		RespondDomainError(c, domain.ConflictError{Resource: "asset", Msg: "cannot assign from status " + asset.Status})
		return
	}

	payload := models.AssetPayload{
		Name: asset.Name, AssetTag: asset.AssetTag, SerialNumber: asset.SerialNumber,
		Category: asset.Category, Status: domain.AssetAssigned, AssignedTo: req.AssignedTo,
		PurchaseDate: asset.PurchaseDate, PurchasePrice: asset.PurchasePrice,
		Currency: asset.Currency, CompanyID: asset.CompanyID,
	}
	if err := repo.Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": domain.AssetAssigned})
}
