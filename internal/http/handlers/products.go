package handlers

import (
	"net/http"

	"staffdesk/internal/domain/models"
	"staffdesk/internal/listview"
	"staffdesk/internal/query"
	"staffdesk/internal/repositories"

	"github.com/gin-gonic/gin"
)

type productRow struct {
	models.Product
	StatusBadge  string `json:"statusBadge"`
	PriceDisplay string `json:"priceDisplay"`
}

func presentProduct(p models.Product) productRow {
	return productRow{
		Product:      p,
		StatusBadge:  listview.BadgeClass(p.Status),
		PriceDisplay: listview.FormatAmount(p.Price, p.Currency),
	}
}

// GET /api/products?q=&status=&category=&page=&limit=
func GetProducts(c *gin.Context) {
	params := query.Parse(c.Request.URL.Query(), "status", "category")

	repo := repositories.ProductRepository{}
	products, total, err := repo.List(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, presentProduct(p))
	}
	c.JSON(http.StatusOK, ListResponse(rows, params.Meta(total)))
}

func GetProductByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	product, err := repositories.ProductRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentProduct(product))
}

func CreateProduct(c *gin.Context) {
	var payload models.ProductPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if payload.Status == "" {
		payload.Status = "active"
	}
	id, err := repositories.ProductRepository{}.Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func UpdateProduct(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var payload models.ProductPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := (repositories.ProductRepository{}).Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeleteProduct(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.ProductRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
