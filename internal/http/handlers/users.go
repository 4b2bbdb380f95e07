package handlers

import (
	"net/http"

	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"
	"staffdesk/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/users?q=&role=&status=&page=&limit=
func GetUsers(c *gin.Context) {
	params := query.Parse(c.Request.URL.Query(), "role", "status")

	repo := repositories.UserRepository{}
	users, total, err := repo.List(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse(users, params.Meta(total)))
}

func GetUserByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	user, err := repositories.UserRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func CreateUser(c *gin.Context) {
	// creation goes through register so the password is always hashed
	Register(c)
}

func UpdateUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var payload models.UserPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := (repositories.UserRepository{}).Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeleteUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.UserRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
