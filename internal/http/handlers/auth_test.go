package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "staffdesk/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = nil
		db.Close()
	})

	r := gin.New()
	r.POST("/api/auth/register", Register)
	return r, mock
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	r, mock := newAuthTestRouter(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'asha@example.com' for key 'users.email'"})

	body := `{"name":"Asha Rao","username":"asha","email":"asha@example.com","password":"longenough"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate email should respond 409, got %d body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "conflict") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	body := `{"name":"Asha Rao","username":"asha","email":"asha@example.com","password":"short"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password should respond 400, got %d", w.Code)
	}
}
