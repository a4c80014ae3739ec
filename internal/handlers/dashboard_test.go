package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"library-api/internal/handlers"
	"library-api/internal/mocks"
	"library-api/internal/stores"
)

func TestDashboardPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/dashboard", nil)
	ctx.Request = req

	statsStore := new(mocks.StatsStore)
	statsStore.On("Dashboard", mock.AnythingOfType("time.Time")).Return(&stores.DashboardStats{
		TotalBooks:  42,
		TotalUsers:  7,
		ActiveLoans: 9,
		LateLoans:   4,
		PopularBooks: []stores.BookCount{
			{Title: "Dune", TotalLoans: 12},
		},
		BooksByCategory: []stores.CategoryCount{
			{Category: "Fiction", BookCount: 30},
			{Category: "Science", BookCount: 12},
		},
		TopReaders: []stores.ReaderCount{
			{Username: "tom", TotalLoans: 5},
		},
		LoansByRole: []stores.RoleCount{
			{Role: "Student", LoanCount: 6},
			{Role: "Teacher", LoanCount: 3},
		},
	}, nil)

	handlers.NewDashboardHandler(statsStore).Dashboard(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.EqualValues(t, 42, resp["total_books"])
	assert.EqualValues(t, 7, resp["total_users"])
	assert.EqualValues(t, 9, resp["active_loans"])
	assert.EqualValues(t, 4, resp["late_loans"])

	popular, _ := resp["popular_books"].([]interface{})
	assert.Len(t, popular, 1)
	first, _ := popular[0].(map[string]interface{})
	assert.Equal(t, "Dune", first["title"])

	statsStore.AssertExpectations(t)
}
