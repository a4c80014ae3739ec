package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"library-api/internal/handlers"
	"library-api/internal/mocks"
	"library-api/internal/models"
	"library-api/internal/stores"
)

func TestCreateBookDerivesStatusFromStock(t *testing.T) {
	w, ctx := postJSON(t, `{"title":"Dune","author":"Frank Herbert","category_id":1,"stock":0}`)

	categoryStore := new(mocks.CategoryStore)
	categoryStore.On("GetByID", uint(1)).Return(&models.Category{ID: 1, Name: "Fiction"}, nil)

	bookStore := new(mocks.BookStore)
	bookStore.On("Create", mock.AnythingOfType("*models.Book")).
		Run(func(args mock.Arguments) {
			b := args.Get(0).(*models.Book)
			assert.Equal(t, 0, b.Stock)
			assert.Equal(t, models.BookUnavailable, b.Status)
			assert.Equal(t, models.AccessAll, b.AccessLevel)
		}).
		Return(nil)

	h := handlers.NewBookHandler(bookStore, categoryStore)
	h.Create(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Fiction", resp["category_name"])
	bookStore.AssertExpectations(t)
}

func TestCreateBookDefaultsStockToOne(t *testing.T) {
	w, ctx := postJSON(t, `{"title":"Dune","author":"Frank Herbert","category_id":1}`)

	categoryStore := new(mocks.CategoryStore)
	categoryStore.On("GetByID", uint(1)).Return(&models.Category{ID: 1, Name: "Fiction"}, nil)

	bookStore := new(mocks.BookStore)
	bookStore.On("Create", mock.AnythingOfType("*models.Book")).
		Run(func(args mock.Arguments) {
			b := args.Get(0).(*models.Book)
			assert.Equal(t, 1, b.Stock)
			assert.Equal(t, models.BookAvailable, b.Status)
		}).
		Return(nil)

	handlers.NewBookHandler(bookStore, categoryStore).Create(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)
	bookStore.AssertExpectations(t)
}

func TestCreateBookRejectsNegativeStock(t *testing.T) {
	w, ctx := postJSON(t, `{"title":"Dune","author":"Frank Herbert","category_id":1,"stock":-3}`)

	categoryStore := new(mocks.CategoryStore)
	categoryStore.On("GetByID", uint(1)).Return(&models.Category{ID: 1, Name: "Fiction"}, nil)

	handlers.NewBookHandler(new(mocks.BookStore), categoryStore).Create(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "stock cannot be negative")
}

func TestCreateBookUnknownCategory(t *testing.T) {
	w, ctx := postJSON(t, `{"title":"Dune","author":"Frank Herbert","category_id":99}`)

	categoryStore := new(mocks.CategoryStore)
	categoryStore.On("GetByID", uint(99)).Return(nil, stores.ErrNotFound)

	handlers.NewBookHandler(new(mocks.BookStore), categoryStore).Create(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown category")
}

func TestGetBookNotFound(t *testing.T) {
	w, ctx := loanRequest(t, http.MethodGet, "/api/books/99", "", gin.Params{{Key: "id", Value: "99"}})

	bookStore := new(mocks.BookStore)
	bookStore.On("GetByID", uint(99)).Return(nil, stores.ErrNotFound)

	handlers.NewBookHandler(bookStore, new(mocks.CategoryStore)).Get(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBooksIncludesCategoryName(t *testing.T) {
	w, ctx := loanRequest(t, http.MethodGet, "/api/books", "", nil)

	bookStore := new(mocks.BookStore)
	bookStore.On("List").Return([]models.Book{
		{ID: 1, Title: "Dune", Category: models.Category{ID: 1, Name: "Fiction"}},
	}, nil)

	handlers.NewBookHandler(bookStore, new(mocks.CategoryStore)).List(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Fiction", resp[0]["category_name"])
}
