package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/models"
	"library-api/internal/stores"
)

type BookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Cover       string `json:"cover"`
	Description string `json:"description"`
	ISBN        string `json:"isbn"`
	Editor      string `json:"editor"`
	PageCount   int    `json:"page_count"`
	Stock       *int   `json:"stock"`
	AccessLevel string `json:"access_level"`
}

type BookHandler struct {
	Books      stores.BookStore
	Categories stores.CategoryStore
}

func NewBookHandler(books stores.BookStore, categories stores.CategoryStore) *BookHandler {
	return &BookHandler{Books: books, Categories: categories}
}

func (h *BookHandler) List(c *gin.Context) {
	books, err := h.Books.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list books"})
		return
	}
	c.JSON(http.StatusOK, newBookResponses(books))
}

func (h *BookHandler) Create(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.Categories.GetByID(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	stock := 1
	if req.Stock != nil {
		stock = *req.Stock
	}
	if stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
		return
	}
	accessLevel := req.AccessLevel
	if accessLevel == "" {
		accessLevel = models.AccessAll
	}

	b := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		CategoryID:  category.ID,
		Category:    *category,
		Cover:       req.Cover,
		Description: req.Description,
		ISBN:        req.ISBN,
		Editor:      req.Editor,
		PageCount:   req.PageCount,
		Stock:       stock,
		AccessLevel: accessLevel,
		Status:      models.StatusForStock(stock),
	}
	if err := h.Books.Create(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create book"})
		return
	}
	c.JSON(http.StatusCreated, newBookResponse(*b))
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.Books.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	c.JSON(http.StatusOK, newBookResponse(*b))
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.Books.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.Categories.GetByID(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	b.Title = req.Title
	b.Author = req.Author
	b.CategoryID = category.ID
	b.Category = *category
	b.Cover = req.Cover
	b.Description = req.Description
	b.ISBN = req.ISBN
	b.Editor = req.Editor
	b.PageCount = req.PageCount
	if req.AccessLevel != "" {
		b.AccessLevel = req.AccessLevel
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
			return
		}
		b.Stock = *req.Stock
		b.Status = models.StatusForStock(b.Stock)
	}

	if err := h.Books.Update(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update book"})
		return
	}
	c.JSON(http.StatusOK, newBookResponse(*b))
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Books.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book deleted"})
}
