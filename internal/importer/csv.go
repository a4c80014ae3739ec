package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"library-api/internal/models"
	"library-api/internal/stores"
)

// Result summarizes one import run.
type Result struct {
	RowsRead     int
	BooksCreated int
}

// Importer loads books from a delimited file. Importing the same file
// twice is a no-op: categories are matched by name, books by title.
type Importer struct {
	Categories stores.CategoryStore
	Books      stores.BookStore
}

func New(categories stores.CategoryStore, books stores.BookStore) *Importer {
	return &Importer{Categories: categories, Books: books}
}

// ImportFile reads a CSV with a header row of
// category,title,author,cover,description,isbn,editor,page_count,stock,access_level.
// Non-numeric stock or page_count degrade to 0 rather than failing the row.
func (imp *Importer) ImportFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return imp.Import(f)
}

func (imp *Importer) Import(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"category", "title", "author"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var res Result
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", res.RowsRead+1, err)
		}
		res.RowsRead++

		category, err := imp.Categories.GetOrCreateByName(field(record, "category"))
		if err != nil {
			return nil, err
		}

		// Bad numbers become zero, the row still goes in.
		stock, _ := strconv.Atoi(field(record, "stock"))
		pageCount, _ := strconv.Atoi(field(record, "page_count"))

		accessLevel := field(record, "access_level")
		if accessLevel == "" {
			accessLevel = models.AccessAll
		}

		book := models.Book{
			Title:       field(record, "title"),
			Author:      field(record, "author"),
			CategoryID:  category.ID,
			Cover:       field(record, "cover"),
			Description: field(record, "description"),
			ISBN:        field(record, "isbn"),
			Editor:      field(record, "editor"),
			PageCount:   pageCount,
			Stock:       stock,
			AccessLevel: accessLevel,
			Status:      models.StatusForStock(stock),
		}
		created, err := imp.Books.GetOrCreateByTitle(&book)
		if err != nil {
			return nil, err
		}
		if created {
			res.BooksCreated++
		}
	}
	return &res, nil
}
