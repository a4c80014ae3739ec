package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "library-api/config"
	"library-api/database"
	"library-api/internal/handlers"
	"library-api/internal/importer"
	"library-api/internal/middleware"
	"library-api/internal/seed"
	"library-api/internal/stores"
	"library-api/internal/token"
	"library-api/internal/user"
)

var bookFile string

var rootCmd = &cobra.Command{
	Use:   "library-api",
	Short: "Library management backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := database.ConnectDB()
		if err != nil {
			log.Fatalf("Database connection error: %v", err)
		}
		if err := database.ProcessMigrations(db); err != nil {
			log.Fatalf("Database migration error: %v", err)
		}

		userStore := &stores.GormUserStore{DB: db}
		roleStore := &stores.GormRoleStore{DB: db}
		categoryStore := &stores.GormCategoryStore{DB: db}
		bookStore := &stores.GormBookStore{DB: db}
		loanStore := &stores.GormLoanStore{DB: db}
		statsStore := &stores.GormStatsStore{DB: db}

		secret := []byte(os.Getenv("JWT_SECRET"))
		hasher := user.BcryptHasher{}
		tokens := &token.JWTService{Secret: secret}

		auth := handlers.NewAuthHandler(userStore, hasher, tokens)
		users := handlers.NewUserHandler(userStore, roleStore, hasher)
		books := handlers.NewBookHandler(bookStore, categoryStore)
		categories := handlers.NewCategoryHandler(categoryStore)
		roles := handlers.NewRoleHandler(roleStore)
		loans := handlers.NewLoanHandler(loanStore)
		dashboard := handlers.NewDashboardHandler(statsStore)

		r := gin.Default()
		api := r.Group("/api")

		// Public surface: login and the read-only catalog.
		api.POST("/login", auth.Login)
		api.GET("/books", books.List)
		api.GET("/books/:id", books.Get)
		api.GET("/categories", categories.List)
		api.GET("/categories/:id", categories.Get)
		api.GET("/roles", roles.List)
		api.GET("/roles/:id", roles.Get)
		api.GET("/dashboard", dashboard.Dashboard)

		// Everything that mutates, plus loan data, needs a token.
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(tokens))
		{
			protected.POST("/books", books.Create)
			protected.PUT("/books/:id", books.Update)
			protected.DELETE("/books/:id", books.Delete)
			protected.POST("/books/:id/borrow", loans.Borrow)

			protected.POST("/categories", categories.Create)
			protected.PUT("/categories/:id", categories.Update)
			protected.DELETE("/categories/:id", categories.Delete)

			protected.GET("/users", users.List)
			protected.POST("/users", users.Create)
			protected.GET("/users/:id", users.Get)
			protected.PUT("/users/:id", users.Update)
			protected.DELETE("/users/:id", users.Delete)

			protected.GET("/my-loans", loans.MyLoans)
			protected.GET("/loans/active", loans.ActiveLoans)
			protected.POST("/loans/:id/return", loans.Return)
		}

		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	},
}

var importCmd = &cobra.Command{
	Use:   "import-books",
	Short: "Import books from a CSV file",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := database.ConnectDB()
		if err != nil {
			log.Fatalf("Database connection error: %v", err)
		}
		if err := database.ProcessMigrations(db); err != nil {
			log.Fatalf("Database migration error: %v", err)
		}

		imp := importer.New(&stores.GormCategoryStore{DB: db}, &stores.GormBookStore{DB: db})
		res, err := imp.ImportFile(bookFile)
		if err != nil {
			log.Fatalf("Import error: %v", err)
		}
		log.Printf("Done: %d rows read, %d books added.", res.RowsRead, res.BooksCreated)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset and fill the database with demo data",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := database.ConnectDB()
		if err != nil {
			log.Fatalf("Database connection error: %v", err)
		}
		if err := database.ProcessMigrations(db); err != nil {
			log.Fatalf("Database migration error: %v", err)
		}
		if err := seed.Run(db, user.BcryptHasher{}, bookFile); err != nil {
			log.Fatalf("Seed error: %v", err)
		}
	},
}

func init() {
	importCmd.Flags().StringVar(&bookFile, "file", "books.csv", "CSV file with books")
	seedCmd.Flags().StringVar(&bookFile, "file", "books.csv", "CSV file with books")
	rootCmd.AddCommand(serveCmd, importCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
