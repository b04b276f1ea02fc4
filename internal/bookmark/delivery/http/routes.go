package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the library API, normally on /api/v1.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
		categories.POST("/:id/subcategories", h.CreateSubCategory)
	}

	subCategories := rg.Group("/subcategories")
	{
		subCategories.PUT("/:id", h.UpdateSubCategory)
		subCategories.DELETE("/:id", h.DeleteSubCategory)
	}

	bookmarks := rg.Group("/bookmarks")
	{
		bookmarks.GET("", h.ListBookmarks)
		bookmarks.POST("", h.CreateBookmark)
		bookmarks.POST("/enhance", h.EnhanceAll)
		bookmarks.GET("/:id", h.DetailBookmark)
		bookmarks.PUT("/:id", h.UpdateBookmark)
		bookmarks.DELETE("/:id", h.DeleteBookmark)
		bookmarks.POST("/:id/enhance", h.EnhanceBookmark)
	}

	rg.GET("/export", h.Export)
	rg.POST("/import", h.Import)
	rg.GET("/export/html", h.ExportHTML)
	rg.POST("/import/html", h.ImportHTML)
}
