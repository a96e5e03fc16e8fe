package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain/catalog"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

type categoryResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Active        bool       `json:"active"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func categoryToResponse(c *catalog.Category) categoryResponse {
	return categoryResponse{
		ID:            c.ID.String(),
		Name:          c.Name(),
		Description:   c.Description(),
		Active:        c.Active(),
		DeactivatedAt: c.DeactivatedAt(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.categories.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

func (s *Server) getCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	category, err := s.categories.GetCategory(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categoryToResponse(category))
}

func (s *Server) updateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	if err := s.categories.UpdateCategory(c.Request.Context(), id, req.Name, req.Description, active); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) listCategories(c *gin.Context) {
	page, err := s.categories.ListCategories(c.Request.Context(), searchQueryFrom(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	items := make([]categoryResponse, len(page.Items))
	for i, category := range page.Items {
		items[i] = categoryToResponse(category)
	}

	c.JSON(http.StatusOK, pageResponse{
		CurrentPage: page.CurrentPage,
		PerPage:     page.PerPage,
		Total:       page.Total,
		Items:       items,
	})
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := s.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
