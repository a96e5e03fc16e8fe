package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain/catalog"
)

type genreRequest struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

type genreResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Categories []string  `json:"categories"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func genreToResponse(g *catalog.Genre) genreResponse {
	categories := g.Categories()
	ids := make([]string, len(categories))
	for i, id := range categories {
		ids[i] = id.String()
	}
	return genreResponse{
		ID:         g.ID.String(),
		Name:       g.Name(),
		Categories: ids,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

func (s *Server) createGenre(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, err := parseIDs(req.Categories)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.genres.CreateGenre(c.Request.Context(), req.Name, categories)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

func (s *Server) getGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre id"})
		return
	}

	genre, err := s.genres.GetGenre(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, genreToResponse(genre))
}

func (s *Server) updateGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre id"})
		return
	}

	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, err := parseIDs(req.Categories)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.genres.UpdateGenre(c.Request.Context(), id, req.Name, categories); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) listGenres(c *gin.Context) {
	page, err := s.genres.ListGenres(c.Request.Context(), searchQueryFrom(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	items := make([]genreResponse, len(page.Items))
	for i, genre := range page.Items {
		items[i] = genreToResponse(genre)
	}

	c.JSON(http.StatusOK, pageResponse{
		CurrentPage: page.CurrentPage,
		PerPage:     page.PerPage,
		Total:       page.Total,
		Items:       items,
	})
}

func (s *Server) deleteGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre id"})
		return
	}

	if err := s.genres.DeleteGenre(c.Request.Context(), id); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
