package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain/catalog"
)

type castMemberRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type castMemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func castMemberToResponse(m *catalog.CastMember) castMemberResponse {
	return castMemberResponse{
		ID:        m.ID.String(),
		Name:      m.Name(),
		Type:      string(m.Type()),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (s *Server) createCastMember(c *gin.Context) {
	var req castMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.castMembers.CreateCastMember(c.Request.Context(), req.Name, catalog.CastMemberType(req.Type))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

func (s *Server) getCastMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cast member id"})
		return
	}

	member, err := s.castMembers.GetCastMember(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, castMemberToResponse(member))
}

func (s *Server) updateCastMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cast member id"})
		return
	}

	var req castMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.castMembers.UpdateCastMember(c.Request.Context(), id, req.Name, catalog.CastMemberType(req.Type)); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) listCastMembers(c *gin.Context) {
	page, err := s.castMembers.ListCastMembers(c.Request.Context(), searchQueryFrom(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	items := make([]castMemberResponse, len(page.Items))
	for i, member := range page.Items {
		items[i] = castMemberToResponse(member)
	}

	c.JSON(http.StatusOK, pageResponse{
		CurrentPage: page.CurrentPage,
		PerPage:     page.PerPage,
		Total:       page.Total,
		Items:       items,
	})
}

func (s *Server) deleteCastMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cast member id"})
		return
	}

	if err := s.castMembers.DeleteCastMember(c.Request.Context(), id); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
