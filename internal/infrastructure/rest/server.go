package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcatalog "github.com/coralstream/catalog/internal/application/catalog"
	appvideo "github.com/coralstream/catalog/internal/application/video"
	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/validation"
	pkgerrors "github.com/coralstream/catalog/pkg/errors"
)

// Server exposes the catalog admin API over HTTP.
type Server struct {
	videos      *appvideo.Service
	categories  *appcatalog.CategoryService
	genres      *appcatalog.GenreService
	castMembers *appcatalog.CastMemberService
	logger      *zap.Logger
}

// NewServer creates the HTTP API server
func NewServer(
	videos *appvideo.Service,
	categories *appcatalog.CategoryService,
	genres *appcatalog.GenreService,
	castMembers *appcatalog.CastMemberService,
	logger *zap.Logger,
) *Server {
	return &Server{
		videos:      videos,
		categories:  categories,
		genres:      genres,
		castMembers: castMembers,
		logger:      logger.Named("rest"),
	}
}

// Router builds the gin engine with all catalog routes registered
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		categories := api.Group("/categories")
		{
			categories.POST("", s.createCategory)
			categories.GET("", s.listCategories)
			categories.GET("/:id", s.getCategory)
			categories.PUT("/:id", s.updateCategory)
			categories.DELETE("/:id", s.deleteCategory)
		}

		genres := api.Group("/genres")
		{
			genres.POST("", s.createGenre)
			genres.GET("", s.listGenres)
			genres.GET("/:id", s.getGenre)
			genres.PUT("/:id", s.updateGenre)
			genres.DELETE("/:id", s.deleteGenre)
		}

		castMembers := api.Group("/cast-members")
		{
			castMembers.POST("", s.createCastMember)
			castMembers.GET("", s.listCastMembers)
			castMembers.GET("/:id", s.getCastMember)
			castMembers.PUT("/:id", s.updateCastMember)
			castMembers.DELETE("/:id", s.deleteCastMember)
		}

		videos := api.Group("/videos")
		{
			videos.POST("", s.createVideo)
			videos.GET("", s.listVideos)
			videos.GET("/:id", s.getVideo)
			videos.PUT("/:id", s.updateVideo)
			videos.DELETE("/:id", s.deleteVideo)
			videos.POST("/:id/media/:type", s.uploadMedia)
		}
	}

	return router
}

// handleError maps domain failures to HTTP status codes
func (s *Server) handleError(c *gin.Context, err error) {
	var notificationErr *validation.NotificationError
	if errors.As(err, &notificationErr) {
		msgs := make([]string, len(notificationErr.Errs))
		for i, e := range notificationErr.Errs {
			msgs[i] = e.Error()
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": msgs})
		return
	}

	switch {
	case pkgerrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case pkgerrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case pkgerrors.IsBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// searchQueryFrom reads pagination and filter parameters from the request
func searchQueryFrom(c *gin.Context) domain.SearchQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	return domain.SearchQuery{
		Page:      page,
		PerPage:   perPage,
		Term:      c.Query("search"),
		Sort:      c.DefaultQuery("sort", "created_at"),
		Direction: c.DefaultQuery("dir", "asc"),
	}
}

type pageResponse struct {
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
	Items       interface{} `json:"items"`
}
