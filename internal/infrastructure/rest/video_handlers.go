package rest

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appvideo "github.com/coralstream/catalog/internal/application/video"
	"github.com/coralstream/catalog/internal/domain/video"
)

type videoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	LaunchedAt  int      `json:"launched_at"`
	Duration    float64  `json:"duration"`
	Opened      bool     `json:"opened"`
	Published   bool     `json:"published"`
	Rating      string   `json:"rating"`
	Categories  []string `json:"categories"`
	Genres      []string `json:"genres"`
	CastMembers []string `json:"cast_members"`
}

type audioVideoMediaResponse struct {
	Checksum        string `json:"checksum"`
	Name            string `json:"name"`
	RawLocation     string `json:"raw_location"`
	EncodedLocation string `json:"encoded_location,omitempty"`
	Status          string `json:"status"`
}

type imageMediaResponse struct {
	Checksum string `json:"checksum"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type videoResponse struct {
	ID            string                   `json:"id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	LaunchedAt    int                      `json:"launched_at"`
	Duration      float64                  `json:"duration"`
	Opened        bool                     `json:"opened"`
	Published     bool                     `json:"published"`
	Rating        string                   `json:"rating"`
	Categories    []string                 `json:"categories"`
	Genres        []string                 `json:"genres"`
	CastMembers   []string                 `json:"cast_members"`
	Video         *audioVideoMediaResponse `json:"video,omitempty"`
	Trailer       *audioVideoMediaResponse `json:"trailer,omitempty"`
	Banner        *imageMediaResponse      `json:"banner,omitempty"`
	Thumbnail     *imageMediaResponse      `json:"thumbnail,omitempty"`
	ThumbnailHalf *imageMediaResponse      `json:"thumbnail_half,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func videoToResponse(v *video.Video) videoResponse {
	resp := videoResponse{
		ID:          v.ID.String(),
		Title:       v.Title(),
		Description: v.Description(),
		LaunchedAt:  v.LaunchedAt(),
		Duration:    v.Duration(),
		Opened:      v.Opened(),
		Published:   v.Published(),
		Rating:      string(v.Rating()),
		Categories:  idsToStrings(v.Categories()),
		Genres:      idsToStrings(v.Genres()),
		CastMembers: idsToStrings(v.CastMembers()),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}

	if media, ok := v.VideoMedia(); ok {
		resp.Video = audioVideoToResponse(media)
	}
	if media, ok := v.TrailerMedia(); ok {
		resp.Trailer = audioVideoToResponse(media)
	}
	if media, ok := v.BannerMedia(); ok {
		resp.Banner = imageToResponse(media)
	}
	if media, ok := v.ThumbnailMedia(); ok {
		resp.Thumbnail = imageToResponse(media)
	}
	if media, ok := v.ThumbnailHalfMedia(); ok {
		resp.ThumbnailHalf = imageToResponse(media)
	}

	return resp
}

func audioVideoToResponse(m video.AudioVideoMedia) *audioVideoMediaResponse {
	return &audioVideoMediaResponse{
		Checksum:        m.Checksum,
		Name:            m.Name,
		RawLocation:     m.RawLocation,
		EncodedLocation: m.EncodedLocation,
		Status:          string(m.Status),
	}
}

func imageToResponse(m video.ImageMedia) *imageMediaResponse {
	return &imageMediaResponse{
		Checksum: m.Checksum,
		Name:     m.Name,
		Location: m.Location,
	}
}

func idsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func (s *Server) createVideo(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd, err := createCommandFrom(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.videos.CreateVideo(c.Request.Context(), cmd)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

func (s *Server) getVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	v, err := s.videos.GetVideo(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, videoToResponse(v))
}

func (s *Server) updateVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd, err := createCommandFrom(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateCmd := appvideo.UpdateVideoCommand{
		ID:          id,
		Title:       cmd.Title,
		Description: cmd.Description,
		LaunchedAt:  cmd.LaunchedAt,
		Duration:    cmd.Duration,
		Opened:      cmd.Opened,
		Published:   req.Published,
		Rating:      cmd.Rating,
		Categories:  cmd.Categories,
		Genres:      cmd.Genres,
		CastMembers: cmd.CastMembers,
	}

	if err := s.videos.UpdateVideo(c.Request.Context(), updateCmd); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) listVideos(c *gin.Context) {
	page, err := s.videos.ListVideos(c.Request.Context(), searchQueryFrom(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	items := make([]videoResponse, len(page.Items))
	for i, v := range page.Items {
		items[i] = videoToResponse(v)
	}

	c.JSON(http.StatusOK, pageResponse{
		CurrentPage: page.CurrentPage,
		PerPage:     page.PerPage,
		Total:       page.Total,
		Items:       items,
	})
}

func (s *Server) deleteVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	if err := s.videos.DeleteVideo(c.Request.Context(), id); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// uploadMedia attaches a multipart file upload to one of the five media slots
func (s *Server) uploadMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	mediaType := video.MediaType(strings.ToUpper(c.Param("type")))
	if !mediaType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media type"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.handleError(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.handleError(c, err)
		return
	}

	output, err := s.videos.UploadMedia(c.Request.Context(), appvideo.UploadMediaCommand{
		VideoID:   id,
		MediaType: mediaType,
		Resource: video.Resource{
			Content:     content,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Name:        fileHeader.Filename,
		},
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"video_id":   output.VideoID.String(),
		"media_type": string(output.MediaType),
	})
}

func createCommandFrom(req videoRequest) (appvideo.CreateVideoCommand, error) {
	categories, err := parseIDs(req.Categories)
	if err != nil {
		return appvideo.CreateVideoCommand{}, err
	}
	genres, err := parseIDs(req.Genres)
	if err != nil {
		return appvideo.CreateVideoCommand{}, err
	}
	castMembers, err := parseIDs(req.CastMembers)
	if err != nil {
		return appvideo.CreateVideoCommand{}, err
	}

	return appvideo.CreateVideoCommand{
		Title:       req.Title,
		Description: req.Description,
		LaunchedAt:  req.LaunchedAt,
		Duration:    req.Duration,
		Opened:      req.Opened,
		Rating:      video.Rating(req.Rating),
		Categories:  categories,
		Genres:      genres,
		CastMembers: castMembers,
	}, nil
}
