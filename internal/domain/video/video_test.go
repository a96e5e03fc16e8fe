package video_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/coralstream/catalog/internal/domain/validation"
	"github.com/coralstream/catalog/internal/domain/video"
)

type VideoTestSuite struct {
	suite.Suite
}

func newValidVideo() *video.Video {
	return video.NewVideo(
		"System Design Interviews",
		"A course on distributed systems design.",
		2022,
		120.5,
		true,
		video.RatingAge12,
		[]uuid.UUID{uuid.New()},
		[]uuid.UUID{uuid.New()},
		[]uuid.UUID{uuid.New()},
	)
}

func (suite *VideoTestSuite) TestNewVideo_Defaults() {
	v := newValidVideo()

	assert.NotEqual(suite.T(), uuid.Nil, v.ID)
	assert.Equal(suite.T(), 1, v.Version)
	assert.False(suite.T(), v.Published())
	assert.Empty(suite.T(), v.Events())

	_, hasVideo := v.VideoMedia()
	_, hasTrailer := v.TrailerMedia()
	assert.False(suite.T(), hasVideo)
	assert.False(suite.T(), hasTrailer)
}

func (suite *VideoTestSuite) TestNewVideo_NilAssociationsBecomeEmpty() {
	v := video.NewVideo("t", "d", 2022, 10, false, video.RatingFree, nil, nil, nil)

	assert.NotNil(suite.T(), v.Categories())
	assert.NotNil(suite.T(), v.Genres())
	assert.NotNil(suite.T(), v.CastMembers())
	assert.Empty(suite.T(), v.Categories())
}

func (suite *VideoTestSuite) TestUpdate_ReplacesMetadataAndBumpsVersion() {
	v := newValidVideo()
	categories := []uuid.UUID{uuid.New(), uuid.New()}

	v.Update("New Title", "New description.", 2023, 90, false, true, video.RatingAge16, categories, nil, nil)

	assert.Equal(suite.T(), "New Title", v.Title())
	assert.Equal(suite.T(), 2023, v.LaunchedAt())
	assert.True(suite.T(), v.Published())
	assert.Equal(suite.T(), video.RatingAge16, v.Rating())
	assert.Equal(suite.T(), categories, v.Categories())
	assert.Empty(suite.T(), v.Genres())
	assert.Equal(suite.T(), 2, v.Version)
}

func (suite *VideoTestSuite) TestUpdateVideoMedia_RecordsEvent() {
	v := newValidVideo()
	media := video.NewAudioVideoMedia("abc123", "movie.mp4", "raw/movie.mp4")

	v.UpdateVideoMedia(media)

	stored, ok := v.VideoMedia()
	suite.Require().True(ok)
	assert.Equal(suite.T(), media, stored)
	assert.Equal(suite.T(), video.MediaStatusPending, stored.Status)

	events := v.Events()
	suite.Require().Len(events, 1)
	created, ok := events[0].(*video.MediaCreatedEvent)
	suite.Require().True(ok)
	assert.Equal(suite.T(), video.MediaTypeVideo, created.MediaType)
	assert.Equal(suite.T(), "abc123", created.Checksum)
	assert.Equal(suite.T(), v.ID.String(), created.AggregateID())
}

func (suite *VideoTestSuite) TestUpdateTrailerMedia_RecordsEvent() {
	v := newValidVideo()

	v.UpdateTrailerMedia(video.NewAudioVideoMedia("t1", "trailer.mp4", "raw/trailer.mp4"))

	events := v.Events()
	suite.Require().Len(events, 1)
	created := events[0].(*video.MediaCreatedEvent)
	assert.Equal(suite.T(), video.MediaTypeTrailer, created.MediaType)
}

func (suite *VideoTestSuite) TestUpdateImageSlots_NoEvents() {
	v := newValidVideo()

	v.UpdateBannerMedia(video.NewImageMedia("b1", "banner.png", "img/banner.png"))
	v.UpdateThumbnailMedia(video.NewImageMedia("t1", "thumb.png", "img/thumb.png"))
	v.UpdateThumbnailHalfMedia(video.NewImageMedia("h1", "half.png", "img/half.png"))

	assert.Empty(suite.T(), v.Events())

	banner, ok := v.BannerMedia()
	suite.Require().True(ok)
	assert.Equal(suite.T(), "banner.png", banner.Name)
}

func (suite *VideoTestSuite) TestProcessing_TransitionsSlot() {
	v := newValidVideo()
	v.UpdateVideoMedia(video.NewAudioVideoMedia("abc", "movie.mp4", "raw/movie.mp4"))

	v.Processing(video.MediaTypeVideo)

	stored, _ := v.VideoMedia()
	assert.Equal(suite.T(), video.MediaStatusProcessing, stored.Status)
}

func (suite *VideoTestSuite) TestProcessing_AbsentSlotIsNoOp() {
	v := newValidVideo()
	before := v.Version

	v.Processing(video.MediaTypeVideo)
	v.Processing(video.MediaTypeTrailer)

	assert.Equal(suite.T(), before, v.Version)
}

func (suite *VideoTestSuite) TestProcessing_ImageTypeIsNoOp() {
	v := newValidVideo()
	v.UpdateVideoMedia(video.NewAudioVideoMedia("abc", "movie.mp4", "raw/movie.mp4"))
	before := v.Version

	v.Processing(video.MediaTypeBanner)

	stored, _ := v.VideoMedia()
	assert.Equal(suite.T(), video.MediaStatusPending, stored.Status)
	assert.Equal(suite.T(), before, v.Version)
}

func (suite *VideoTestSuite) TestCompleted_SetsEncodedLocation() {
	v := newValidVideo()
	v.UpdateVideoMedia(video.NewAudioVideoMedia("abc", "movie.mp4", "raw/movie.mp4"))

	v.Completed(video.MediaTypeVideo, "encoded/movie.mp4")

	stored, _ := v.VideoMedia()
	assert.Equal(suite.T(), video.MediaStatusCompleted, stored.Status)
	assert.Equal(suite.T(), "encoded/movie.mp4", stored.EncodedLocation)
}

func (suite *VideoTestSuite) TestCompleted_AbsentSlotIsNoOp() {
	v := newValidVideo()
	before := v.Version

	v.Completed(video.MediaTypeTrailer, "encoded/trailer.mp4")

	_, ok := v.TrailerMedia()
	assert.False(suite.T(), ok)
	assert.Equal(suite.T(), before, v.Version)
}

// Transitions are permissive: a COMPLETED slot moved back to PROCESSING is
// simply re-set, keeping its encoded location.
func (suite *VideoTestSuite) TestProcessing_AfterCompletedIsAllowed() {
	v := newValidVideo()
	v.UpdateVideoMedia(video.NewAudioVideoMedia("abc", "movie.mp4", "raw/movie.mp4"))
	v.Completed(video.MediaTypeVideo, "encoded/movie.mp4")

	v.Processing(video.MediaTypeVideo)

	stored, _ := v.VideoMedia()
	assert.Equal(suite.T(), video.MediaStatusProcessing, stored.Status)
	assert.Equal(suite.T(), "encoded/movie.mp4", stored.EncodedLocation)
}

func (suite *VideoTestSuite) TestTakeEvents_DrainsPendingList() {
	v := newValidVideo()
	v.UpdateVideoMedia(video.NewAudioVideoMedia("a", "a.mp4", "raw/a.mp4"))
	v.UpdateTrailerMedia(video.NewAudioVideoMedia("b", "b.mp4", "raw/b.mp4"))

	taken := v.TakeEvents()

	assert.Len(suite.T(), taken, 2)
	assert.Empty(suite.T(), v.Events())
	assert.Empty(suite.T(), v.TakeEvents())
}

func (suite *VideoTestSuite) TestRestore_RebuildsWithoutEvents() {
	original := newValidVideo()
	original.UpdateVideoMedia(video.NewAudioVideoMedia("abc", "movie.mp4", "raw/movie.mp4"))
	media, _ := original.VideoMedia()

	restored := video.Restore(video.RestoreParams{
		Base:       original.BaseAggregate,
		Title:      original.Title(),
		Rating:     original.Rating(),
		Categories: original.Categories(),
		Video:      &media,
	})

	assert.Equal(suite.T(), original.ID, restored.ID)
	assert.Equal(suite.T(), original.Version, restored.Version)
	assert.Empty(suite.T(), restored.Events())

	stored, ok := restored.VideoMedia()
	suite.Require().True(ok)
	assert.Equal(suite.T(), media, stored)
}

func TestVideoTestSuite(t *testing.T) {
	suite.Run(t, new(VideoTestSuite))
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	v := video.NewVideo("", "", 0, 0, false, "", nil, nil, nil)

	notification := validation.NewNotification()
	v.Validate(notification)

	assert.Len(t, notification.Errors(), 4)
}

func TestValidate_InvalidRating(t *testing.T) {
	v := video.NewVideo("t", "d", 2022, 10, false, "NOT_A_RATING", nil, nil, nil)

	notification := validation.NewNotification()
	v.Validate(notification)

	assert.Len(t, notification.Errors(), 1)
	assert.EqualError(t, notification.Errors()[0], "rating: is not a valid classification")
}

func TestValidate_TitleLengthCountsCharacters(t *testing.T) {
	within := video.NewVideo(strings.Repeat("é", 255), "d", 2022, 10, false, video.RatingFree, nil, nil, nil)
	notification := validation.NewNotification()
	within.Validate(notification)
	assert.False(t, notification.HasErrors())

	over := video.NewVideo(strings.Repeat("é", 256), "d", 2022, 10, false, video.RatingFree, nil, nil, nil)
	notification = validation.NewNotification()
	over.Validate(notification)
	assert.Len(t, notification.Errors(), 1)
	assert.EqualError(t, notification.Errors()[0], "title: must be between 1 and 255 characters")
}

func TestValidate_ValidVideoHasNoErrors(t *testing.T) {
	notification := validation.NewNotification()
	newValidVideo().Validate(notification)

	assert.False(t, notification.HasErrors())
}

func TestResource_Checksum(t *testing.T) {
	a := video.Resource{Content: []byte("same bytes"), Name: "a.mp4"}
	b := video.Resource{Content: []byte("same bytes"), Name: "b.mp4"}
	c := video.Resource{Content: []byte("other bytes"), Name: "c.mp4"}

	assert.Equal(t, a.Checksum(), b.Checksum())
	assert.NotEqual(t, a.Checksum(), c.Checksum())
	assert.Len(t, a.Checksum(), 64)
}
