package video_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	appvideo "github.com/coralstream/catalog/internal/application/video"
	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/validation"
	"github.com/coralstream/catalog/internal/domain/video"
	"github.com/coralstream/catalog/pkg/errors"
	"github.com/coralstream/catalog/pkg/events"
	"github.com/coralstream/catalog/pkg/logger"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, v *video.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockRepository) Update(ctx context.Context, v *video.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *mockRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*video.Video], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.Page[*video.Video]), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) StoreAudioVideo(ctx context.Context, videoID uuid.UUID, resource video.Resource) (video.AudioVideoMedia, error) {
	args := m.Called(ctx, videoID, resource)
	return args.Get(0).(video.AudioVideoMedia), args.Error(1)
}

func (m *mockStorage) StoreImage(ctx context.Context, videoID uuid.UUID, resource video.Resource) (video.ImageMedia, error) {
	args := m.Called(ctx, videoID, resource)
	return args.Get(0).(video.ImageMedia), args.Error(1)
}

func (m *mockStorage) ClearResources(ctx context.Context, videoID uuid.UUID) error {
	return m.Called(ctx, videoID).Error(0)
}

type VideoServiceTestSuite struct {
	suite.Suite

	ctx         context.Context
	mockRepo    *mockRepository
	mockStorage *mockStorage
	eventBus    *events.InMemoryEventBus
	service     *appvideo.Service
}

func (suite *VideoServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(mockRepository)
	suite.mockStorage = new(mockStorage)
	suite.eventBus = events.NewInMemoryEventBus(logger.NewNoopLogger())

	suite.service = appvideo.NewService(
		suite.mockRepo,
		suite.mockStorage,
		suite.eventBus,
		logger.NewNoopLogger(),
	)
}

func (suite *VideoServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStorage.AssertExpectations(suite.T())
}

func validCreateCommand() appvideo.CreateVideoCommand {
	return appvideo.CreateVideoCommand{
		Title:       "System Design Interviews",
		Description: "A deep dive on scalable systems.",
		LaunchedAt:  2022,
		Duration:    120,
		Opened:      true,
		Rating:      video.RatingAge12,
	}
}

func (suite *VideoServiceTestSuite) TestCreateVideo_Success() {
	suite.mockRepo.On("Create", suite.ctx, mock.AnythingOfType("*video.Video")).Return(nil)

	id, err := suite.service.CreateVideo(suite.ctx, validCreateCommand())

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, id)
}

func (suite *VideoServiceTestSuite) TestCreateVideo_AccumulatesAllValidationErrors() {
	id, err := suite.service.CreateVideo(suite.ctx, appvideo.CreateVideoCommand{})

	suite.Require().Error(err)
	suite.Equal(uuid.Nil, id)

	var notificationErr *validation.NotificationError
	suite.Require().ErrorAs(err, &notificationErr)
	suite.Len(notificationErr.Errs, 4)
	suite.mockRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestUpdateVideo_NotFound() {
	id := uuid.New()
	suite.mockRepo.On("FindByID", suite.ctx, id).Return(nil, errors.NotFoundWithID("video", id.String()))

	err := suite.service.UpdateVideo(suite.ctx, appvideo.UpdateVideoCommand{ID: id})

	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *VideoServiceTestSuite) TestUploadMedia_VideoSlotPublishesEvent() {
	agg := video.NewVideo("t", "d", 2022, 10, true, video.RatingFree, nil, nil, nil)
	resource := video.Resource{Content: []byte("raw bytes"), Name: "movie.mp4"}
	media := video.NewAudioVideoMedia(resource.Checksum(), "movie.mp4", agg.ID.String()+"/movie.mp4")

	suite.mockRepo.On("FindByID", suite.ctx, agg.ID).Return(agg, nil)
	suite.mockStorage.On("StoreAudioVideo", suite.ctx, agg.ID, resource).Return(media, nil)
	suite.mockRepo.On("Update", suite.ctx, agg).Return(nil)

	output, err := suite.service.UploadMedia(suite.ctx, appvideo.UploadMediaCommand{
		VideoID:   agg.ID,
		MediaType: video.MediaTypeVideo,
		Resource:  resource,
	})

	suite.Require().NoError(err)
	suite.Equal(video.MediaTypeVideo, output.MediaType)

	stored, ok := agg.VideoMedia()
	suite.Require().True(ok)
	suite.Equal(video.MediaStatusPending, stored.Status)

	published := suite.eventBus.Published()
	suite.Require().Len(published, 1)
	suite.Equal(video.EventTypeMediaCreated, published[0].EventType())
	suite.Empty(agg.Events())
}

func (suite *VideoServiceTestSuite) TestUploadMedia_BannerSlotPublishesNothing() {
	agg := video.NewVideo("t", "d", 2022, 10, true, video.RatingFree, nil, nil, nil)
	resource := video.Resource{Content: []byte("png bytes"), Name: "banner.png"}
	media := video.NewImageMedia(resource.Checksum(), "banner.png", agg.ID.String()+"/banner.png")

	suite.mockRepo.On("FindByID", suite.ctx, agg.ID).Return(agg, nil)
	suite.mockStorage.On("StoreImage", suite.ctx, agg.ID, resource).Return(media, nil)
	suite.mockRepo.On("Update", suite.ctx, agg).Return(nil)

	_, err := suite.service.UploadMedia(suite.ctx, appvideo.UploadMediaCommand{
		VideoID:   agg.ID,
		MediaType: video.MediaTypeBanner,
		Resource:  resource,
	})

	suite.Require().NoError(err)
	suite.Empty(suite.eventBus.Published())
}

func (suite *VideoServiceTestSuite) TestUploadMedia_UnknownType() {
	agg := video.NewVideo("t", "d", 2022, 10, true, video.RatingFree, nil, nil, nil)
	suite.mockRepo.On("FindByID", suite.ctx, agg.ID).Return(agg, nil)

	_, err := suite.service.UploadMedia(suite.ctx, appvideo.UploadMediaCommand{
		VideoID:   agg.ID,
		MediaType: "SUBTITLES",
	})

	suite.Require().Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestUpdateMediaStatus_CompletedMatchesTrailer() {
	agg := video.NewVideo("t", "d", 2022, 10, true, video.RatingFree, nil, nil, nil)
	agg.UpdateVideoMedia(video.NewAudioVideoMedia("video-sum", "movie.mp4", "raw/movie.mp4"))
	agg.UpdateTrailerMedia(video.NewAudioVideoMedia("trailer-sum", "trailer.mp4", "raw/trailer.mp4"))
	agg.TakeEvents()

	suite.mockRepo.On("FindByID", suite.ctx, agg.ID).Return(agg, nil)
	suite.mockRepo.On("Update", suite.ctx, agg).Return(nil)

	err := suite.service.UpdateMediaStatus(suite.ctx, appvideo.UpdateMediaStatusCommand{
		Status:   video.MediaStatusCompleted,
		VideoID:  agg.ID,
		Checksum: "trailer-sum",
		Folder:   "encoded",
		Filename: "trailer.mp4",
	})

	suite.Require().NoError(err)

	trailer, _ := agg.TrailerMedia()
	suite.Equal(video.MediaStatusCompleted, trailer.Status)
	suite.Equal("encoded/trailer.mp4", trailer.EncodedLocation)

	videoSlot, _ := agg.VideoMedia()
	suite.Equal(video.MediaStatusPending, videoSlot.Status)
}

func (suite *VideoServiceTestSuite) TestUpdateMediaStatus_UnmatchedChecksumIsDropped() {
	agg := video.NewVideo("t", "d", 2022, 10, true, video.RatingFree, nil, nil, nil)
	agg.UpdateVideoMedia(video.NewAudioVideoMedia("video-sum", "movie.mp4", "raw/movie.mp4"))
	agg.TakeEvents()

	suite.mockRepo.On("FindByID", suite.ctx, agg.ID).Return(agg, nil)

	err := suite.service.UpdateMediaStatus(suite.ctx, appvideo.UpdateMediaStatusCommand{
		Status:   video.MediaStatusCompleted,
		VideoID:  agg.ID,
		Checksum: "unknown-sum",
		Folder:   "encoded",
		Filename: "movie.mp4",
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)

	videoSlot, _ := agg.VideoMedia()
	suite.Equal(video.MediaStatusPending, videoSlot.Status)
}

func (suite *VideoServiceTestSuite) TestUpdateMediaStatus_PendingIsAcceptedWithoutMutation() {
	agg := video.NewVideo("t", "d", 2022, 10, true, video.RatingFree, nil, nil, nil)
	agg.UpdateVideoMedia(video.NewAudioVideoMedia("video-sum", "movie.mp4", "raw/movie.mp4"))
	agg.TakeEvents()

	suite.mockRepo.On("FindByID", suite.ctx, agg.ID).Return(agg, nil)

	err := suite.service.UpdateMediaStatus(suite.ctx, appvideo.UpdateMediaStatusCommand{
		Status:   video.MediaStatusPending,
		VideoID:  agg.ID,
		Checksum: "video-sum",
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestDeleteVideo_StorageFailureIsTolerated() {
	id := uuid.New()
	suite.mockRepo.On("DeleteByID", suite.ctx, id).Return(nil)
	suite.mockStorage.On("ClearResources", suite.ctx, id).Return(errors.Internal("bucket unreachable"))

	err := suite.service.DeleteVideo(suite.ctx, id)

	suite.Require().NoError(err)
}

func (suite *VideoServiceTestSuite) TestDeleteVideo_NotFound() {
	id := uuid.New()
	suite.mockRepo.On("DeleteByID", suite.ctx, id).Return(errors.NotFoundWithID("video", id.String()))

	err := suite.service.DeleteVideo(suite.ctx, id)

	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
	suite.mockStorage.AssertNotCalled(suite.T(), "ClearResources", mock.Anything, mock.Anything)
}

func TestVideoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VideoServiceTestSuite))
}
