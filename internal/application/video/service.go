package video

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/validation"
	"github.com/coralstream/catalog/internal/domain/video"
	"github.com/coralstream/catalog/pkg/interfaces"
)

// Service orchestrates the video use cases: CRUD, media upload and the
// encoder-driven media status update.
type Service struct {
	repo     video.Repository
	storage  video.MediaStorage
	eventBus interfaces.EventBus
	logger   interfaces.Logger
}

// NewService creates a new video application service
func NewService(
	repo video.Repository,
	storage video.MediaStorage,
	eventBus interfaces.EventBus,
	logger interfaces.Logger,
) *Service {
	return &Service{
		repo:     repo,
		storage:  storage,
		eventBus: eventBus,
		logger:   logger,
	}
}

// CreateVideo builds a video aggregate, validates it through a notification
// and persists it. All validation errors are surfaced together.
func (s *Service) CreateVideo(ctx context.Context, cmd CreateVideoCommand) (uuid.UUID, error) {
	agg := video.NewVideo(
		cmd.Title,
		cmd.Description,
		cmd.LaunchedAt,
		cmd.Duration,
		cmd.Opened,
		cmd.Rating,
		cmd.Categories,
		cmd.Genres,
		cmd.CastMembers,
	)

	notification := validation.NewNotification()
	agg.Validate(notification)
	if notification.HasErrors() {
		return uuid.Nil, validation.NewNotificationError(notification.Errors())
	}

	if err := s.repo.Create(ctx, agg); err != nil {
		return uuid.Nil, fmt.Errorf("creating video: %w", err)
	}

	s.publishEvents(ctx, agg)

	s.logger.Info("video created",
		interfaces.String("id", agg.ID.String()),
		interfaces.String("title", agg.Title()))

	return agg.ID, nil
}

// UpdateVideo replaces all mutable metadata of an existing video. The
// aggregate is mutated first and checked afterwards; a failed check rejects
// the operation with the full error list and nothing is persisted.
func (s *Service) UpdateVideo(ctx context.Context, cmd UpdateVideoCommand) error {
	agg, err := s.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	agg.Update(
		cmd.Title,
		cmd.Description,
		cmd.LaunchedAt,
		cmd.Duration,
		cmd.Opened,
		cmd.Published,
		cmd.Rating,
		cmd.Categories,
		cmd.Genres,
		cmd.CastMembers,
	)

	notification := validation.NewNotification()
	agg.Validate(notification)
	if notification.HasErrors() {
		return validation.NewNotificationError(notification.Errors())
	}

	if err := s.repo.Update(ctx, agg); err != nil {
		return fmt.Errorf("updating video: %w", err)
	}

	s.publishEvents(ctx, agg)

	return nil
}

// GetVideo loads a video by identifier
func (s *Service) GetVideo(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	return s.repo.FindByID(ctx, id)
}

// ListVideos returns one page of videos
func (s *Service) ListVideos(ctx context.Context, query domain.SearchQuery) (domain.Page[*video.Video], error) {
	return s.repo.FindAll(ctx, query)
}

// DeleteVideo removes the video record and clears its stored media resources.
// Clearing is correlated but separate: a storage failure after the delete is
// logged, not rolled back.
func (s *Service) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	if err := s.storage.ClearResources(ctx, id); err != nil {
		s.logger.Error("failed to clear media resources",
			interfaces.String("video_id", id.String()),
			interfaces.Error(err))
	}

	s.logger.Info("video deleted", interfaces.String("id", id.String()))

	return nil
}

// UploadMedia stores a raw resource through the storage gateway and attaches
// the resulting descriptor to the matching media slot, dispatched purely by
// media type.
func (s *Service) UploadMedia(ctx context.Context, cmd UploadMediaCommand) (UploadMediaOutput, error) {
	agg, err := s.repo.FindByID(ctx, cmd.VideoID)
	if err != nil {
		return UploadMediaOutput{}, err
	}

	switch cmd.MediaType {
	case video.MediaTypeVideo:
		media, err := s.storage.StoreAudioVideo(ctx, agg.ID, cmd.Resource)
		if err != nil {
			return UploadMediaOutput{}, fmt.Errorf("storing video media: %w", err)
		}
		agg.UpdateVideoMedia(media)
	case video.MediaTypeTrailer:
		media, err := s.storage.StoreAudioVideo(ctx, agg.ID, cmd.Resource)
		if err != nil {
			return UploadMediaOutput{}, fmt.Errorf("storing trailer media: %w", err)
		}
		agg.UpdateTrailerMedia(media)
	case video.MediaTypeBanner:
		media, err := s.storage.StoreImage(ctx, agg.ID, cmd.Resource)
		if err != nil {
			return UploadMediaOutput{}, fmt.Errorf("storing banner media: %w", err)
		}
		agg.UpdateBannerMedia(media)
	case video.MediaTypeThumbnail:
		media, err := s.storage.StoreImage(ctx, agg.ID, cmd.Resource)
		if err != nil {
			return UploadMediaOutput{}, fmt.Errorf("storing thumbnail media: %w", err)
		}
		agg.UpdateThumbnailMedia(media)
	case video.MediaTypeThumbnailHalf:
		media, err := s.storage.StoreImage(ctx, agg.ID, cmd.Resource)
		if err != nil {
			return UploadMediaOutput{}, fmt.Errorf("storing thumbnail half media: %w", err)
		}
		agg.UpdateThumbnailHalfMedia(media)
	default:
		return UploadMediaOutput{}, fmt.Errorf("unsupported media type: %s", cmd.MediaType)
	}

	if err := s.repo.Update(ctx, agg); err != nil {
		return UploadMediaOutput{}, fmt.Errorf("updating video: %w", err)
	}

	s.publishEvents(ctx, agg)

	return UploadMediaOutput{VideoID: agg.ID, MediaType: cmd.MediaType}, nil
}

// UpdateMediaStatus applies an external encoder report to the matching media
// slot. The report's checksum is compared against the video slot first, then
// the trailer; a report matching neither is logged and dropped. The operation
// is idempotent: repeated reports re-apply the same transition.
func (s *Service) UpdateMediaStatus(ctx context.Context, cmd UpdateMediaStatusCommand) error {
	agg, err := s.repo.FindByID(ctx, cmd.VideoID)
	if err != nil {
		return err
	}

	mediaType, ok := matchSlot(agg, cmd.Checksum)
	if !ok {
		s.logger.Debug("media status report matched no slot",
			interfaces.String("video_id", cmd.VideoID.String()),
			interfaces.String("checksum", cmd.Checksum))
		return nil
	}

	switch cmd.Status {
	case video.MediaStatusPending:
		// Accepted but causes no mutation.
		return nil
	case video.MediaStatusProcessing:
		agg.Processing(mediaType)
	case video.MediaStatusCompleted:
		agg.Completed(mediaType, path.Join(cmd.Folder, cmd.Filename))
	default:
		return fmt.Errorf("unsupported media status: %s", cmd.Status)
	}

	if err := s.repo.Update(ctx, agg); err != nil {
		return fmt.Errorf("updating video: %w", err)
	}

	return nil
}

// matchSlot resolves which audio/video slot a report refers to. First match
// wins: video, then trailer.
func matchSlot(agg *video.Video, checksum string) (video.MediaType, bool) {
	if media, ok := agg.VideoMedia(); ok && media.Checksum == checksum {
		return video.MediaTypeVideo, true
	}
	if media, ok := agg.TrailerMedia(); ok && media.Checksum == checksum {
		return video.MediaTypeTrailer, true
	}
	return "", false
}

// publishEvents drains the aggregate's pending events and forwards them.
// Forwarding is best effort: the persisted state change is never rolled back
// on a publish failure.
func (s *Service) publishEvents(ctx context.Context, agg *video.Video) {
	for _, event := range agg.TakeEvents() {
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish domain event",
				interfaces.String("event_type", event.EventType()),
				interfaces.String("aggregate_id", event.AggregateID()),
				interfaces.Error(err))
		}
	}
}
