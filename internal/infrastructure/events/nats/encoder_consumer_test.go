package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appvideo "github.com/coralstream/catalog/internal/application/video"
	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/video"
	pkgerrors "github.com/coralstream/catalog/pkg/errors"
	"github.com/coralstream/catalog/pkg/logger"
)

func TestEncoderMessage_Decode(t *testing.T) {
	raw := `{
		"status": "COMPLETED",
		"id": "9f3a2b1c-0d4e-4f5a-8b6c-7d8e9f0a1b2c",
		"video": {
			"resource_id": "abc123",
			"encoded_video_folder": "encoded/9f3a2b1c",
			"file_path": "movie.mp4"
		}
	}`

	var report encoderMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &report))

	assert.Equal(t, "COMPLETED", report.Status)
	assert.Equal(t, "9f3a2b1c-0d4e-4f5a-8b6c-7d8e9f0a1b2c", report.ID)
	assert.Equal(t, "abc123", report.Video.ResourceID)
	assert.Equal(t, "encoded/9f3a2b1c", report.Video.EncodedVideoFolder)
	assert.Equal(t, "movie.mp4", report.Video.FilePath)
}

func TestCommandFrom_MapsReportFields(t *testing.T) {
	id := uuid.New()
	report := encoderMessage{Status: "COMPLETED", ID: id.String()}
	report.Video.ResourceID = "abc123"
	report.Video.EncodedVideoFolder = "encoded/abc"
	report.Video.FilePath = "movie.mp4"

	cmd, err := commandFrom(report)
	require.NoError(t, err)

	assert.Equal(t, video.MediaStatusCompleted, cmd.Status)
	assert.Equal(t, id, cmd.VideoID)
	assert.Equal(t, "abc123", cmd.Checksum)
	assert.Equal(t, "encoded/abc", cmd.Folder)
	assert.Equal(t, "movie.mp4", cmd.Filename)
}

func TestCommandFrom_RejectsMalformedID(t *testing.T) {
	_, err := commandFrom(encoderMessage{Status: "COMPLETED", ID: "not-a-uuid"})
	assert.Error(t, err)
}

type mockVideoRepository struct {
	mock.Mock
}

func (m *mockVideoRepository) Create(ctx context.Context, v *video.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVideoRepository) Update(ctx context.Context, v *video.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *mockVideoRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockVideoRepository) FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*video.Video], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.Page[*video.Video]), args.Error(1)
}

// capturedMsg records the ack disposition a message received.
type capturedMsg struct {
	data  []byte
	acked bool
	naked bool
}

func (m *capturedMsg) Metadata() (*jetstream.MsgMetadata, error) { return nil, nil }
func (m *capturedMsg) Data() []byte                              { return m.data }
func (m *capturedMsg) Headers() nats.Header                      { return nil }
func (m *capturedMsg) Subject() string                           { return "encoder.video.status" }
func (m *capturedMsg) Reply() string                             { return "" }
func (m *capturedMsg) Ack() error                                { m.acked = true; return nil }
func (m *capturedMsg) DoubleAck(context.Context) error           { m.acked = true; return nil }
func (m *capturedMsg) Nak() error                                { m.naked = true; return nil }
func (m *capturedMsg) NakWithDelay(time.Duration) error          { m.naked = true; return nil }
func (m *capturedMsg) InProgress() error                         { return nil }
func (m *capturedMsg) Term() error                               { return nil }
func (m *capturedMsg) TermWithReason(string) error               { return nil }

func newTestConsumer(repo video.Repository) *EncoderStatusConsumer {
	return &EncoderStatusConsumer{
		service: appvideo.NewService(repo, nil, nil, logger.NewNoopLogger()),
		logger:  zap.NewNop(),
	}
}

func completedPayload(videoID uuid.UUID) []byte {
	return []byte(fmt.Sprintf(
		`{"status":"COMPLETED","id":%q,"video":{"resource_id":"abc123","encoded_video_folder":"encoded","file_path":"movie.mp4"}}`,
		videoID,
	))
}

func TestProcessMessage_MissingVideoIsDropped(t *testing.T) {
	repo := new(mockVideoRepository)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, pkgerrors.NotFoundWithID("video", id.String()))

	consumer := newTestConsumer(repo)
	msg := &capturedMsg{data: completedPayload(id)}

	consumer.processMessage(context.Background(), msg)

	assert.True(t, msg.acked)
	assert.False(t, msg.naked)
	repo.AssertExpectations(t)
}

func TestProcessMessage_TransientFailureIsRedelivered(t *testing.T) {
	repo := new(mockVideoRepository)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, pkgerrors.Internal("database unreachable"))

	consumer := newTestConsumer(repo)
	msg := &capturedMsg{data: completedPayload(id)}

	consumer.processMessage(context.Background(), msg)

	assert.False(t, msg.acked)
	assert.True(t, msg.naked)
}

func TestProcessMessage_UndecodablePayloadIsDropped(t *testing.T) {
	consumer := newTestConsumer(new(mockVideoRepository))
	msg := &capturedMsg{data: []byte("not json")}

	consumer.processMessage(context.Background(), msg)

	assert.True(t, msg.acked)
	assert.False(t, msg.naked)
}
