package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/olbiataxi/internal/pkg/circuitbreaker"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topics   []string
	messages []interface{}
	err      error
}

func (p *recordingPublisher) Publish(topic string, message interface{}) error {
	p.topics = append(p.topics, topic)
	p.messages = append(p.messages, message)
	return p.err
}

func newBookingRequest() *models.BookingRequest {
	return &models.BookingRequest{
		ID:    uuid.New(),
		Quote: models.Quote{From: "Airport", To: "City Center", Total: 40},
		Link:  "https://wa.me/393476308563?text=hi",
	}
}

func TestPublishBookingRequest_Success(t *testing.T) {
	publisher := &recordingPublisher{}
	gw := NewBookingGW(publisher, constants.TopicBookingRequested)
	req := newBookingRequest()

	err := gw.PublishBookingRequest(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, publisher.topics, 1)
	assert.Equal(t, constants.TopicBookingRequested, publisher.topics[0])
	assert.Same(t, req, publisher.messages[0])
}

func TestPublishBookingRequest_PublishError(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("nsqd unreachable")}
	gw := NewBookingGW(publisher, constants.TopicBookingRequested)

	err := gw.PublishBookingRequest(context.Background(), newBookingRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish booking request")
	assert.Contains(t, err.Error(), "nsqd unreachable")
}

func TestPublishBookingRequest_NoPublisher(t *testing.T) {
	gw := NewBookingGW(nil, constants.TopicBookingRequested)

	err := gw.PublishBookingRequest(context.Background(), newBookingRequest())

	assert.NoError(t, err)
}

func TestPublishBookingRequest_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("nsqd unreachable")}
	gw := NewBookingGW(publisher, constants.TopicBookingRequested)

	for i := 0; i < 3; i++ {
		require.Error(t, gw.PublishBookingRequest(context.Background(), newBookingRequest()))
	}

	err := gw.PublishBookingRequest(context.Background(), newBookingRequest())

	require.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Len(t, publisher.topics, 3)
}
