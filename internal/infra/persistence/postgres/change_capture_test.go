package postgres

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"chaski/internal/domain/entity"
	"chaski/internal/domain/service"
	"chaski/internal/errors"
	"chaski/internal/infra/persistence/model"
	mockService "chaski/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func newCaptureStatement(table string, dest any) *gorm.DB {
	return &gorm.DB{Statement: &gorm.Statement{
		Schema:  &schema.Schema{Table: table},
		Dest:    dest,
		Context: context.Background(),
	}}
}

func TestChangeCapture_PublishesMessageInsert(t *testing.T) {
	feed := mockService.NewMockChangeFeed(t)
	capture := &changeCapture{feed: feed, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	row := &model.MessageModel{ID: uuid.New(), ConversationID: uuid.New(), SenderID: "luis", Content: "hola"}

	var published service.RowEvent
	feed.EXPECT().Publish(mock.Anything, mock.AnythingOfType("service.RowEvent")).
		RunAndReturn(func(_ context.Context, event service.RowEvent) error {
			published = event

			return nil
		}).Once()

	capture.afterCreate(newCaptureStatement(service.TableMessages, row))

	assert.Equal(t, service.TableMessages, published.Table)
	assert.Equal(t, service.EventInsert, published.Type)

	var message entity.Message
	require.NoError(t, json.Unmarshal(published.Record, &message))
	assert.Equal(t, row.ID, message.ID)
	assert.True(t, service.Filter{Column: "conversation_id", Value: row.ConversationID.String()}.Matches(published.Record))
}

func TestChangeCapture_IgnoresOtherInserts(t *testing.T) {
	feed := mockService.NewMockChangeFeed(t)
	capture := &changeCapture{feed: feed, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	capture.afterCreate(newCaptureStatement("products", &model.ProductModel{}))

	failed := newCaptureStatement(service.TableMessages, &model.MessageModel{})
	failed.Error = errors.New("insert failed")
	capture.afterCreate(failed)

	feed.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestChangeCapture_PublishFailureIsSwallowed(t *testing.T) {
	feed := mockService.NewMockChangeFeed(t)
	capture := &changeCapture{feed: feed, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	rows := []model.MessageModel{{ID: uuid.New()}, {ID: uuid.New()}}
	feed.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Times(2)

	assert.NotPanics(t, func() {
		capture.afterCreate(newCaptureStatement(service.TableMessages, rows))
	})
}
