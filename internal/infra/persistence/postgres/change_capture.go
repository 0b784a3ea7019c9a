package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"chaski/internal/domain/service"
	"chaski/internal/errors"
	"chaski/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const changeCaptureCallback = "chaski:change_capture"

// changeCapture publishes committed message inserts to the change feed.
type changeCapture struct {
	feed   service.ChangeFeed
	logger *slog.Logger
}

func registerChangeCapture(db *gorm.DB, feed service.ChangeFeed, logger *slog.Logger) error {
	if feed == nil {
		return nil
	}
	capture := &changeCapture{feed: feed, logger: logger}

	err := db.Callback().Create().After("gorm:create").Register(changeCaptureCallback, capture.afterCreate)
	if err != nil {
		return errors.Wrap(err, "failed to register change capture")
	}

	return nil
}

func (c *changeCapture) afterCreate(db *gorm.DB) {
	if db.Error != nil || db.Statement.Schema == nil || db.Statement.Schema.Table != service.TableMessages {
		return
	}

	var rows []*model.MessageModel
	switch dest := db.Statement.Dest.(type) {
	case *model.MessageModel:
		rows = append(rows, dest)
	case []model.MessageModel:
		for i := range dest {
			rows = append(rows, &dest[i])
		}
	case []*model.MessageModel:
		rows = dest
	default:
		return
	}

	ctx := context.WithoutCancel(db.Statement.Context)
	for _, row := range rows {
		event, err := messageEvent(row)
		if err != nil {
			c.logger.Warn("Failed to encode message event", slog.Any("error", err))

			continue
		}
		if err := c.feed.Publish(ctx, event); err != nil {
			c.logger.Warn("Failed to publish message event",
				slog.Any("error", err),
				slog.String("message_id", row.ID.String()),
			)
		}
	}
}

func messageEvent(row *model.MessageModel) (service.RowEvent, error) {
	record, err := json.Marshal(toMessageDomain(row))
	if err != nil {
		return service.RowEvent{}, errors.Wrap(err, "failed to marshal message")
	}

	return service.RowEvent{
		Table:  service.TableMessages,
		Type:   service.EventInsert,
		Record: record,
	}, nil
}
