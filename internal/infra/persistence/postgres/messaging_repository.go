package postgres

import (
	"context"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

func (repo *conversationRepository) FindByParticipant(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	var conversationModels []model.ConversationModel
	err := repo.db.WithContext(ctx).
		Where("participant1 = ? OR participant2 = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for i := range conversationModels {
		conversations = append(conversations, toConversationDomain(&conversationModels[i]))
	}

	return conversations, nil
}

func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return toConversationDomain(&conversationM), nil
}

// GetOrCreate relies on the unique pair index: the insert is a no-op when the
// pair exists, and the row is then read back.
func (repo *conversationRepository) GetOrCreate(ctx context.Context, a, b string) (uuid.UUID, error) {
	first, second := entity.ParticipantPair(a, b)

	var id uuid.UUID
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conversationM := &model.ConversationModel{Participant1: first, Participant2: second}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(conversationM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
		}

		var existing model.ConversationModel
		if err := tx.Where("participant1 = ? AND participant2 = ?", first, second).First(&existing).Error; err != nil {
			return errors.Wrap(err, "failed to read conversation back")
		}
		id = existing.ID

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (repo *conversationRepository) Touch(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.ConversationModel{}).Where("id = ?", id).Update("updated_at", gorm.Expr("NOW()"))
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) FindByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messageModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for i := range messageModels {
		messages = append(messages, toMessageDomain(&messageModels[i]))
	}

	return messages, nil
}

func (repo *messageRepository) FindLatest(ctx context.Context, conversationID uuid.UUID) (*entity.Message, error) {
	var messageModels []model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(1).
		Find(&messageModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load latest message")
	}
	if len(messageModels) == 0 {
		return nil, nil
	}

	return toMessageDomain(&messageModels[0]), nil
}

func (repo *messageRepository) CountUnread(ctx context.Context, conversationID uuid.UUID, readerID string) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Scopes(unreadFor(conversationID, readerID)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return int(count), nil
}

// Insert appends a message. The change capture callback publishes it once committed.
func (repo *messageRepository) Insert(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.IsRead = messageM.IsRead

	return nil
}

func (repo *messageRepository) MarkRead(ctx context.Context, conversationID uuid.UUID, readerID string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Scopes(unreadFor(conversationID, readerID)).
		Update("is_read", true).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// unreadFor selects the messages of conversationID that readerID has not read and did not send.
func unreadFor(conversationID uuid.UUID, readerID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false)
	}
}

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	return &entity.Conversation{
		ID:           data.ID,
		Participant1: data.Participant1,
		Participant2: data.Participant2,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	return &entity.Message{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Content:        data.Content,
		IsRead:         data.IsRead,
		CreatedAt:      data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Content:        data.Content,
		IsRead:         data.IsRead,
	}
}
