package impl

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/service"
	"chaski/internal/errors"
	mockRepo "chaski/internal/mocks/repository"
	mockService "chaski/internal/mocks/service"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messagingServiceFixtures struct {
	service       usecase.MessagingUsecase
	conversations *mockRepo.MockConversationRepository
	messages      *mockRepo.MockMessageRepository
	profiles      *mockRepo.MockProfileRepository
	feed          *mockService.MockChangeFeed
}

func createTestMessagingService(t *testing.T) messagingServiceFixtures {
	fx := messagingServiceFixtures{
		conversations: mockRepo.NewMockConversationRepository(t),
		messages:      mockRepo.NewMockMessageRepository(t),
		profiles:      mockRepo.NewMockProfileRepository(t),
		feed:          mockService.NewMockChangeFeed(t),
	}
	fx.service = NewMessagingService(MessagingServiceParams{
		ConversationRepo: fx.conversations,
		MessageRepo:      fx.messages,
		ProfileRepo:      fx.profiles,
		ChangeFeed:       fx.feed,
		Logger:           newTestLogger(),
	})

	return fx
}

// start signs user in with an empty inbox.
func (fx messagingServiceFixtures) start(user *entity.User) {
	fx.conversations.EXPECT().FindByParticipant(mock.Anything, user.ID).Return(nil, nil).Once()
	fx.service.SessionStarted(context.Background(), user)
}

func messageEvent(t *testing.T, message entity.Message) service.RowEvent {
	t.Helper()

	record, err := json.Marshal(message)
	require.NoError(t, err)

	return service.RowEvent{Table: service.TableMessages, Type: service.EventInsert, Record: record}
}

func TestMessagingService_FetchConversations_Annotates(t *testing.T) {
	fx := createTestMessagingService(t)
	me := newTestUser()
	other := &entity.User{ID: "luis", ProfileImage: "https://cdn/luis.png"}

	first := &entity.Conversation{ID: uuid.New(), Participant1: me.ID, Participant2: other.ID}
	second := &entity.Conversation{ID: uuid.New(), Participant1: "sofia", Participant2: me.ID}
	latest := &entity.Message{ID: uuid.New(), ConversationID: first.ID, SenderID: other.ID, Content: "hola"}

	fx.conversations.EXPECT().FindByParticipant(mock.Anything, me.ID).Return([]*entity.Conversation{first, second}, nil)
	fx.profiles.EXPECT().FindByIDs(mock.Anything, []string{other.ID, "sofia"}).Return([]*entity.User{other}, nil)
	fx.messages.EXPECT().FindLatest(mock.Anything, first.ID).Return(latest, nil)
	fx.messages.EXPECT().FindLatest(mock.Anything, second.ID).Return(nil, nil)
	fx.messages.EXPECT().CountUnread(mock.Anything, first.ID, me.ID).Return(3, nil)
	fx.messages.EXPECT().CountUnread(mock.Anything, second.ID, me.ID).Return(1, nil)

	fx.service.SessionStarted(context.Background(), me)

	conversations := fx.service.Conversations()
	require.Len(t, conversations, 2)
	assert.Equal(t, first.ID, conversations[0].ID)
	assert.Equal(t, latest, conversations[0].LastMessage)
	assert.Equal(t, entity.DefaultParticipantName, conversations[0].OtherParticipant.Name)
	assert.Equal(t, "https://cdn/luis.png", conversations[0].OtherParticipant.ProfileImage)
	assert.Equal(t, "sofia", conversations[1].OtherParticipant.ID)
	assert.Equal(t, 4, fx.service.UnreadTotal())
}

func TestMessagingService_FetchConversations_FailureKeepsInbox(t *testing.T) {
	fx := createTestMessagingService(t)
	me := newTestUser()
	conversation := &entity.Conversation{ID: uuid.New(), Participant1: me.ID, Participant2: "luis"}

	fx.conversations.EXPECT().FindByParticipant(mock.Anything, me.ID).Return([]*entity.Conversation{conversation}, nil).Once()
	fx.profiles.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(nil, nil).Once()
	fx.messages.EXPECT().FindLatest(mock.Anything, conversation.ID).Return(nil, nil).Once()
	fx.messages.EXPECT().CountUnread(mock.Anything, conversation.ID, me.ID).Return(2, nil).Once()
	fx.service.SessionStarted(context.Background(), me)

	fx.conversations.EXPECT().FindByParticipant(mock.Anything, me.ID).Return(nil, errors.New("network down")).Once()
	fx.service.FetchConversations(context.Background())

	assert.Len(t, fx.service.Conversations(), 1)
	assert.Equal(t, 2, fx.service.UnreadTotal())
}

func TestMessagingService_SendMessage_RejectsBlankBeforeInsert(t *testing.T) {
	fx := createTestMessagingService(t)
	fx.start(newTestUser())

	for _, content := range []string{"", "   ", "\n\t "} {
		err := fx.service.SendMessage(context.Background(), uuid.New(), content)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)
	}

	fx.messages.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestMessagingService_SendMessage_InsertsTrimmedAndRefetches(t *testing.T) {
	fx := createTestMessagingService(t)
	me := newTestUser()
	fx.start(me)
	conversationID := uuid.New()

	fx.messages.EXPECT().Insert(mock.Anything, &entity.Message{
		ConversationID: conversationID,
		SenderID:       me.ID,
		Content:        "¿Sigue disponible?",
	}).Return(nil)
	fx.conversations.EXPECT().Touch(mock.Anything, conversationID).Return(nil)
	fx.conversations.EXPECT().FindByParticipant(mock.Anything, me.ID).Return(nil, nil).Once()

	require.NoError(t, fx.service.SendMessage(context.Background(), conversationID, "  ¿Sigue disponible?  "))
}

func TestMessagingService_CreateConversation_OrderIndependent(t *testing.T) {
	conversationID := uuid.New()

	for _, users := range [][2]string{{"ana", "luis"}, {"luis", "ana"}} {
		fx := createTestMessagingService(t)
		me := &entity.User{ID: users[0]}
		fx.start(me)

		fx.conversations.EXPECT().GetOrCreate(mock.Anything, "ana", "luis").Return(conversationID, nil)
		fx.conversations.EXPECT().FindByParticipant(mock.Anything, me.ID).Return(nil, nil).Once()

		id, err := fx.service.CreateConversation(context.Background(), users[1])

		require.NoError(t, err)
		assert.Equal(t, conversationID, id)
	}
}

func TestMessagingService_CreateConversation_Rejections(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		fx := createTestMessagingService(t)
		me := newTestUser()
		fx.start(me)

		_, err := fx.service.CreateConversation(context.Background(), me.ID)
		assert.ErrorIs(t, err, domainerrors.ErrSelfConversation)
	})

	t.Run("demo", func(t *testing.T) {
		fx := createTestMessagingService(t)
		fx.service.SessionStarted(context.Background(), entity.DemoUser())

		_, err := fx.service.CreateConversation(context.Background(), "luis")
		assert.ErrorIs(t, err, domainerrors.ErrDemoUnsupported)
		assert.ErrorIs(t, fx.service.SendMessage(context.Background(), uuid.New(), "hola"), domainerrors.ErrDemoUnsupported)
		assert.Empty(t, fx.service.Conversations())
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestMessagingService(t)

		err := fx.service.FetchMessages(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})
}

func TestMessagingService_FetchMessages_LiveAppend(t *testing.T) {
	fx := createTestMessagingService(t)
	me := newTestUser()
	fx.start(me)
	ctx := context.Background()
	conversationID := uuid.New()

	existing := &entity.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: "luis", Content: "hola"}
	sub := mockService.NewMockSubscription(t)

	var deliver func(service.RowEvent)
	fx.messages.EXPECT().FindByConversation(ctx, conversationID).Return([]*entity.Message{existing}, nil)
	fx.feed.EXPECT().Subscribe(mock.Anything, service.TableMessages, service.Filter{Column: "conversation_id", Value: conversationID.String()}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ service.Filter, onInsert func(service.RowEvent)) (service.Subscription, error) {
			deliver = onInsert

			return sub, nil
		})
	fx.messages.EXPECT().MarkRead(ctx, conversationID, me.ID).Return(nil)

	require.NoError(t, fx.service.FetchMessages(ctx, conversationID))
	current, ok := fx.service.CurrentConversation()
	require.True(t, ok)
	assert.Equal(t, conversationID, current)

	var watched []entity.Message
	cancel := fx.service.Watch(func(m entity.Message) { watched = append(watched, m) })
	defer cancel()

	reply := entity.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: "luis", Content: "¿precio?"}
	deliver(messageEvent(t, reply))
	deliver(messageEvent(t, reply))
	deliver(messageEvent(t, *existing))

	messages := fx.service.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, reply.ID, messages[1].ID)
	assert.Len(t, watched, 1)

	sub.EXPECT().Close().Return(nil).Once()
	fx.service.CloseConversation()

	_, ok = fx.service.CurrentConversation()
	assert.False(t, ok)
	assert.Empty(t, fx.service.Messages())

	deliver(messageEvent(t, entity.Message{ID: uuid.New(), ConversationID: conversationID}))
	assert.Empty(t, fx.service.Messages())
}

func TestMessagingService_FetchMessages_SwitchingClosesPrevious(t *testing.T) {
	fx := createTestMessagingService(t)
	me := newTestUser()
	fx.start(me)
	ctx := context.Background()

	first, second := uuid.New(), uuid.New()
	firstSub := mockService.NewMockSubscription(t)
	secondSub := mockService.NewMockSubscription(t)

	fx.messages.EXPECT().FindByConversation(ctx, mock.Anything).Return(nil, nil)
	fx.messages.EXPECT().MarkRead(ctx, mock.Anything, me.ID).Return(nil)
	fx.feed.EXPECT().Subscribe(mock.Anything, service.TableMessages, mock.Anything, mock.Anything).Return(firstSub, nil).Once()
	fx.feed.EXPECT().Subscribe(mock.Anything, service.TableMessages, mock.Anything, mock.Anything).Return(secondSub, nil).Once()

	require.NoError(t, fx.service.FetchMessages(ctx, first))

	firstSub.EXPECT().Close().Return(nil).Once()
	require.NoError(t, fx.service.FetchMessages(ctx, second))

	current, _ := fx.service.CurrentConversation()
	assert.Equal(t, second, current)

	secondSub.EXPECT().Close().Return(nil).Once()
	fx.service.SessionEnded(ctx)

	assert.Empty(t, fx.service.Conversations())
}

func TestMessagingService_FetchMessages_ClearsUnreadWithoutTouchingSnapshots(t *testing.T) {
	fx := createTestMessagingService(t)
	me := newTestUser()
	ctx := context.Background()
	conversation := &entity.Conversation{ID: uuid.New(), Participant1: me.ID, Participant2: "luis"}
	other := &entity.Conversation{ID: uuid.New(), Participant1: "sofia", Participant2: me.ID}

	fx.conversations.EXPECT().FindByParticipant(mock.Anything, me.ID).Return([]*entity.Conversation{conversation, other}, nil).Once()
	fx.profiles.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(nil, nil).Once()
	fx.messages.EXPECT().FindLatest(mock.Anything, mock.Anything).Return(nil, nil)
	fx.messages.EXPECT().CountUnread(mock.Anything, conversation.ID, me.ID).Return(3, nil).Once()
	fx.messages.EXPECT().CountUnread(mock.Anything, other.ID, me.ID).Return(1, nil).Once()
	fx.service.SessionStarted(ctx, me)

	fx.messages.EXPECT().FindByConversation(ctx, conversation.ID).Return(nil, nil)
	fx.feed.EXPECT().Subscribe(mock.Anything, service.TableMessages, mock.Anything, mock.Anything).Return(mockService.NewMockSubscription(t), nil)
	fx.messages.EXPECT().MarkRead(ctx, conversation.ID, me.ID).Return(nil)

	before := fx.service.Conversations()
	require.Len(t, before, 2)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				for _, c := range fx.service.Conversations() {
					_ = c.UnreadCount
				}
				_ = before[0].UnreadCount
			}
		}
	}()

	require.NoError(t, fx.service.FetchMessages(ctx, conversation.ID))
	close(stop)
	wg.Wait()

	assert.Equal(t, 3, before[0].UnreadCount, "earlier snapshots keep their values")
	after := fx.service.Conversations()
	require.Len(t, after, 2)
	assert.Equal(t, 0, after[0].UnreadCount)
	assert.Same(t, before[1], after[1], "untouched conversations are shared")
	assert.Equal(t, 1, fx.service.UnreadTotal())
}
