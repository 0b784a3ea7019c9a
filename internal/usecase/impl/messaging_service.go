package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	deliverycontext "chaski/internal/delivery/context"
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/domain/service"
	"chaski/internal/errors"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const conversationColumn = "conversation_id"

// messagingService implements the MessagingUsecase interface.
type messagingService struct {
	conversations repository.ConversationRepository
	messages      repository.MessageRepository
	profiles      repository.ProfileRepository
	feed          service.ChangeFeed
	logger        *slog.Logger

	// inbox is keyed by the identity ID, thread by the current conversation.
	inbox  mirror[string, []*entity.Conversation]
	thread mirror[uuid.UUID, []*entity.Message]

	mu   sync.Mutex
	me   *entity.User
	open service.Subscription

	watchMu  sync.RWMutex
	watchers map[uint64]func(entity.Message)
	nextID   uint64
}

// MessagingServiceParams holds dependencies for MessagingService, injected by Fx.
type MessagingServiceParams struct {
	fx.In

	ConversationRepo repository.ConversationRepository
	MessageRepo      repository.MessageRepository
	ProfileRepo      repository.ProfileRepository
	ChangeFeed       service.ChangeFeed
	Logger           *slog.Logger
}

// NewMessagingService is the constructor for messagingService.
func NewMessagingService(params MessagingServiceParams) usecase.MessagingUsecase {
	return &messagingService{
		conversations: params.ConversationRepo,
		messages:      params.MessageRepo,
		profiles:      params.ProfileRepo,
		feed:          params.ChangeFeed,
		logger:        params.Logger,
		watchers:      make(map[uint64]func(entity.Message)),
	}
}

func (srv *messagingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *messagingService) SessionStarted(ctx context.Context, user *entity.User) {
	srv.CloseConversation()

	srv.mu.Lock()
	srv.me = user
	srv.mu.Unlock()

	srv.inbox.reset(user.ID, nil)
	if user.IsDemo() {
		return
	}

	srv.FetchConversations(ctx)
}

func (srv *messagingService) SessionEnded(_ context.Context) {
	srv.CloseConversation()

	srv.mu.Lock()
	srv.me = nil
	srv.mu.Unlock()

	srv.inbox.reset("", nil)
}

// actor returns the identity allowed to message, rejecting demo and anonymous callers.
func (srv *messagingService) actor() (*entity.User, error) {
	srv.mu.Lock()
	me := srv.me
	srv.mu.Unlock()

	switch {
	case me == nil:
		return nil, domainerrors.ErrNotAuthenticated
	case me.IsDemo():
		return nil, domainerrors.ErrDemoUnsupported
	default:
		return me, nil
	}
}

// FetchConversations reloads the inbox, annotating each conversation with its
// latest message, unread count and counterpart profile.
func (srv *messagingService) FetchConversations(ctx context.Context) {
	me, err := srv.actor()
	if err != nil {
		return
	}
	source, ticket := srv.inbox.begin()
	if source != me.ID {
		return
	}

	conversations, err := srv.loadConversations(ctx, me.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch conversations", slog.Any("error", err), slog.String("user_id", me.ID))

		return
	}

	srv.inbox.apply(source, ticket, conversations)
}

func (srv *messagingService) loadConversations(ctx context.Context, me string) ([]*entity.Conversation, error) {
	conversations, err := srv.conversations.FindByParticipant(ctx, me)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}
	if len(conversations) == 0 {
		return []*entity.Conversation{}, nil
	}

	others := make([]string, 0, len(conversations))
	for _, conversation := range conversations {
		others = append(others, conversation.OtherParticipantID(me))
	}

	var profiles []*entity.User
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := srv.profiles.FindByIDs(gctx, others)
		if err != nil {
			return errors.Wrap(err, "failed to load participants")
		}
		profiles = found

		return nil
	})
	for _, conversation := range conversations {
		g.Go(func() error {
			latest, err := srv.messages.FindLatest(gctx, conversation.ID)
			if err != nil {
				return errors.Wrapf(err, "failed to load latest message of %s", conversation.ID)
			}
			unread, err := srv.messages.CountUnread(gctx, conversation.ID, me)
			if err != nil {
				return errors.Wrapf(err, "failed to count unread messages of %s", conversation.ID)
			}
			conversation.LastMessage = latest
			conversation.UnreadCount = unread

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.User, len(profiles))
	for _, profile := range profiles {
		byID[profile.ID] = profile
	}
	for _, conversation := range conversations {
		other := conversation.OtherParticipantID(me)
		conversation.OtherParticipant = entity.ParticipantOf(byID[other])
		conversation.OtherParticipant.ID = other
	}

	return conversations, nil
}

// FetchMessages makes conversationID current, loads its history and opens its live subscription.
func (srv *messagingService) FetchMessages(ctx context.Context, conversationID uuid.UUID) error {
	me, err := srv.actor()
	if err != nil {
		return err
	}

	srv.CloseConversation()
	srv.thread.reset(conversationID, nil)
	source, ticket := srv.thread.begin()

	history, err := srv.messages.FindByConversation(ctx, conversationID)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch messages", slog.Any("error", err), slog.String("conversation_id", conversationID.String()))

		return errors.Wrap(err, "failed to fetch messages")
	}
	if !srv.thread.apply(source, ticket, history) {
		return nil
	}

	if err := srv.subscribe(ctx, conversationID); err != nil {
		srv.log(ctx).Warn("Live updates unavailable", slog.Any("error", err), slog.String("conversation_id", conversationID.String()))
	}

	if err := srv.messages.MarkRead(ctx, conversationID, me.ID); err != nil {
		srv.log(ctx).Warn("Failed to mark messages as read", slog.Any("error", err), slog.String("conversation_id", conversationID.String()))

		return nil
	}
	// Published conversations are shared with readers, so the cleared one is a copy.
	srv.inbox.amend(me.ID, func(conversations []*entity.Conversation) []*entity.Conversation {
		next := make([]*entity.Conversation, len(conversations))
		for i, conversation := range conversations {
			next[i] = conversation
			if conversation.ID == conversationID && conversation.UnreadCount != 0 {
				cleared := *conversation
				cleared.UnreadCount = 0
				next[i] = &cleared
			}
		}

		return next
	})

	return nil
}

func (srv *messagingService) subscribe(ctx context.Context, conversationID uuid.UUID) error {
	filter := service.Filter{Column: conversationColumn, Value: conversationID.String()}

	sub, err := srv.feed.Subscribe(context.WithoutCancel(ctx), service.TableMessages, filter, func(event service.RowEvent) {
		srv.receive(conversationID, event)
	})
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to messages")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.thread.current() != conversationID {
		_ = sub.Close()

		return nil
	}
	if srv.open != nil {
		_ = srv.open.Close()
	}
	srv.open = sub

	return nil
}

// receive appends a live insert to the current thread, skipping ids already present.
func (srv *messagingService) receive(conversationID uuid.UUID, event service.RowEvent) {
	if event.Type != service.EventInsert {
		return
	}

	var message entity.Message
	if err := json.Unmarshal(event.Record, &message); err != nil {
		srv.logger.Warn("Dropping undecodable message event", slog.Any("error", err))

		return
	}
	if message.ConversationID != conversationID {
		return
	}

	appended := false
	srv.thread.amend(conversationID, func(messages []*entity.Message) []*entity.Message {
		if slices.ContainsFunc(messages, func(m *entity.Message) bool { return m.ID == message.ID }) {
			return messages
		}
		appended = true

		return append(slices.Clone(messages), &message)
	})
	if !appended {
		return
	}

	srv.watchMu.RLock()
	watchers := make([]func(entity.Message), 0, len(srv.watchers))
	for _, fn := range srv.watchers {
		watchers = append(watchers, fn)
	}
	srv.watchMu.RUnlock()

	for _, fn := range watchers {
		fn(message)
	}
}

// SendMessage inserts a message into conversationID and refreshes the inbox.
func (srv *messagingService) SendMessage(ctx context.Context, conversationID uuid.UUID, content string) error {
	me, err := srv.actor()
	if err != nil {
		return err
	}

	content, ok := entity.NormalizeContent(content)
	if !ok {
		return domainerrors.ErrEmptyMessage
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       me.ID,
		Content:        content,
	}
	if err := srv.messages.Insert(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to send message", slog.Any("error", err), slog.String("conversation_id", conversationID.String()))

		return errors.Wrap(err, "failed to send message")
	}

	if err := srv.conversations.Touch(ctx, conversationID); err != nil {
		srv.log(ctx).Warn("Failed to bump conversation", slog.Any("error", err), slog.String("conversation_id", conversationID.String()))
	}

	srv.FetchConversations(ctx)

	return nil
}

// CreateConversation returns the conversation of the pair {me, otherUserID}.
func (srv *messagingService) CreateConversation(ctx context.Context, otherUserID string) (uuid.UUID, error) {
	me, err := srv.actor()
	if err != nil {
		return uuid.Nil, err
	}
	if otherUserID == "" {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("otherUserId is required")
	}
	if otherUserID == me.ID {
		return uuid.Nil, domainerrors.ErrSelfConversation
	}

	first, second := entity.ParticipantPair(me.ID, otherUserID)
	id, err := srv.conversations.GetOrCreate(ctx, first, second)
	if err != nil {
		srv.log(ctx).Error("Failed to create conversation", slog.Any("error", err), slog.String("other_user_id", otherUserID))

		return uuid.Nil, errors.Wrap(err, "failed to create conversation")
	}

	srv.FetchConversations(ctx)

	return id, nil
}

// CloseConversation tears down the live subscription and clears the thread.
func (srv *messagingService) CloseConversation() {
	srv.mu.Lock()
	sub := srv.open
	srv.open = nil
	srv.mu.Unlock()

	if sub != nil {
		if err := sub.Close(); err != nil {
			srv.logger.Warn("Failed to close message subscription", slog.Any("error", err))
		}
	}

	srv.thread.reset(uuid.Nil, nil)
}

func (srv *messagingService) Conversations() []*entity.Conversation {
	return slices.Clone(srv.inbox.get())
}

func (srv *messagingService) Messages() []*entity.Message {
	return slices.Clone(srv.thread.get())
}

func (srv *messagingService) CurrentConversation() (uuid.UUID, bool) {
	id := srv.thread.current()

	return id, id != uuid.Nil
}

func (srv *messagingService) UnreadTotal() int {
	total := 0
	for _, conversation := range srv.inbox.get() {
		total += conversation.UnreadCount
	}

	return total
}

func (srv *messagingService) Watch(fn func(entity.Message)) func() {
	srv.watchMu.Lock()
	id := srv.nextID
	srv.nextID++
	srv.watchers[id] = fn
	srv.watchMu.Unlock()

	return func() {
		srv.watchMu.Lock()
		delete(srv.watchers, id)
		srv.watchMu.Unlock()
	}
}
