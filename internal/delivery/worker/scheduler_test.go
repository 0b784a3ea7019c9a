package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chaski/config"
	mockUsecase "chaski/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newSchedulerParams(t *testing.T, cron *config.CronConfig) (SchedulerParams, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Cron: cron}

	return SchedulerParams{
		Lc:        lc,
		Cfg:       cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Catalog:   mockUsecase.NewMockCatalogUsecase(t),
		Messaging: mockUsecase.NewMockMessagingUsecase(t),
	}, lc
}

func TestNewScheduler(t *testing.T) {
	tests := []struct {
		name    string
		cron    *config.CronConfig
		entries int
		wantErr bool
	}{
		{name: "both jobs", cron: &config.CronConfig{CatalogRefresh: "@every 5m", ConversationsRefresh: "@every 1m"}, entries: 2},
		{name: "disabled job", cron: &config.CronConfig{CatalogRefresh: "@every 5m"}, entries: 1},
		{name: "nothing scheduled", cron: &config.CronConfig{}, entries: 0},
		{name: "invalid spec", cron: &config.CronConfig{CatalogRefresh: "every now and then"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, _ := newSchedulerParams(t, tt.cron)

			d, err := NewScheduler(params)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Len(t, d.(*scheduler).cron.Entries(), tt.entries)
		})
	}
}

func TestScheduler_RunsJobsUntilStopped(t *testing.T) {
	params, lc := newSchedulerParams(t, &config.CronConfig{ConversationsRefresh: "@every 1s"})

	ran := make(chan struct{}, 1)
	params.Messaging.(*mockUsecase.MockMessagingUsecase).EXPECT().
		FetchConversations(mock.Anything).
		Run(func(ctx context.Context) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return()

	d, err := NewScheduler(params)
	require.NoError(t, err)

	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- d.Serve(context.Background()) }()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("refresh job never ran")
	}

	lc.RequireStop()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}
}
