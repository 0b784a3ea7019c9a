package main

import (
	"context"
	"log/slog"
	"os"

	"chaski/config"
	"chaski/internal/delivery"
	"chaski/internal/delivery/http"
	"chaski/internal/delivery/http/middleware"
	"chaski/internal/delivery/http/router/handler"
	"chaski/internal/delivery/worker"
	"chaski/internal/infra/auth"
	"chaski/internal/infra/auth/oauth"
	"chaski/internal/infra/feed"
	"chaski/internal/infra/localstate"
	logs "chaski/internal/infra/log"
	"chaski/internal/infra/persistence/postgres"
	"chaski/internal/infra/qrcode"
	"chaski/internal/infra/storage"
	"chaski/internal/usecase"
	"chaski/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// mirrorParams holds the use cases wired to the session at startup.
type mirrorParams struct {
	fx.In
	fx.Lifecycle

	Logger    *slog.Logger
	Session   usecase.SessionUsecase
	Catalog   usecase.CatalogUsecase
	Cart      usecase.CartUsecase
	Wishlist  usecase.WishlistUsecase
	Messaging usecase.MessagingUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startMirrors,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		feed.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewStoreRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewWishlistRepository,
			postgres.NewOrderRepository,
			postgres.NewConversationRepository,
			postgres.NewMessageRepository,
			postgres.NewRatingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			oauth.NewServices,
			auth.NewAuthProvider,
			storage.NewObjectStorage,
			localstate.NewLocalFlags,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			sessionIdentity,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewCheckoutService,
			impl.NewMessagingService,
			impl.NewProfileService,
		),
	)
}

// sessionIdentity exposes the session manager as the identity source of the other use cases.
func sessionIdentity(session usecase.SessionUsecase) usecase.IdentityProvider {
	return session
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewSessionMiddleware,
			fx.Annotate(
				middleware.NewRateLimiter,
				fx.ResultTags(`name:"rateLimiter"`),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewCheckoutHandler,
			handler.NewMessagingHandler,
			handler.NewStreamHandler,
			handler.NewProfileHandler,
			handler.NewObjectHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startMirrors subscribes the per-identity mirrors to session changes, then restores
// the persisted session and loads the catalog.
func startMirrors(params mirrorParams) {
	params.Session.AddListener(params.Cart, params.Wishlist, params.Messaging)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Session.Initialize(ctx); err != nil {
				params.Logger.Warn("Failed to restore session", slog.Any("error", err))
			}
			go params.Catalog.FetchAll(context.WithoutCancel(ctx))

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
