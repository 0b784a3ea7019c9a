package impl

import (
	"context"
	"log/slog"
	"slices"

	"chaski/config"
	deliverycontext "chaski/internal/delivery/context"
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/domain/service"
	"chaski/internal/errors"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type catalogSnapshot struct {
	stores   []*entity.Store
	products []*entity.Product
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	stores   repository.StoreRepository
	products repository.ProductRepository
	profiles repository.ProfileRepository
	qrcode   service.QRCodeService
	identity usecase.IdentityProvider
	uploader *imageUploader
	logger   *slog.Logger

	// The catalog is not identity-scoped, so its source never changes.
	catalog mirror[struct{}, catalogSnapshot]
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	StoreRepo     repository.StoreRepository
	ProductRepo   repository.ProductRepository
	ProfileRepo   repository.ProfileRepository
	ObjectStorage service.ObjectStorage
	QRCode        service.QRCodeService
	Identity      usecase.IdentityProvider
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		stores:   params.StoreRepo,
		products: params.ProductRepo,
		profiles: params.ProfileRepo,
		qrcode:   params.QRCode,
		identity: params.Identity,
		uploader: &imageUploader{
			storage:  params.ObjectStorage,
			bucket:   params.Config.Storage.ProductBucket,
			maxBytes: params.Config.Storage.MaxUploadBytes,
			logger:   params.Logger,
		},
		logger: params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchAll reloads active stores and products together.
func (srv *catalogService) FetchAll(ctx context.Context) {
	source, ticket := srv.catalog.begin()

	var snapshot catalogSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stores, err := srv.stores.FindActive(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to fetch stores")
		}
		snapshot.stores = stores

		return nil
	})
	g.Go(func() error {
		products, err := srv.products.FindActive(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to fetch products")
		}
		snapshot.products = products

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to fetch catalog", slog.Any("error", err))

		return
	}

	if srv.catalog.apply(source, ticket, snapshot) {
		srv.log(ctx).Debug("Catalog refreshed", slog.Int("stores", len(snapshot.stores)), slog.Int("products", len(snapshot.products)))
	}
}

func (srv *catalogService) Stores() []*entity.Store {
	return slices.Clone(srv.catalog.get().stores)
}

func (srv *catalogService) Products() []*entity.Product {
	return slices.Clone(srv.catalog.get().products)
}

func (srv *catalogService) Product(id uuid.UUID) (*entity.Product, bool) {
	for _, product := range srv.catalog.get().products {
		if product.ID == id {
			return product, true
		}
	}

	return nil, false
}

func (srv *catalogService) Store(id uuid.UUID) (*entity.Store, bool) {
	for _, store := range srv.catalog.get().stores {
		if store.ID == id {
			return store, true
		}
	}

	return nil, false
}

func (srv *catalogService) MyStores(userID string) []*entity.Store {
	var mine []*entity.Store
	for _, store := range srv.catalog.get().stores {
		if store.IsOwnedBy(userID) {
			mine = append(mine, store)
		}
	}

	return mine
}

func (srv *catalogService) MyProducts(userID string) []*entity.Product {
	snapshot := srv.catalog.get()

	var mine []*entity.Product
	for _, product := range snapshot.products {
		if product.EffectiveOwner(snapshot.stores) == userID {
			mine = append(mine, product)
		}
	}

	return mine
}

// CreateStore inserts an active store owned by the current identity.
func (srv *catalogService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	actor, err := requireRemoteIdentity(srv.identity)
	if err != nil {
		return nil, err
	}

	store := &entity.Store{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Images:      input.Images,
		Address:     input.Address,
		OwnerID:     actor.ID,
		IsActive:    true,
	}
	if len(input.Coordinates) == 2 {
		store.Coordinates = orb.Point{input.Coordinates[0], input.Coordinates[1]}
	}

	if err := srv.stores.Create(ctx, store); err != nil {
		srv.log(ctx).Error("Failed to create store", slog.Any("error", err), slog.String("owner_id", actor.ID))

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.catalog.update(func(s catalogSnapshot) catalogSnapshot {
		s.stores = append(slices.Clone(s.stores), store)

		return s
	})
	srv.log(ctx).Info("Store created", slog.String("store_id", store.ID.String()), slog.String("owner_id", actor.ID))

	return store, nil
}

// CreateProduct inserts the product, uploads its images and patches them in.
// A failed upload or patch deletes the product again.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput, files []usecase.ImageFile) (*entity.Product, error) {
	actor, err := requireRemoteIdentity(srv.identity)
	if err != nil {
		return nil, err
	}
	if !input.Price.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	}
	if len(files) > entity.MaxProductImages {
		return nil, domainerrors.ErrValidationFailed.WithDetails("too many images")
	}
	if input.StoreID != nil {
		if err := srv.checkStoreOwner(ctx, *input.StoreID, actor.ID); err != nil {
			return nil, err
		}
	}

	images, err := srv.uploader.prepare(files)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      []string{},
		StoreID:     input.StoreID,
		Category:    input.Category,
		IsActive:    true,
		Stock:       input.Stock,
		UserID:      actor.ID,
	}
	if err := srv.products.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err), slog.String("user_id", actor.ID))

		return nil, errors.Wrap(err, "failed to create product")
	}

	if len(images) > 0 {
		urls, paths, err := srv.uploader.upload(ctx, product.ID, images)
		if err != nil {
			srv.compensateProduct(ctx, product.ID, nil)

			return nil, err
		}

		if err := srv.products.UpdateImages(ctx, product.ID, urls); err != nil {
			srv.compensateProduct(ctx, product.ID, paths)

			return nil, errors.Wrap(err, "failed to attach product images")
		}
		product.SetImages(urls)
	}

	srv.catalog.update(func(s catalogSnapshot) catalogSnapshot {
		s.products = append([]*entity.Product{product}, s.products...)

		return s
	})
	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()), slog.Int("images", len(product.Images)))

	return product, nil
}

func (srv *catalogService) compensateProduct(ctx context.Context, productID uuid.UUID, paths []string) {
	ctx = context.WithoutCancel(ctx)

	srv.log(ctx).Warn("Rolling back product creation", slog.String("product_id", productID.String()))
	if err := srv.products.Delete(ctx, productID); err != nil {
		srv.log(ctx).Error("Failed to delete product after failed creation", slog.Any("error", err), slog.String("product_id", productID.String()))
	}
	srv.uploader.discard(ctx, paths)
}

// UpdateStore writes the store fields and refetches the catalog.
func (srv *catalogService) UpdateStore(ctx context.Context, id uuid.UUID, input *usecase.UpdateStoreInput) error {
	actor, err := requireRemoteIdentity(srv.identity)
	if err != nil {
		return err
	}
	if err := srv.checkStoreOwner(ctx, id, actor.ID); err != nil {
		return err
	}

	update := entity.StoreUpdate{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Images:      input.Images,
	}
	if err := srv.stores.Update(ctx, id, actor.ID, update); err != nil {
		srv.log(ctx).Error("Failed to update store", slog.Any("error", err), slog.String("store_id", id.String()))

		return errors.Wrap(err, "failed to update store")
	}

	srv.FetchAll(ctx)

	return nil
}

// UpdateProduct writes the product fields, uploading new images first, and refetches.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput, files []usecase.ImageFile) error {
	actor, err := requireRemoteIdentity(srv.identity)
	if err != nil {
		return err
	}
	if input.Price != nil && !input.Price.IsPositive() {
		return domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	}

	product, err := srv.ownedProduct(ctx, id, actor.ID)
	if err != nil {
		return err
	}
	if input.StoreID != nil && !input.ClearStore {
		if err := srv.checkStoreOwner(ctx, *input.StoreID, actor.ID); err != nil {
			return err
		}
	}

	images := input.Images
	if images == nil && len(files) > 0 {
		images = product.Images
	}
	if len(images)+len(files) > entity.MaxProductImages {
		return domainerrors.ErrValidationFailed.WithDetails("too many images")
	}

	prepared, err := srv.uploader.prepare(files)
	if err != nil {
		return err
	}
	urls, paths, err := srv.uploader.upload(ctx, id, prepared)
	if err != nil {
		return err
	}
	if len(urls) > 0 {
		images = append(slices.Clone(images), urls...)
	}

	update := entity.ProductUpdate{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		Images:      images,
		StoreID:     input.StoreID,
		ClearStore:  input.ClearStore,
	}
	if err := srv.products.Update(ctx, id, update); err != nil {
		srv.uploader.discard(context.WithoutCancel(ctx), paths)
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.String("product_id", id.String()))

		return errors.Wrap(err, "failed to update product")
	}

	srv.FetchAll(ctx)

	return nil
}

// DeactivateProduct soft-deletes a product and refetches.
func (srv *catalogService) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	actor, err := requireRemoteIdentity(srv.identity)
	if err != nil {
		return err
	}
	if _, err := srv.ownedProduct(ctx, id, actor.ID); err != nil {
		return err
	}

	if err := srv.products.SetActive(ctx, id, false); err != nil {
		srv.log(ctx).Error("Failed to deactivate product", slog.Any("error", err), slog.String("product_id", id.String()))

		return errors.Wrap(err, "failed to deactivate product")
	}

	srv.FetchAll(ctx)

	return nil
}

// ProductOwner loads the profile of whoever effectively owns a product.
func (srv *catalogService) ProductOwner(ctx context.Context, productID uuid.UUID) (*entity.User, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	ownerID, err := srv.ownerOf(ctx, product)
	if err != nil {
		return nil, err
	}

	owner, err := srv.profiles.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load product owner")
	}
	if owner.Name == "" {
		owner.Name = entity.DefaultParticipantName
	}

	return owner, nil
}

// StoreShareCode renders the QR code pointing at a store.
func (srv *catalogService) StoreShareCode(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	if _, err := srv.findStore(ctx, storeID); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateStoreQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

func (srv *catalogService) findStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	if store, ok := srv.Store(id); ok {
		return store, nil
	}

	store, err := srv.stores.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

func (srv *catalogService) findProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if product, ok := srv.Product(id); ok {
		return product, nil
	}

	product, err := srv.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ownerOf resolves the effective owner, loading the store when the mirror lacks it.
func (srv *catalogService) ownerOf(ctx context.Context, product *entity.Product) (string, error) {
	if product.StoreID == nil {
		return product.UserID, nil
	}

	store, err := srv.findStore(ctx, *product.StoreID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStoreNotFound) {
			return product.UserID, nil
		}

		return "", err
	}

	return store.OwnerID, nil
}

func (srv *catalogService) ownedProduct(ctx context.Context, id uuid.UUID, userID string) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := srv.ownerOf(ctx, product)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, domainerrors.ErrNotOwner
	}

	return product, nil
}

func (srv *catalogService) checkStoreOwner(ctx context.Context, storeID uuid.UUID, userID string) error {
	store, err := srv.findStore(ctx, storeID)
	if err != nil {
		return err
	}
	if !store.IsOwnedBy(userID) {
		return domainerrors.ErrNotOwner
	}

	return nil
}
