package impl

import (
	"context"
	"testing"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/domain/service"
	"chaski/internal/errors"
	mockRepo "chaski/internal/mocks/repository"
	mockService "chaski/internal/mocks/service"
	mockUsecase "chaski/internal/mocks/usecase"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type catalogServiceFixtures struct {
	service  usecase.CatalogUsecase
	stores   *mockRepo.MockStoreRepository
	products *mockRepo.MockProductRepository
	profiles *mockRepo.MockProfileRepository
	storage  *mockService.MockObjectStorage
	qrcode   *mockService.MockQRCodeService
	identity *mockUsecase.MockIdentityProvider
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		stores:   mockRepo.NewMockStoreRepository(t),
		products: mockRepo.NewMockProductRepository(t),
		profiles: mockRepo.NewMockProfileRepository(t),
		storage:  mockService.NewMockObjectStorage(t),
		qrcode:   mockService.NewMockQRCodeService(t),
		identity: mockUsecase.NewMockIdentityProvider(t),
	}

	fx.service = NewCatalogService(CatalogServiceParams{
		StoreRepo:     fx.stores,
		ProductRepo:   fx.products,
		ProfileRepo:   fx.profiles,
		ObjectStorage: fx.storage,
		QRCode:        fx.qrcode,
		Identity:      fx.identity,
		Config:        newTestConfig(),
		Logger:        newTestLogger(),
	})

	return fx
}

func (fx catalogServiceFixtures) seed(t *testing.T, stores []*entity.Store, products []*entity.Product) {
	t.Helper()

	fx.stores.EXPECT().FindActive(mock.Anything).Return(stores, nil).Once()
	fx.products.EXPECT().FindActive(mock.Anything).Return(products, nil).Once()
	fx.service.FetchAll(context.Background())
}

func TestCatalogService_FetchAll(t *testing.T) {
	t.Run("loads stores and products", func(t *testing.T) {
		fx := createTestCatalogService(t)
		store := &entity.Store{ID: uuid.New(), Name: "Tienda Sol", OwnerID: "owner", IsActive: true}
		product := newTestProduct("4.50")

		fx.seed(t, []*entity.Store{store}, []*entity.Product{product})

		assert.Len(t, fx.service.Stores(), 1)
		assert.Len(t, fx.service.Products(), 1)

		found, ok := fx.service.Product(product.ID)
		require.True(t, ok)
		assert.Equal(t, product.Name, found.Name)

		_, ok = fx.service.Store(uuid.New())
		assert.False(t, ok)
	})

	t.Run("failure keeps the previous catalog", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.seed(t, nil, []*entity.Product{newTestProduct("1.00")})

		fx.stores.EXPECT().FindActive(mock.Anything).Return(nil, errors.New("timeout")).Once()
		fx.products.EXPECT().FindActive(mock.Anything).Return(nil, nil).Maybe()
		fx.service.FetchAll(context.Background())

		assert.Len(t, fx.service.Products(), 1)
	})
}

func TestCatalogService_MyProducts_UsesEffectiveOwner(t *testing.T) {
	fx := createTestCatalogService(t)

	store := &entity.Store{ID: uuid.New(), OwnerID: "seller-a"}
	viaStore := newTestProduct("2.00")
	viaStore.StoreID = &store.ID
	viaStore.UserID = "employee-b"
	standalone := newTestProduct("3.00")
	standalone.UserID = "seller-a"
	other := newTestProduct("4.00")
	other.UserID = "seller-c"

	fx.seed(t, []*entity.Store{store}, []*entity.Product{viaStore, standalone, other})

	mine := fx.service.MyProducts("seller-a")
	require.Len(t, mine, 2)
	assert.ElementsMatch(t, []uuid.UUID{viaStore.ID, standalone.ID}, []uuid.UUID{mine[0].ID, mine[1].ID})

	assert.Empty(t, fx.service.MyProducts("employee-b"))
	assert.Len(t, fx.service.MyStores("seller-a"), 1)
}

func TestCatalogService_CreateStore(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	user := newTestUser()
	fx.identity.EXPECT().CurrentUser().Return(user)

	fx.stores.EXPECT().Create(ctx, mock.MatchedBy(func(store *entity.Store) bool {
		return store.OwnerID == user.ID && store.Coordinates == orb.Point{-66.15, -17.39} && store.IsActive
	})).Return(nil)

	store, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:        "Tienda Sol",
		Address:     "Calle Jordán",
		Coordinates: []float64{-66.15, -17.39},
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, store.OwnerID)
	assert.Len(t, fx.service.MyStores(user.ID), 1)
}

func TestCatalogService_CreateStore_RejectsDemo(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.identity.EXPECT().CurrentUser().Return(entity.DemoUser())

	_, err := fx.service.CreateStore(context.Background(), &usecase.CreateStoreInput{Name: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrDemoUnsupported)
}

func TestCatalogService_CreateProduct_UploadsImages(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	user := newTestUser()
	fx.identity.EXPECT().CurrentUser().Return(user)

	var created *entity.Product
	fx.products.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, product *entity.Product) error {
		created = product

		return nil
	})
	fx.storage.EXPECT().List(mock.Anything, "products", productImagePrefix, 1).Return(nil, nil)
	fx.storage.EXPECT().Upload(mock.Anything, "products", mock.Anything, pngHeader, service.UploadOptions{
		ContentType:  "image/png",
		CacheControl: imageCacheControl,
	}).Return(nil)
	fx.storage.EXPECT().PublicURL("products", mock.Anything).Return("https://cdn.chaski.com/p.png")
	fx.products.EXPECT().UpdateImages(ctx, mock.Anything, []string{"https://cdn.chaski.com/p.png"}).Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:  "Api morado",
		Price: decimal.RequireFromString("6.00"),
	}, []usecase.ImageFile{{Name: "api.png", Data: pngHeader}})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, user.ID, product.UserID)
	assert.Equal(t, "https://cdn.chaski.com/p.png", product.Image)
	assert.Equal(t, []string{"https://cdn.chaski.com/p.png"}, product.Images)
	assert.Len(t, fx.service.Products(), 1)
}

func TestCatalogService_CreateProduct_UploadFailureDeletesProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	fx.identity.EXPECT().CurrentUser().Return(newTestUser())

	fx.products.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.storage.EXPECT().List(mock.Anything, "products", productImagePrefix, 1).Return(nil, nil)
	fx.storage.EXPECT().Upload(mock.Anything, "products", mock.Anything, pngHeader, mock.Anything).Return(errors.New("403 forbidden"))
	fx.storage.EXPECT().Delete(mock.Anything, "products", mock.Anything).Return(nil)
	fx.products.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:  "Api morado",
		Price: decimal.RequireFromString("6.00"),
	}, []usecase.ImageFile{{Name: "api.png", Data: pngHeader}})

	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	assert.Empty(t, fx.service.Products())
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreateProductInput
		files   []usecase.ImageFile
		wantErr error
	}{
		{
			name:    "zero price",
			input:   &usecase.CreateProductInput{Name: "x", Price: decimal.Zero},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "non image file",
			input:   &usecase.CreateProductInput{Name: "x", Price: decimal.NewFromInt(1)},
			files:   []usecase.ImageFile{{Name: "notes.txt", Data: []byte("just text")}},
			wantErr: domainerrors.ErrInvalidImage,
		},
		{
			name:    "oversized file",
			input:   &usecase.CreateProductInput{Name: "x", Price: decimal.NewFromInt(1)},
			files:   []usecase.ImageFile{{Name: "big.png", Data: make([]byte, 5<<20+1)}},
			wantErr: domainerrors.ErrImageTooLarge,
		},
		{
			name:  "too many images",
			input: &usecase.CreateProductInput{Name: "x", Price: decimal.NewFromInt(1)},
			files: []usecase.ImageFile{
				{Data: pngHeader}, {Data: pngHeader}, {Data: pngHeader}, {Data: pngHeader},
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			fx.identity.EXPECT().CurrentUser().Return(newTestUser())

			_, err := fx.service.CreateProduct(context.Background(), tt.input, tt.files)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_CreateProduct_ForeignStore(t *testing.T) {
	fx := createTestCatalogService(t)
	store := &entity.Store{ID: uuid.New(), OwnerID: "someone-else"}
	fx.seed(t, []*entity.Store{store}, nil)
	fx.identity.EXPECT().CurrentUser().Return(newTestUser())

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:    "x",
		Price:   decimal.NewFromInt(1),
		StoreID: &store.ID,
	}, nil)

	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestCatalogService_UpdateProduct_Ownership(t *testing.T) {
	user := newTestUser()
	store := &entity.Store{ID: uuid.New(), OwnerID: user.ID}

	owned := newTestProduct("2.00")
	owned.StoreID = &store.ID
	foreign := newTestProduct("2.00")

	t.Run("owner via store can update", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.seed(t, []*entity.Store{store}, []*entity.Product{owned, foreign})
		fx.identity.EXPECT().CurrentUser().Return(user)

		name := "Api con pastel"
		fx.products.EXPECT().Update(mock.Anything, owned.ID, entity.ProductUpdate{Name: &name}).Return(nil)
		fx.stores.EXPECT().FindActive(mock.Anything).Return([]*entity.Store{store}, nil).Once()
		fx.products.EXPECT().FindActive(mock.Anything).Return([]*entity.Product{owned, foreign}, nil).Once()

		err := fx.service.UpdateProduct(context.Background(), owned.ID, &usecase.UpdateProductInput{Name: &name}, nil)

		require.NoError(t, err)
	})

	t.Run("non owner is rejected", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.seed(t, []*entity.Store{store}, []*entity.Product{owned, foreign})
		fx.identity.EXPECT().CurrentUser().Return(user)

		err := fx.service.DeactivateProduct(context.Background(), foreign.ID)

		assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.identity.EXPECT().CurrentUser().Return(user)
		missing := uuid.New()
		fx.products.EXPECT().FindByID(mock.Anything, missing).Return(nil, repository.ErrProductNotFound)

		err := fx.service.DeactivateProduct(context.Background(), missing)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestCatalogService_ProductOwner_DefaultsName(t *testing.T) {
	fx := createTestCatalogService(t)
	product := newTestProduct("2.00")
	fx.seed(t, nil, []*entity.Product{product})

	fx.profiles.EXPECT().FindByID(mock.Anything, product.UserID).Return(&entity.User{ID: product.UserID}, nil)

	owner, err := fx.service.ProductOwner(context.Background(), product.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultParticipantName, owner.Name)
}

func TestCatalogService_StoreShareCode(t *testing.T) {
	fx := createTestCatalogService(t)
	store := &entity.Store{ID: uuid.New(), OwnerID: "x"}
	fx.seed(t, []*entity.Store{store}, nil)

	fx.qrcode.EXPECT().GenerateStoreQR(store.ID).Return([]byte("png"), nil)

	png, err := fx.service.StoreShareCode(context.Background(), store.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
