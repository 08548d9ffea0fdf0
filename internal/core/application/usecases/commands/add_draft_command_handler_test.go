package commands_test

import (
	"context"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/draft"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAddDraftUoW struct{ mock.Mock }

func (m *MockAddDraftUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddDraftUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddDraftUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddDraftUoW) DraftRepository() ports.DraftRepository {
	args := m.Called()
	return args.Get(0).(ports.DraftRepository)
}

type MockAddDraftUoWFactory struct{ mock.Mock }

func (m *MockAddDraftUoWFactory) Create() commands.DraftUoW {
	args := m.Called()
	return args.Get(0).(commands.DraftUoW)
}

func TestAddDraftCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	draftID := kernel.NewUUID()
	agencyID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewAddDraftCommand(draftID, agencyID, productID, 3)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	catalog.On("GetProduct", ctx, productID).
		Return(ports.Product{ID: productID, Name: "Americano Beans 1kg", UnitPrice: 1000}, nil).
		Once()

	draftRepo := new(MockPromoteDraftRepository)
	uow := new(MockAddDraftUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		draftRepo.On("Add", ctx, mock.AnythingOfType("*draft.ReadyOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddDraftUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddDraftCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := draftRepo.Calls[0]
	created := addCall.Arguments[1].(*draft.ReadyOrder)
	assert.True(t, created.ID().IsEqual(draftID))
	assert.True(t, created.AgencyID().IsEqual(agencyID))
	assert.Equal(t, "Americano Beans 1kg", created.ProductName())
	assert.Equal(t, int64(1000), created.UnitPrice())
	assert.Equal(t, int64(3000), created.LineTotal())

	catalog.AssertExpectations(t)
	draftRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddDraftCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := context.Background()

	productID := kernel.NewUUID()
	cmd, err := commands.NewAddDraftCommand(kernel.NewUUID(), kernel.NewUUID(), productID, 3)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	catalog.On("GetProduct", ctx, productID).
		Return(ports.Product{}, errs.NewObjectNotFoundError("product", productID.String())).
		Once()

	factory := new(MockAddDraftUoWFactory)
	handler := commands.NewAddDraftCommandHandler(factory, catalog)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAddDraftCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AddDraftCommand{} // not constructed properly

	factory := new(MockAddDraftUoWFactory)
	catalog := new(MockCatalogReader)
	handler := commands.NewAddDraftCommandHandler(factory, catalog)

	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAddDraftCommandIsNotConstructed)
	catalog.AssertNotCalled(t, "GetProduct")
}

func TestNewAddDraftCommand_Validation(t *testing.T) {
	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := commands.NewAddDraftCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should reject zero product id", func(t *testing.T) {
		_, err := commands.NewAddDraftCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, 1)
		require.Error(t, err)
	})
}
