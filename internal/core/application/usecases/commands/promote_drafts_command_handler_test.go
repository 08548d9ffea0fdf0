package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/draft"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPromoteDraftRepository struct{ mock.Mock }

func (m *MockPromoteDraftRepository) Add(ctx context.Context, ro *draft.ReadyOrder) error {
	args := m.Called(ctx, ro)
	return args.Error(0)
}

func (m *MockPromoteDraftRepository) Update(ctx context.Context, ro *draft.ReadyOrder) error {
	args := m.Called(ctx, ro)
	return args.Error(0)
}

func (m *MockPromoteDraftRepository) Get(
	ctx context.Context, agencyID kernel.UUID, id kernel.UUID,
) (*draft.ReadyOrder, error) {
	args := m.Called(ctx, agencyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*draft.ReadyOrder), args.Error(1)
}

func (m *MockPromoteDraftRepository) GetMany(
	ctx context.Context, agencyID kernel.UUID, ids []kernel.UUID,
) ([]*draft.ReadyOrder, error) {
	args := m.Called(ctx, agencyID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*draft.ReadyOrder), args.Error(1)
}

func (m *MockPromoteDraftRepository) GetAll(ctx context.Context, agencyID kernel.UUID) ([]*draft.ReadyOrder, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*draft.ReadyOrder), args.Error(1)
}

func (m *MockPromoteDraftRepository) DeleteMany(ctx context.Context, agencyID kernel.UUID, ids []kernel.UUID) error {
	args := m.Called(ctx, agencyID, ids)
	return args.Error(0)
}

type MockPromoteOrderRepository struct{ mock.Mock }

func (m *MockPromoteOrderRepository) Add(ctx context.Context, aggregate *order.AgencyOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPromoteOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.AgencyOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.AgencyOrder), args.Error(1)
}

func (m *MockPromoteOrderRepository) UpdateWithStatus(
	ctx context.Context, aggregate *order.AgencyOrder, expectedStatus order.Status,
) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockPromoteOrderRepository) Delete(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockPromoteUoW struct{ mock.Mock }

func (m *MockPromoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPromoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPromoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPromoteUoW) DraftRepository() ports.DraftRepository {
	args := m.Called()
	return args.Get(0).(ports.DraftRepository)
}

func (m *MockPromoteUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPromoteUoWFactory struct{ mock.Mock }

func (m *MockPromoteUoWFactory) Create() commands.PromotionUoW {
	args := m.Called()
	return args.Get(0).(commands.PromotionUoW)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetProduct(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Product), args.Error(1)
}

func (m *MockCatalogReader) GetAgency(ctx context.Context, id kernel.UUID) (ports.Agency, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Agency), args.Error(1)
}

func promoteTestDraft(t *testing.T, agencyID kernel.UUID, name string, quantity int, unitPrice int64) *draft.ReadyOrder {
	t.Helper()
	ro, err := draft.NewReadyOrder(kernel.NewUUID(), agencyID, kernel.NewUUID(), name, unitPrice, quantity)
	require.NoError(t, err)
	return ro
}

func TestPromoteDraftsCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	agencyID := kernel.NewUUID()
	reserveDate := time.Now().AddDate(0, 0, 5)

	testDrafts := []*draft.ReadyOrder{
		promoteTestDraft(t, agencyID, "Americano Beans 1kg", 2, 1000),
		promoteTestDraft(t, agencyID, "Filter Paper", 3, 500),
	}
	draftIDs := []kernel.UUID{testDrafts[0].ID(), testDrafts[1].ID()}

	cmd, err := commands.NewPromoteDraftsCommand(orderID, agencyID, draftIDs, reserveDate)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	catalog.On("GetAgency", ctx, agencyID).
		Return(ports.Agency{ID: agencyID, Name: "Busan Agency"}, nil).
		Once()

	draftRepo := new(MockPromoteDraftRepository)
	orderRepo := new(MockPromoteOrderRepository)
	uow := new(MockPromoteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		draftRepo.On("GetMany", ctx, agencyID, draftIDs).Return(testDrafts, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.AgencyOrder")).Return(nil).Once(),
		draftRepo.On("DeleteMany", ctx, agencyID, draftIDs).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPromoteDraftsCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := orderRepo.Calls[0]
	created := addCall.Arguments[1].(*order.AgencyOrder)
	assert.Equal(t, order.PendingApproval, created.Status())
	assert.Equal(t, "Busan Agency", created.AgencyName())
	assert.Equal(t, int64(3500), created.TotalAmount())
	assert.Len(t, created.Items(), 2)

	catalog.AssertExpectations(t)
	draftRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPromoteDraftsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.PromoteDraftsCommand{} // not constructed properly

	factory := new(MockPromoteUoWFactory)
	catalog := new(MockCatalogReader)
	handler := commands.NewPromoteDraftsCommandHandler(factory, catalog)

	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPromoteDraftsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPromoteDraftsCommandHandler_Handle_AgencyNotFound(t *testing.T) {
	ctx := context.Background()

	agencyID := kernel.NewUUID()
	cmd, err := commands.NewPromoteDraftsCommand(
		kernel.NewUUID(), agencyID, []kernel.UUID{kernel.NewUUID()}, time.Now().AddDate(0, 0, 5),
	)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	catalog.On("GetAgency", ctx, agencyID).
		Return(ports.Agency{}, errs.NewObjectNotFoundError("agency", agencyID.String())).
		Once()

	factory := new(MockPromoteUoWFactory)
	handler := commands.NewPromoteDraftsCommandHandler(factory, catalog)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestPromoteDraftsCommandHandler_Handle_MissingDraft(t *testing.T) {
	ctx := context.Background()

	agencyID := kernel.NewUUID()
	draftIDs := []kernel.UUID{kernel.NewUUID()}
	cmd, err := commands.NewPromoteDraftsCommand(
		kernel.NewUUID(), agencyID, draftIDs, time.Now().AddDate(0, 0, 5),
	)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	catalog.On("GetAgency", ctx, agencyID).
		Return(ports.Agency{ID: agencyID, Name: "Busan Agency"}, nil).
		Once()

	draftRepo := new(MockPromoteDraftRepository)
	orderRepo := new(MockPromoteOrderRepository)
	uow := new(MockPromoteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		draftRepo.On("GetMany", ctx, agencyID, draftIDs).
			Return(nil, errs.NewObjectNotFoundError("draft", draftIDs[0].String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPromoteDraftsCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Add")
	uow.AssertExpectations(t)
}

func TestPromoteDraftsCommandHandler_Handle_ConcurrentDraftConsumption(t *testing.T) {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	agencyID := kernel.NewUUID()
	reserveDate := time.Now().AddDate(0, 0, 5)

	testDrafts := []*draft.ReadyOrder{promoteTestDraft(t, agencyID, "Americano Beans 1kg", 2, 1000)}
	draftIDs := []kernel.UUID{testDrafts[0].ID()}

	cmd, err := commands.NewPromoteDraftsCommand(orderID, agencyID, draftIDs, reserveDate)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	catalog.On("GetAgency", ctx, agencyID).
		Return(ports.Agency{ID: agencyID, Name: "Busan Agency"}, nil).
		Once()

	draftRepo := new(MockPromoteDraftRepository)
	orderRepo := new(MockPromoteOrderRepository)
	uow := new(MockPromoteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		draftRepo.On("GetMany", ctx, agencyID, draftIDs).Return(testDrafts, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.AgencyOrder")).Return(nil).Once(),
		draftRepo.On("DeleteMany", ctx, agencyID, draftIDs).
			Return(errs.NewConcurrencyConflictError("draft", draftIDs[0].String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPromoteDraftsCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	uow.AssertNotCalled(t, "Commit")
	uow.AssertExpectations(t)
}

func TestPromoteDraftsCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()

	agencyID := kernel.NewUUID()
	testDrafts := []*draft.ReadyOrder{promoteTestDraft(t, agencyID, "Americano Beans 1kg", 2, 1000)}
	draftIDs := []kernel.UUID{testDrafts[0].ID()}

	cmd, err := commands.NewPromoteDraftsCommand(
		kernel.NewUUID(), agencyID, draftIDs, time.Now().AddDate(0, 0, 5),
	)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	catalog.On("GetAgency", ctx, agencyID).
		Return(ports.Agency{ID: agencyID, Name: "Busan Agency"}, nil).
		Once()

	draftRepo := new(MockPromoteDraftRepository)
	orderRepo := new(MockPromoteOrderRepository)
	uow := new(MockPromoteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		draftRepo.On("GetMany", ctx, agencyID, draftIDs).Return(testDrafts, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.AgencyOrder")).Return(nil).Once(),
		draftRepo.On("DeleteMany", ctx, agencyID, draftIDs).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPromoteDraftsCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
