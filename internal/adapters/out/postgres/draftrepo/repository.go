package draftrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/draft"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDraftRepository implements DraftRepository using GORM.
type GormDraftRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDraftRepository creates a new GORM draft repository.
func NewGormDraftRepository(db *gorm.DB, tracker aggregateTracker) *GormDraftRepository {
	return &GormDraftRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new draft line item to the database.
func (r *GormDraftRepository) Add(ctx context.Context, readyOrder *draft.ReadyOrder) error {
	if err := readyOrder.Validate(); err != nil {
		return err
	}

	dto := fromDomain(readyOrder)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(readyOrder.ID(), readyOrder)
	return nil
}

// Update saves an existing draft line item to the database.
// Callers load the draft in the same transaction first, so zero affected
// rows means a concurrent promotion or deletion consumed it after that
// read, reported as ConcurrencyConflictError.
func (r *GormDraftRepository) Update(ctx context.Context, readyOrder *draft.ReadyOrder) error {
	if err := readyOrder.Validate(); err != nil {
		return err
	}

	dto := fromDomain(readyOrder)
	result := r.db.WithContext(ctx).
		Model(&DraftDTO{}).
		Where("id = ? AND agency_id = ?", dto.ID, dto.AgencyID).
		Updates(map[string]any{
			"quantity":   dto.Quantity,
			"line_total": dto.LineTotal,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("draft", readyOrder.ID().String())
	}

	r.tracker.TrackAggregate(readyOrder.ID(), readyOrder)
	return nil
}

// Get retrieves a draft by ID, scoped to the given agency.
func (r *GormDraftRepository) Get(
	ctx context.Context,
	agencyID kernel.UUID,
	id kernel.UUID,
) (*draft.ReadyOrder, error) {
	if err := errors.Join(agencyID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto DraftDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND agency_id = ?", id.Bytes(), agencyID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("draft", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves the drafts with the given ids, scoped to the given agency.
// Fails with ObjectNotFoundError unless every requested draft was found, so a
// selection holding a foreign or already consumed draft never half-succeeds.
func (r *GormDraftRepository) GetMany(
	ctx context.Context,
	agencyID kernel.UUID,
	ids []kernel.UUID,
) ([]*draft.ReadyOrder, error) {
	if err := agencyID.Validate(); err != nil {
		return nil, err
	}
	rawIDs, err := rawUUIDs(ids)
	if err != nil {
		return nil, err
	}

	var dtos []DraftDTO
	err = r.db.WithContext(ctx).
		Find(&dtos, "id IN ? AND agency_id = ?", rawIDs, agencyID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) != len(ids) {
		return nil, errs.NewObjectNotFoundError("drafts", len(ids)-len(dtos))
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves all drafts of the given agency.
func (r *GormDraftRepository) GetAll(ctx context.Context, agencyID kernel.UUID) ([]*draft.ReadyOrder, error) {
	if err := agencyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DraftDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "agency_id = ?", agencyID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// DeleteMany removes the drafts with the given ids, scoped to the given
// agency. Fewer deleted rows than requested means a concurrent promotion or
// deletion got there first, reported as ConcurrencyConflictError.
func (r *GormDraftRepository) DeleteMany(ctx context.Context, agencyID kernel.UUID, ids []kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	rawIDs, err := rawUUIDs(ids)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id IN ? AND agency_id = ?", rawIDs, agencyID.Bytes()).
		Delete(&DraftDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected != int64(len(ids)) {
		return errs.NewConcurrencyConflictError("drafts", len(ids))
	}

	return nil
}

func rawUUIDs(ids []kernel.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}
	return rawIDs, nil
}

func toDomainSlice(dtos []DraftDTO) ([]*draft.ReadyOrder, error) {
	drafts := make([]*draft.ReadyOrder, 0, len(dtos))
	for _, dto := range dtos {
		readyOrder, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, readyOrder)
	}
	return drafts, nil
}
