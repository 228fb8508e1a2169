package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

// translateError maps store failures onto domain error kinds. Domain errors pass through.
func translateError(op string, entity domain.Entity, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrReference) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrValidation) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &domain.ReferenceError{Entity: entity, Reason: "violates a foreign key"}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		conflict := &domain.ConflictError{Entity: entity}
		if entity == domain.EntityUser {
			conflict.Field = "email"
		}
		return conflict
	default:
		return &domain.StoreError{Op: op, Err: err}
	}
}

func findByID(tx *gorm.DB, dest interface{}, entity domain.Entity, id uint64) error {
	err := tx.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: entity, ID: id}
	}
	return err
}

func requireReference(tx *gorm.DB, model interface{}, entity domain.Entity, field string, id uint64) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &domain.ReferenceError{Field: field, Entity: entity, IDs: []uint64{id}}
	}
	return nil
}

// blockIfReferenced refuses to remove id while rows of model still point at it through column.
func blockIfReferenced(tx *gorm.DB, model interface{}, column string, entity domain.Entity, id uint64, reason string) error {
	var count int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &domain.ReferenceError{Entity: entity, IDs: []uint64{id}, Reason: reason}
	}
	return nil
}

// connectable loads the rows behind ids so they can be linked. Unknown ids fail with ReferenceError.
func connectable[M any](tx *gorm.DB, entity domain.Entity, field string, ids []uint64, idOf func(M) uint64) ([]M, error) {
	ids = uniqueIDs(ids)
	rows := make([]M, 0, len(ids))
	if len(ids) == 0 {
		return rows, nil
	}

	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	found := make(map[uint64]struct{}, len(rows))
	for _, row := range rows {
		found[idOf(row)] = struct{}{}
	}
	var missing []uint64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.ReferenceError{Field: field, Entity: entity, IDs: missing}
	}

	return rows, nil
}

// replaceAssociation sets the relation to exactly rows. An empty set clears it.
func replaceAssociation[M any](tx *gorm.DB, owner interface{}, name string, rows []M) error {
	association := tx.Model(owner).Association(name)
	if len(rows) == 0 {
		return association.Clear()
	}
	return association.Replace(rows)
}

func uniqueIDs(ids []uint64) []uint64 {
	if ids == nil {
		return nil
	}
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func userID(row userModel) uint64 { return row.ID }

func tagID(row tagModel) uint64 { return row.ID }
