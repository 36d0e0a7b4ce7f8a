package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/jmoiron/sqlx"
)

const alertColumns = `
        id, brewery_id, lot_number, severity, status, title, description, alert_type,
        supplier_name, supplier_reference, affected_batches, recommended_action, source_url,
        documents, alert_date, acknowledged_date, internal_notes, resolved_date, resolution_notes,
        expiration_date, version, updated_at`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) GetByID(ctx context.Context, breweryID, id string) (*model.LotAlert, error) {
	query := "SELECT" + alertColumns + " FROM lot_alerts WHERE brewery_id = ? AND id = ?"

	var a model.LotAlert
	if err := r.DB.GetContext(ctx, &a, r.DB.Rebind(query), breweryID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot alert: %w", err)
	}
	a.Normalize()
	return &a, nil
}

func (r *SQLRepository) ListByLot(ctx context.Context, breweryID, lotNumber string) ([]model.LotAlert, error) {
	query := "SELECT" + alertColumns + ` FROM lot_alerts
        WHERE brewery_id = ? AND lot_number = ?
        ORDER BY alert_date DESC, id ASC`

	alerts := []model.LotAlert{}
	if err := r.DB.SelectContext(ctx, &alerts, r.DB.Rebind(query), breweryID, lotNumber); err != nil {
		return nil, fmt.Errorf("list lot alerts: %w", err)
	}
	normalizeAll(alerts)
	return alerts, nil
}

func (r *SQLRepository) ListByLots(ctx context.Context, breweryID string, lotNumbers []string) ([]model.LotAlert, error) {
	if len(lotNumbers) == 0 {
		return []model.LotAlert{}, nil
	}

	query, args, err := sqlx.In(`
        SELECT`+alertColumns+` FROM lot_alerts
        WHERE brewery_id = ? AND lot_number IN (?)
        ORDER BY lot_number ASC, alert_date DESC
    `, breweryID, lotNumbers)
	if err != nil {
		return nil, err
	}

	alerts := []model.LotAlert{}
	if err := r.DB.SelectContext(ctx, &alerts, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list alerts for lots: %w", err)
	}
	normalizeAll(alerts)
	return alerts, nil
}

func (r *SQLRepository) Create(ctx context.Context, a *model.LotAlert) error {
	query := `
        INSERT INTO lot_alerts (
            id, brewery_id, lot_number, severity, status, title, description, alert_type,
            supplier_name, supplier_reference, affected_batches, recommended_action, source_url,
            documents, alert_date, acknowledged_date, internal_notes, resolved_date, resolution_notes,
            expiration_date, version, updated_at
        )
        VALUES (
            :id, :brewery_id, :lot_number, :severity, :status, :title, :description, :alert_type,
            :supplier_name, :supplier_reference, :affected_batches, :recommended_action, :source_url,
            :documents, :alert_date, :acknowledged_date, :internal_notes, :resolved_date, :resolution_notes,
            :expiration_date, :version, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("insert lot alert: %w", err)
	}
	return nil
}

func (r *SQLRepository) ApplyTransition(ctx context.Context, a *model.LotAlert, expectedVersion int64) error {
	query := `
        UPDATE lot_alerts SET
            status = ?,
            acknowledged_date = ?,
            internal_notes = ?,
            resolved_date = ?,
            resolution_notes = ?,
            version = version + 1,
            updated_at = ?
        WHERE brewery_id = ? AND id = ? AND version = ?
    `
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(query),
		string(a.Status),
		a.AcknowledgedDate,
		a.InternalNotes,
		a.ResolvedDate,
		a.ResolutionNotes,
		a.UpdatedAt,
		a.BreweryID, a.ID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update lot alert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update lot alert: %w", err)
	}
	if n == 0 {
		return alert.ErrVersionMismatch
	}
	a.Version = expectedVersion + 1
	return nil
}

func (r *SQLRepository) ListResolvedBefore(ctx context.Context, f *dto.ResolvedAlertFilters) ([]model.LotAlert, error) {
	query := "SELECT" + alertColumns + ` FROM lot_alerts
        WHERE status = ? AND resolved_date < ?
        ORDER BY resolved_date ASC`
	args := []interface{}{string(model.AlertStatusResolved), f.ResolvedBefore}
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	alerts := []model.LotAlert{}
	if err := r.DB.SelectContext(ctx, &alerts, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list resolved alerts: %w", err)
	}
	normalizeAll(alerts)
	return alerts, nil
}

func normalizeAll(alerts []model.LotAlert) {
	for i := range alerts {
		alerts[i].Normalize()
	}
}
