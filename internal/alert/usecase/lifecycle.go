package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"go.uber.org/zap"
)

// transition describes one forward move of the alert state machine. apply
// mutates a copy of the loaded alert; nothing is written unless the copy
// passes CheckInvariants and the versioned UPDATE matches.
type transition struct {
	breweryID       string
	id              string
	expectedVersion *int64
	target          model.AlertStatus
	apply           func(a *model.LotAlert, now time.Time)
}

func (uc *alertUseCase) Acknowledge(ctx context.Context, input *dto.AcknowledgeInput) (*model.LotAlert, error) {
	notes := optional(input.Notes)
	return uc.transition(ctx, transition{
		breweryID:       input.BreweryID,
		id:              input.ID,
		expectedVersion: input.ExpectedVersion,
		target:          model.AlertStatusAcknowledged,
		apply: func(a *model.LotAlert, now time.Time) {
			a.AcknowledgedDate = &now
			if notes != nil {
				a.InternalNotes = notes
			}
		},
	})
}

func (uc *alertUseCase) Resolve(ctx context.Context, input *dto.ResolveInput) (*model.LotAlert, error) {
	if strings.TrimSpace(input.ResolutionNotes) == "" {
		uc.metrics.Transition(string(model.AlertStatusResolved), "validation")
		return nil, apperr.Validation("resolution_notes", "resolution notes are required to resolve an alert")
	}
	notes := input.ResolutionNotes

	return uc.transition(ctx, transition{
		breweryID:       input.BreweryID,
		id:              input.ID,
		expectedVersion: input.ExpectedVersion,
		target:          model.AlertStatusResolved,
		apply: func(a *model.LotAlert, now time.Time) {
			// Resolving straight from active still records when it was first handled.
			if a.AcknowledgedDate == nil {
				a.AcknowledgedDate = &now
			}
			a.ResolvedDate = &now
			a.ResolutionNotes = &notes
		},
	})
}

func (uc *alertUseCase) Archive(ctx context.Context, input *dto.ArchiveInput) (*model.LotAlert, error) {
	return uc.transition(ctx, transition{
		breweryID:       input.BreweryID,
		id:              input.ID,
		expectedVersion: input.ExpectedVersion,
		target:          model.AlertStatusArchived,
		apply:           func(*model.LotAlert, time.Time) {},
	})
}

func (uc *alertUseCase) transition(ctx context.Context, t transition) (*model.LotAlert, error) {
	label := string(t.target)

	current, err := uc.GetAlert(ctx, t.breweryID, t.id)
	if err != nil {
		uc.metrics.Transition(label, outcomeOf(err))
		return nil, err
	}

	if t.expectedVersion != nil && *t.expectedVersion != current.Version {
		uc.metrics.Transition(label, "conflict")
		return nil, apperr.Conflict("lot alert %s is at version %d, expected %d; refetch and retry",
			current.ID, current.Version, *t.expectedVersion)
	}

	if !current.Status.CanTransitionTo(t.target) {
		uc.metrics.Transition(label, "invalid_transition")
		return nil, apperr.InvalidTransition(string(current.Status),
			"cannot move lot alert %s from %s to %s", current.ID, current.Status, t.target)
	}

	now := uc.nowFn()
	next := *current
	next.Status = t.target
	next.UpdatedAt = now
	t.apply(&next, now)

	if err := next.CheckInvariants(); err != nil {
		uc.metrics.Transition(label, "error")
		uc.logger.Error("lot alert transition would break invariants",
			zap.String("lot_alert_id", current.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.repo.ApplyTransition(ctx, &next, current.Version); err != nil {
		if errors.Is(err, alert.ErrVersionMismatch) {
			uc.metrics.Transition(label, "conflict")
			uc.logger.Warn("lot alert changed concurrently",
				zap.String("lot_alert_id", current.ID),
				zap.String("target_status", label),
			)
			return nil, apperr.Conflict("lot alert %s was modified concurrently; refetch and retry", current.ID)
		}
		uc.metrics.Transition(label, "error")
		return nil, err
	}

	uc.metrics.Transition(label, "ok")
	uc.logger.Info("Lot alert transitioned",
		zap.String("lot_alert_id", next.ID),
		zap.String("lot_number", next.LotNumber),
		zap.String("from", string(current.Status)),
		zap.String("to", label),
		zap.Int64("version", next.Version),
	)
	return &next, nil
}

func outcomeOf(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return "not_found"
	case apperr.KindConflict:
		return "conflict"
	default:
		return "error"
	}
}
