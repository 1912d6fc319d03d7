package syncqueue

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/AlekSi/pointer"
	"dispatch/internal/entities"
	storage "dispatch/internal/repository"
	"dispatch/internal/service/claim"
	"dispatch/internal/service/order"
	"dispatch/internal/service/outcome"
)

// Service reconciles driver actions recorded offline against current server
// state. Replay goes through the same claim/state-machine/outcome entry
// points as online calls, so the online invariants are enforced once, not
// duplicated here.
type Service struct {
	repository   Repository
	orders       OrderProvider
	claims       ClaimService
	stateMachine OrderStateMachine
	outcomes     OutcomeRecorder
	txManager    TxManager
	retrier      retrier
	maxBatch     int
}

func New(
	repository Repository,
	orders OrderProvider,
	claims ClaimService,
	stateMachine OrderStateMachine,
	outcomes OutcomeRecorder,
	txManager TxManager,
	maxBatch int,
) *Service {
	return &Service{
		repository:   repository,
		orders:       orders,
		claims:       claims,
		stateMachine: stateMachine,
		outcomes:     outcomes,
		txManager:    txManager,
		retrier:      storage.NewStorageRetrier(),
		maxBatch:     maxBatch,
	}
}

// Reconcile replays one driver's offline entries in clientTimestamp order.
// Replay is forward-only: a conflicting entry is marked and reported, already
// applied entries are never rolled back. Resubmitting the same batch after a
// dropped acknowledgment is safe, stored entries are answered from their
// recorded outcome.
func (s *Service) Reconcile(ctx context.Context, driverID string, entries []entities.OfflineQueueEntry) ([]entities.EntryOutcome, error) {
	if !isValidDriverID(driverID) {
		return nil, ErrInvalidDriverID
	}
	if len(entries) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.maxBatch > 0 && len(entries) > s.maxBatch {
		return nil, fmt.Errorf("%w: %d entries", ErrBatchTooLarge, len(entries))
	}

	sorted := make([]entities.OfflineQueueEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ClientTimestamp.Before(sorted[j].ClientTimestamp)
	})

	outcomes := make([]entities.EntryOutcome, 0, len(sorted))
	for i := range sorted {
		entryOutcome, err := s.reconcileEntry(ctx, driverID, sorted[i])
		if err != nil {
			// Ошибка хранилища: применённые записи остаются применёнными,
			// клиент повторит остаток батча.
			return outcomes, fmt.Errorf("reconcile entry %s: %w", sorted[i].ID, err)
		}
		outcomes = append(outcomes, *entryOutcome)
	}

	return outcomes, nil
}

// Ack marks entries as acknowledged by the client, making them eligible for
// the retention purge.
func (s *Service) Ack(ctx context.Context, driverID string, entryIDs []string) (int64, error) {
	if !isValidDriverID(driverID) {
		return 0, ErrInvalidDriverID
	}
	if len(entryIDs) == 0 {
		return 0, ErrEmptyBatch
	}
	for _, id := range entryIDs {
		if !isValidEntryID(id) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidEntryID, id)
		}
	}

	var acked int64
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var ackErr error
		acked, ackErr = s.repository.MarkAcknowledged(ctx, driverID, entryIDs, time.Now().UTC())
		return ackErr
	})
	if err != nil {
		return 0, fmt.Errorf("acknowledge entries: %w", err)
	}
	return acked, nil
}

// PurgeAcknowledged removes acknowledged entries older than the retention
// window. Unacknowledged entries are never purged.
func (s *Service) PurgeAcknowledged(ctx context.Context, retention time.Duration) (int64, error) {
	var purged int64
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var purgeErr error
		purged, purgeErr = s.repository.DeleteAcknowledgedBefore(ctx, time.Now().UTC().Add(-retention))
		return purgeErr
	})
	if err != nil {
		return 0, fmt.Errorf("purge acknowledged entries: %w", err)
	}
	return purged, nil
}

func (s *Service) reconcileEntry(ctx context.Context, driverID string, entry entities.OfflineQueueEntry) (*entities.EntryOutcome, error) {
	if err := validateEntry(driverID, entry); err != nil {
		// Записи без валидного идемпотентного ключа не сохраняем:
		// дедуплицировать их не по чему.
		observeReconcile(entities.SyncRejected)
		return &entities.EntryOutcome{
			EntryID:    entry.ID,
			SyncStatus: entities.SyncRejected,
			Reason:     pointer.To(err.Error()),
		}, nil
	}

	existing, err := s.getEntry(ctx, entry.ID)
	switch {
	case err == nil:
		return s.replayStored(ctx, driverID, existing)
	case !errors.Is(err, ErrEntryNotFound):
		return nil, fmt.Errorf("lookup entry: %w", err)
	}

	// Транзиентный сбой ретраит транзакцию записи целиком: rollback делает
	// повтор безопасным.
	var entryOutcome *entities.EntryOutcome
	err = s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			entry.SyncStatus = entities.SyncPending
			stored, err := s.repository.Create(ctx, entry)
			if err != nil {
				return fmt.Errorf("record entry: %w", err)
			}

			entryOutcome, err = s.applyAndFinalize(ctx, driverID, stored)
			return err
		})
	})
	if err != nil {
		// Параллельный реплей того же батча успел записать entry первым:
		// отвечаем из сохранённого результата.
		if errors.Is(err, ErrEntryAlreadyRecorded) {
			stored, lookupErr := s.getEntry(ctx, entry.ID)
			if lookupErr != nil {
				return nil, fmt.Errorf("lookup racing entry: %w", lookupErr)
			}
			return s.replayStored(ctx, driverID, stored)
		}
		return nil, err
	}

	return s.withConflictSnapshot(ctx, entry.OrderID, entryOutcome)
}

func (s *Service) getEntry(ctx context.Context, entryID string) (*entities.OfflineQueueEntry, error) {
	var entry *entities.OfflineQueueEntry
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var getErr error
		entry, getErr = s.repository.GetByID(ctx, entryID)
		return getErr
	})
	return entry, err
}

// replayStored answers a resubmitted entry from its recorded outcome without
// re-executing the action. A pending record means a previous attempt crashed
// between recording and finalizing, only then is the action applied again.
func (s *Service) replayStored(ctx context.Context, driverID string, stored *entities.OfflineQueueEntry) (*entities.EntryOutcome, error) {
	if stored.SyncStatus != entities.SyncPending {
		outcomeResult := &entities.EntryOutcome{
			EntryID:    stored.ID,
			SyncStatus: stored.SyncStatus,
			Reason:     stored.FailureReason,
		}
		observeReconcile(stored.SyncStatus)
		if stored.SyncStatus == entities.SyncConflict {
			return s.withConflictSnapshot(ctx, stored.OrderID, outcomeResult)
		}
		return outcomeResult, nil
	}

	var entryOutcome *entities.EntryOutcome
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			entryOutcome, err = s.applyAndFinalize(ctx, driverID, stored)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	return s.withConflictSnapshot(ctx, stored.OrderID, entryOutcome)
}

func (s *Service) applyAndFinalize(ctx context.Context, driverID string, stored *entities.OfflineQueueEntry) (*entities.EntryOutcome, error) {
	applyErr := s.applyAction(ctx, driverID, stored)

	syncStatus, reason := classifyApply(applyErr)
	if syncStatus == "" {
		// Не бизнес-ошибка: откатываем запись вместе с действием.
		return nil, applyErr
	}

	updated, err := s.repository.Update(ctx, entities.OfflineQueueEntryModify{
		ID:            pointer.To(stored.ID),
		SyncStatus:    &syncStatus,
		FailureReason: reason,
	})
	if err != nil {
		return nil, fmt.Errorf("finalize entry: %w", err)
	}

	observeReconcile(updated.SyncStatus)
	return &entities.EntryOutcome{
		EntryID:    updated.ID,
		SyncStatus: updated.SyncStatus,
		Reason:     updated.FailureReason,
	}, nil
}

func (s *Service) applyAction(ctx context.Context, driverID string, entry *entities.OfflineQueueEntry) error {
	switch entry.ActionType {
	case entities.ActionClaim:
		_, err := s.claims.Claim(ctx, entry.OrderID, driverID, s.claims.LeaseDuration())
		return err

	case entities.ActionRelease:
		return s.claims.Release(ctx, entry.OrderID, driverID)

	case entities.ActionAdvanceStatus:
		var payload advanceStatusPayload
		if err := unmarshalPayload(entry.Payload, &payload); err != nil {
			return err
		}
		if payload.TargetStatus == "" {
			return fmt.Errorf("%w: target_status is required", ErrMalformedPayload)
		}
		_, err := s.stateMachine.Transition(ctx, entry.OrderID, entities.OrderStatusType(payload.TargetStatus), driverID, payload.Reason)
		return err

	case entities.ActionAttachProof:
		var payload attachProofPayload
		if err := unmarshalPayload(entry.Payload, &payload); err != nil {
			return err
		}
		_, err := s.outcomes.AttachProof(ctx, entry.OrderID, driverID, payload.ArtifactURL, payload.Note)
		return err

	case entities.ActionReportProblem:
		var payload reportProblemPayload
		if err := unmarshalPayload(entry.Payload, &payload); err != nil {
			return err
		}
		_, err := s.outcomes.ReportProblem(ctx, entry.OrderID, driverID, payload.Description)
		return err

	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, entry.ActionType)
	}
}

// withConflictSnapshot attaches the authoritative order state to a conflict
// outcome so the client UI can refresh instead of guessing.
func (s *Service) withConflictSnapshot(ctx context.Context, orderID string, entryOutcome *entities.EntryOutcome) (*entities.EntryOutcome, error) {
	if entryOutcome.SyncStatus != entities.SyncConflict {
		return entryOutcome, nil
	}

	var snapshot *entities.Order
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var getErr error
		snapshot, getErr = s.orders.GetByID(ctx, orderID)
		return getErr
	})
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return entryOutcome, nil
		}
		return nil, fmt.Errorf("conflict snapshot for order %s: %w", orderID, err)
	}

	entryOutcome.Order = snapshot
	return entryOutcome, nil
}

// classifyApply sorts an apply error into the entry's final sync status.
// Empty status means a storage failure that should abort reconciliation.
func classifyApply(err error) (entities.SyncStatusType, *string) {
	if err == nil {
		return entities.SyncApplied, nil
	}

	reason := pointer.To(err.Error())
	switch {
	case errors.Is(err, claim.ErrAlreadyClaimed),
		errors.Is(err, claim.ErrNotClaimable),
		errors.Is(err, claim.ErrLockExpired),
		errors.Is(err, claim.ErrNotOwner),
		errors.Is(err, claim.ErrOrderNotFound),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrNotOwner),
		errors.Is(err, order.ErrLockExpired),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, outcome.ErrNotPermitted),
		errors.Is(err, outcome.ErrOrderNotFound):
		return entities.SyncConflict, reason

	case errors.Is(err, ErrMalformedPayload),
		errors.Is(err, ErrUnknownAction),
		errors.Is(err, claim.ErrInvalidOrderID),
		errors.Is(err, claim.ErrInvalidDriverID),
		errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, outcome.ErrInvalidOrderID),
		errors.Is(err, outcome.ErrMissingArtifact),
		errors.Is(err, outcome.ErrMissingDescription):
		return entities.SyncRejected, reason

	default:
		return "", nil
	}
}
