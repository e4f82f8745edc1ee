package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/freightbooks/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/freightbooks/freight_ledger_app/internal/middleware"
	"github.com/freightbooks/freight_ledger_app/internal/utils/accounting"
)

// ledgerService is the single gateway for trip transaction mutations. Every
// create and delete goes through here so the POD gate is enforced in one
// place and the balance summary is recomputed from the full lists after each
// change.
type ledgerService struct {
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	tripRepo       portsrepo.TripRepositoryFacade
	chargeTypeRepo portsrepo.ChargeTypeRepositoryFacade
	locker         portssvc.TripLockerSvc
}

// NewLedgerService creates a new LedgerService. The locker may be nil, in
// which case concurrent mutations of the same trip run unserialized and the
// last write wins.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, tripRepo portsrepo.TripRepositoryFacade, chargeTypeRepo portsrepo.ChargeTypeRepositoryFacade, locker portssvc.TripLockerSvc) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:     ledgerRepo,
		tripRepo:       tripRepo,
		chargeTypeRepo: chargeTypeRepo,
		locker:         locker,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) withTripLock(ctx context.Context, tripID string, fn func(ctx context.Context) error) error {
	if s.locker == nil {
		return fn(ctx)
	}
	return s.locker.WithTripLock(ctx, tripID, fn)
}

func (s *ledgerService) loadTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("trip %s: %w", tripID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find trip %s: %w", tripID, err)
	}
	return trip, nil
}

// recomputeBalances folds the trip's complete transaction lists into a fresh
// summary. Nothing is cached between mutations.
func (s *ledgerService) recomputeBalances(ctx context.Context, trip domain.Trip) (*domain.TripBalances, error) {
	advances, err := s.ledgerRepo.ListAdvances(ctx, trip.TripID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances for trip %s: %w", trip.TripID, err)
	}
	charges, err := s.ledgerRepo.ListCharges(ctx, trip.TripID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges for trip %s: %w", trip.TripID, err)
	}
	payments, err := s.ledgerRepo.ListBalancePayments(ctx, trip.TripID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance payments for trip %s: %w", trip.TripID, err)
	}

	balances := accounting.ComputeTripBalances(trip, advances, charges, payments)
	return &balances, nil
}

// ListAdvances retrieves a trip's advances, optionally filtered by side.
func (s *ledgerService) ListAdvances(ctx context.Context, tripID string, params dto.ListTransactionsParams) ([]domain.Advance, error) {
	if _, err := s.loadTrip(ctx, tripID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListAdvances(ctx, tripID, params.Side)
}

// ListCharges retrieves a trip's charges, optionally filtered by side.
func (s *ledgerService) ListCharges(ctx context.Context, tripID string, params dto.ListTransactionsParams) ([]domain.Charge, error) {
	if _, err := s.loadTrip(ctx, tripID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListCharges(ctx, tripID, params.Side)
}

// ListBalancePayments retrieves a trip's balance payments, optionally filtered by side.
func (s *ledgerService) ListBalancePayments(ctx context.Context, tripID string, params dto.ListTransactionsParams) ([]domain.BalancePayment, error) {
	if _, err := s.loadTrip(ctx, tripID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListBalancePayments(ctx, tripID, params.Side)
}

// CreateAdvance records an advance and returns it with the recomputed summary.
func (s *ledgerService) CreateAdvance(ctx context.Context, tripID string, req dto.CreateAdvanceRequest, creatorUserID string) (*dto.AdvanceMutationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	advance := domain.Advance{
		AdvanceID:    uuid.NewString(),
		TripID:       trip.TripID,
		Side:         req.Side,
		Amount:       req.Amount,
		ReceivedDate: req.ReceivedDate,
		PaymentMode:  req.PaymentMode,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := advance.Validate(); err != nil {
		return nil, err
	}

	var balances *domain.TripBalances
	err = s.withTripLock(ctx, trip.TripID, func(ctx context.Context) error {
		if err := s.ledgerRepo.SaveAdvance(ctx, advance); err != nil {
			return fmt.Errorf("failed to save advance: %w", err)
		}
		balances, err = s.recomputeBalances(ctx, *trip)
		return err
	})
	if err != nil {
		logger.Error("Failed to create advance", slog.String("trip_id", trip.TripID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Advance created", slog.String("advance_id", advance.AdvanceID), slog.String("trip_id", trip.TripID), slog.String("side", string(advance.Side)))
	return &dto.AdvanceMutationResponse{
		Advance:  dto.ToAdvanceResponse(&advance),
		Balances: dto.ToTripBalancesResponse(*balances),
	}, nil
}

// DeleteAdvance removes an advance and returns the recomputed summary.
func (s *ledgerService) DeleteAdvance(ctx context.Context, tripID string, advanceID string, requestingUserID string) (*domain.TripBalances, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	advance, err := s.ledgerRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find advance %s: %w", advanceID, err)
	}
	if advance.TripID != trip.TripID {
		return nil, fmt.Errorf("advance %s: %w", advanceID, apperrors.ErrNotFound)
	}

	var balances *domain.TripBalances
	err = s.withTripLock(ctx, trip.TripID, func(ctx context.Context) error {
		if err := s.ledgerRepo.DeleteAdvance(ctx, advanceID); err != nil {
			return fmt.Errorf("failed to delete advance %s: %w", advanceID, err)
		}
		balances, err = s.recomputeBalances(ctx, *trip)
		return err
	})
	if err != nil {
		logger.Error("Failed to delete advance", slog.String("advance_id", advanceID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Advance deleted", slog.String("advance_id", advanceID), slog.String("trip_id", trip.TripID), slog.String("deleted_by", requestingUserID))
	return balances, nil
}

// CreateCharge records a charge and returns it with the recomputed summary.
func (s *ledgerService) CreateCharge(ctx context.Context, tripID string, req dto.CreateChargeRequest, creatorUserID string) (*dto.ChargeMutationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	charge := domain.Charge{
		ChargeID:     uuid.NewString(),
		TripID:       trip.TripID,
		Side:         req.Side,
		ChargeTypeID: req.ChargeTypeID,
		Operation:    req.Operation,
		Amount:       req.Amount,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := charge.Validate(); err != nil {
		return nil, err
	}

	// The category must exist before the charge references it.
	if _, err := s.chargeTypeRepo.FindChargeTypeByID(ctx, req.ChargeTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: chargeTypeID %s is not a registered charge type", apperrors.ErrValidation, req.ChargeTypeID)
		}
		return nil, fmt.Errorf("failed to find charge type %s: %w", req.ChargeTypeID, err)
	}

	var balances *domain.TripBalances
	err = s.withTripLock(ctx, trip.TripID, func(ctx context.Context) error {
		if err := s.ledgerRepo.SaveCharge(ctx, charge); err != nil {
			return fmt.Errorf("failed to save charge: %w", err)
		}
		balances, err = s.recomputeBalances(ctx, *trip)
		return err
	})
	if err != nil {
		logger.Error("Failed to create charge", slog.String("trip_id", trip.TripID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Charge created", slog.String("charge_id", charge.ChargeID), slog.String("trip_id", trip.TripID), slog.String("side", string(charge.Side)), slog.String("operation", string(charge.Operation)))
	return &dto.ChargeMutationResponse{
		Charge:   dto.ToChargeResponse(&charge),
		Balances: dto.ToTripBalancesResponse(*balances),
	}, nil
}

// DeleteCharge removes a charge and returns the recomputed summary.
func (s *ledgerService) DeleteCharge(ctx context.Context, tripID string, chargeID string, requestingUserID string) (*domain.TripBalances, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	charge, err := s.ledgerRepo.FindChargeByID(ctx, chargeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find charge %s: %w", chargeID, err)
	}
	if charge.TripID != trip.TripID {
		return nil, fmt.Errorf("charge %s: %w", chargeID, apperrors.ErrNotFound)
	}

	var balances *domain.TripBalances
	err = s.withTripLock(ctx, trip.TripID, func(ctx context.Context) error {
		if err := s.ledgerRepo.DeleteCharge(ctx, chargeID); err != nil {
			return fmt.Errorf("failed to delete charge %s: %w", chargeID, err)
		}
		balances, err = s.recomputeBalances(ctx, *trip)
		return err
	})
	if err != nil {
		logger.Error("Failed to delete charge", slog.String("charge_id", chargeID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Charge deleted", slog.String("charge_id", chargeID), slog.String("trip_id", trip.TripID), slog.String("deleted_by", requestingUserID))
	return balances, nil
}

// CreateBalancePayment records a balance payment and returns it with the
// recomputed summary. Supplier-side payments hit the POD gate.
func (s *ledgerService) CreateBalancePayment(ctx context.Context, tripID string, req dto.CreateBalancePaymentRequest, creatorUserID string) (*dto.BalancePaymentMutationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := domain.BalancePayment{
		BalancePaymentID: uuid.NewString(),
		TripID:           trip.TripID,
		Side:             req.Side,
		Amount:           req.Amount,
		ReceivedDate:     req.ReceivedDate,
		PaymentMode:      req.PaymentMode,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if !accounting.CanAddBalancePayment(*trip, payment.Side) {
		logger.Warn("Supplier balance payment blocked by POD gate", slog.String("trip_id", trip.TripID), slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("%w: trip %s has no POD uploaded", apperrors.ErrPodRequired, trip.TripID)
	}

	var balances *domain.TripBalances
	err = s.withTripLock(ctx, trip.TripID, func(ctx context.Context) error {
		// The gate is rechecked under the lock so a concurrent POD clear
		// cannot slip a supplier payment through.
		current, err := s.loadTrip(ctx, trip.TripID)
		if err != nil {
			return err
		}
		if !accounting.CanAddBalancePayment(*current, payment.Side) {
			return fmt.Errorf("%w: trip %s has no POD uploaded", apperrors.ErrPodRequired, current.TripID)
		}
		if err := s.ledgerRepo.SaveBalancePayment(ctx, payment); err != nil {
			return fmt.Errorf("failed to save balance payment: %w", err)
		}
		balances, err = s.recomputeBalances(ctx, *current)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrPodRequired) {
			logger.Error("Failed to create balance payment", slog.String("trip_id", trip.TripID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Balance payment created", slog.String("balance_payment_id", payment.BalancePaymentID), slog.String("trip_id", trip.TripID), slog.String("side", string(payment.Side)))
	return &dto.BalancePaymentMutationResponse{
		BalancePayment: dto.ToBalancePaymentResponse(&payment),
		Balances:       dto.ToTripBalancesResponse(*balances),
	}, nil
}

// DeleteBalancePayment removes a balance payment and returns the recomputed
// summary. Deletion is not gated: removing a supplier payment is always a
// step back towards a larger remaining balance.
func (s *ledgerService) DeleteBalancePayment(ctx context.Context, tripID string, balancePaymentID string, requestingUserID string) (*domain.TripBalances, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	payment, err := s.ledgerRepo.FindBalancePaymentByID(ctx, balancePaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find balance payment %s: %w", balancePaymentID, err)
	}
	if payment.TripID != trip.TripID {
		return nil, fmt.Errorf("balance payment %s: %w", balancePaymentID, apperrors.ErrNotFound)
	}

	var balances *domain.TripBalances
	err = s.withTripLock(ctx, trip.TripID, func(ctx context.Context) error {
		if err := s.ledgerRepo.DeleteBalancePayment(ctx, balancePaymentID); err != nil {
			return fmt.Errorf("failed to delete balance payment %s: %w", balancePaymentID, err)
		}
		balances, err = s.recomputeBalances(ctx, *trip)
		return err
	})
	if err != nil {
		logger.Error("Failed to delete balance payment", slog.String("balance_payment_id", balancePaymentID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Balance payment deleted", slog.String("balance_payment_id", balancePaymentID), slog.String("trip_id", trip.TripID), slog.String("deleted_by", requestingUserID))
	return balances, nil
}
