package discharges

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"caremind-service/internal/app/config"
	"caremind-service/internal/app/contracts"
	"caremind-service/internal/app/models"
	"caremind-service/internal/app/services/core/roles"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/dto/requests"
	"caremind-service/internal/pkg/dto/responses"
	"caremind-service/internal/pkg/exceptions"
	"caremind-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	dischargeUsecaseInstance contracts.DischargeUsecase
	onceDischargeUsecase     sync.Once
)

type dischargeUsecase struct {
	PatientRepository contracts.PatientRepository
	UserRepository    contracts.UserRepository
	FanoutService     contracts.FanoutService
	LockerService     contracts.LockerService
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewDischargeUsecase(
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	fanoutService contracts.FanoutService,
	lockerService contracts.LockerService,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DischargeUsecase {
	onceDischargeUsecase.Do(func() {
		dischargeUsecaseInstance = &dischargeUsecase{
			PatientRepository: patientRepository,
			UserRepository:    userRepository,
			FanoutService:     fanoutService,
			LockerService:     lockerService,
			RedisRepository:   redisRepository,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return dischargeUsecaseInstance
}

func (uc *dischargeUsecase) CreateDischargeRequest(ctx context.Context, session *models.Session, patientID string, request *requests.CreateDischargeRequest) (*responses.DischargeRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dischargeUsecase.CreateDischargeRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if !roles.CanCreateDischargeRequest(session.Role) {
		return nil, exceptions.ErrRoleNotPermitted(nil)
	}

	if strings.TrimSpace(request.Reason) == "" {
		return nil, exceptions.ErrDischargeReasonRequired(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	dischargeRequest := &models.DischargeRequest{
		ID:          uuid.NewString(),
		RequestedBy: session.UserID,
		RequestedAt: time.Now(),
		Reason:      strings.TrimSpace(request.Reason),
		Status:      constvars.DischargeRequestStatusPending,
	}

	matched, err := uc.PatientRepository.AppendDischargeRequest(ctx, patientID, dischargeRequest)
	if err != nil {
		return nil, err
	}
	if !matched {
		// The conditional push refused: either the patient vanished or a
		// pending request already exists. A read disambiguates.
		current, err := uc.PatientRepository.FindByID(ctx, patientID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrPatientNotExist(nil)
		}
		return nil, exceptions.ErrDischargeRequestAlreadyPending(nil)
	}

	uc.invalidatePendingCount(ctx)
	uc.FanoutService.NotifyDischargeRequestCreated(ctx, patient, dischargeRequest)

	response := utils.MapDischargeRequestToResponse(patientID, dischargeRequest)
	return &response, nil
}

func (uc *dischargeUsecase) ListPendingDischargeRequests(ctx context.Context, session *models.Session) ([]responses.PendingDischargeRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dischargeUsecase.ListPendingDischargeRequests called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if !roles.CanViewPendingDischargeRequests(session.Role) {
		return nil, exceptions.ErrRoleNotPermitted(nil)
	}

	patients, err := uc.PatientRepository.FindAllWithPendingDischargeRequests(ctx)
	if err != nil {
		return nil, err
	}

	requesters := make(map[string]*models.User)
	result := make([]responses.PendingDischargeRequest, 0, len(patients))
	for i := range patients {
		patient := &patients[i]
		pending := patient.PendingDischargeRequest()
		if pending == nil {
			continue
		}

		requester, ok := requesters[pending.RequestedBy]
		if !ok {
			requester, err = uc.UserRepository.FindByID(ctx, pending.RequestedBy)
			if err != nil {
				return nil, err
			}
			requesters[pending.RequestedBy] = requester
		}

		annotated := responses.PendingDischargeRequest{
			DischargeRequest: utils.MapDischargeRequestToResponse(patient.ID, pending),
			PatientName:      patient.FullName,
			PatientTherapist: patient.AssignedTherapist,
		}
		if requester != nil {
			annotated.RequestedByName = requester.FullName
			annotated.RequestedByRole = requester.Role
		}
		result = append(result, annotated)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].RequestedAt.Before(result[j].RequestedAt)
	})

	uc.RedisRepository.Set(ctx, constvars.RedisPendingCountKey, len(result), time.Hour)

	return result, nil
}

func (uc *dischargeUsecase) ReviewDischargeRequest(ctx context.Context, session *models.Session, patientID, dischargeRequestID string, request *requests.ReviewDischargeRequest) (*responses.DischargeRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dischargeUsecase.ReviewDischargeRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDischargeRequestIDKey, dischargeRequestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if !roles.CanReviewDischargeRequest(session.Role) {
		return nil, exceptions.ErrRoleNotPermitted(nil)
	}

	if request.Status != constvars.DischargeDecisionApproved && request.Status != constvars.DischargeDecisionDenied {
		return nil, exceptions.ErrDischargeDecisionInvalid(nil)
	}

	// The redis lock keeps racing reviewers from both reaching the store;
	// the conditional update below stays the real guard in case the lock
	// expires mid-review.
	lockKey := fmt.Sprintf(constvars.RedisReviewLockKeyFormat, patientID, dischargeRequestID)
	lockExpiration := time.Duration(uc.InternalConfig.App.ReviewLockExpiredTimeInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrDischargeReviewLockHeld(nil)
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	dischargeRequest := patient.FindDischargeRequest(dischargeRequestID)
	if dischargeRequest == nil {
		return nil, exceptions.ErrDischargeRequestNotExist(nil)
	}
	if !dischargeRequest.IsPending() {
		return nil, exceptions.ErrDischargeRequestNotPending(nil)
	}

	now := time.Now()
	review := &models.DischargeRequest{
		Status:      request.Status,
		ReviewedBy:  session.UserID,
		ReviewedAt:  &now,
		ReviewNotes: request.ReviewNotes,
	}
	approve := request.Status == constvars.DischargeDecisionApproved

	matched, err := uc.PatientRepository.ReviewDischargeRequest(ctx, patientID, dischargeRequestID, review, approve)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Lost the compare-and-swap: another reviewer landed first.
		return nil, exceptions.ErrDischargeRequestNotPending(nil)
	}

	dischargeRequest.Status = review.Status
	dischargeRequest.ReviewedBy = review.ReviewedBy
	dischargeRequest.ReviewedAt = review.ReviewedAt
	dischargeRequest.ReviewNotes = review.ReviewNotes

	uc.invalidatePendingCount(ctx)
	uc.FanoutService.NotifyDischargeRequestReviewed(ctx, patient, dischargeRequest)

	response := utils.MapDischargeRequestToResponse(patientID, dischargeRequest)
	return &response, nil
}

func (uc *dischargeUsecase) invalidatePendingCount(ctx context.Context) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisPendingCountKey); err != nil {
		uc.Log.Warn("dischargeUsecase failed to invalidate pending count cache", zap.Error(err))
	}
}
