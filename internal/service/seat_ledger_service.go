package service

import (
	"context"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"

	"go.uber.org/zap"
)

type SeatLedgerService interface {
	// 座位圖：過期的保留在讀取時即視為 available
	GetSeatMap(ctx context.Context, showtimeID int) ([]model.SeatMapEntry, error)
	// 每個座位各自獨立保留，不會因其他座位失敗而回滾；autoRelease 為 true 時部分失敗會釋放已成功的座位
	Hold(ctx context.Context, showtimeID int, seatIDs []int, userID int, autoRelease bool) (*model.HoldOutcome, error)
	Release(ctx context.Context, showtimeID int, seatIDs []int, userID int) (int64, error)
	// 回傳實際轉為 booked 的座位數，呼叫端須與請求數量比對
	ConfirmBooked(ctx context.Context, showtimeID int, seatIDs []int, bookingID string, holderID int) (int64, error)
	ReclaimExpiredHolds(ctx context.Context) (int64, error)
}

type SeatLedgerServiceImpl struct {
	showtimeRepository   repository.ShowtimeRepository
	seatRepository       repository.SeatRepository
	seatStatusRepository repository.SeatStatusRepository
	catalog              SeatCatalogService
	opts                 options
}

func NewSeatLedgerService(
	showtimeRepository repository.ShowtimeRepository,
	seatRepository repository.SeatRepository,
	seatStatusRepository repository.SeatStatusRepository,
	catalog SeatCatalogService,
	opts ...Option,
) SeatLedgerService {
	return &SeatLedgerServiceImpl{
		showtimeRepository:   showtimeRepository,
		seatRepository:       seatRepository,
		seatStatusRepository: seatStatusRepository,
		catalog:              catalog,
		opts:                 newOptions(opts),
	}
}

func (s *SeatLedgerServiceImpl) GetSeatMap(ctx context.Context, showtimeID int) ([]model.SeatMapEntry, error) {
	showtime, err := s.showtimeRepository.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	seats, err := s.catalog.ListActiveSeats(ctx, showtime.TheaterID)
	if err != nil {
		return nil, err
	}

	statuses, err := s.seatStatusRepository.ListByShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	bySeat := make(map[int]*model.SeatStatus, len(statuses))
	for _, st := range statuses {
		bySeat[st.SeatID] = st
	}

	now := s.opts.now()
	entries := make([]model.SeatMapEntry, 0, len(seats))
	for _, seat := range seats {
		entry := model.SeatMapEntry{
			SeatID: seat.ID,
			Row:    seat.RowLabel,
			Number: seat.SeatNumber,
			Type:   seat.Type,
			X:      seat.PosX,
			Y:      seat.PosY,
			Status: model.SeatStateAvailable,
			Price:  PriceSeat(showtime.Prices, seat.Type),
		}

		if st, ok := bySeat[seat.ID]; ok {
			entry.Status = st.EffectiveState(now)
			if entry.Status.IsHold() {
				entry.ReservedBy = st.ReservedBy
				entry.ExpiresAt = st.ReservationExpires
			}
			if (entry.Status.IsHold() || entry.Status == model.SeatStateBooked) && st.Price > 0 {
				entry.Price = st.Price
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *SeatLedgerServiceImpl) validateSeatIDs(seatIDs []int) ([]int, error) {
	ids := model.UniqueIDs(seatIDs)
	if len(ids) == 0 {
		return nil, apperrors.ErrInvalidInput
	}
	if len(ids) > s.opts.maxSeats {
		return nil, apperrors.ErrTooManySeats
	}
	return ids, nil
}

func (s *SeatLedgerServiceImpl) Hold(ctx context.Context, showtimeID int, seatIDs []int, userID int, autoRelease bool) (*model.HoldOutcome, error) {
	ids, err := s.validateSeatIDs(seatIDs)
	if err != nil {
		return nil, err
	}

	showtime, err := s.showtimeRepository.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	now := s.opts.now()
	if !showtime.IsBookable(now) {
		return nil, apperrors.ErrShowtimeNotBookable
	}

	seats, err := s.seatRepository.FindByIDs(ctx, showtime.TheaterID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*model.Seat, len(seats))
	for _, seat := range seats {
		byID[seat.ID] = seat
	}

	expiresAt := now.Add(s.opts.holdDuration)
	outcome := &model.HoldOutcome{Results: make([]model.HoldResult, 0, len(ids))}

	for _, id := range ids {
		seat, ok := byID[id]
		if !ok {
			outcome.Results = append(outcome.Results, model.HoldResult{SeatID: id, Reason: model.HoldReasonNotFound})
			continue
		}
		if !seat.IsActive {
			outcome.Results = append(outcome.Results, model.HoldResult{SeatID: id, Reason: model.HoldReasonUnavailable})
			continue
		}

		price := PriceSeat(showtime.Prices, seat.Type)
		held, err := s.seatStatusRepository.Hold(ctx, repository.HoldParams{
			ShowtimeID: showtimeID,
			SeatID:     id,
			UserID:     userID,
			Now:        now,
			ExpiresAt:  expiresAt,
			Price:      price,
		})
		if err != nil {
			s.releaseHeld(showtimeID, outcome.Succeeded(), userID)
			return nil, err
		}

		if held {
			exp := expiresAt
			outcome.Results = append(outcome.Results, model.HoldResult{
				SeatID:    id,
				Success:   true,
				ExpiresAt: &exp,
				Price:     price,
			})
			continue
		}

		outcome.Results = append(outcome.Results, model.HoldResult{
			SeatID: id,
			Reason: s.rejectReason(ctx, showtimeID, id),
		})
	}

	succeeded := outcome.Succeeded()
	outcome.Partial = len(succeeded) > 0 && len(succeeded) < len(outcome.Results)

	if autoRelease && outcome.Partial {
		released, err := s.seatStatusRepository.Release(ctx, showtimeID, succeeded, userID)
		if err != nil {
			logger.WithComponent("service").Warn("auto release after partial hold failed",
				zap.Int("showtime_id", showtimeID),
				zap.Ints("seat_ids", succeeded),
				zap.Error(err),
			)
		} else {
			outcome.ReleasedSeatIDs = succeeded
			logger.WithComponent("service").Info("partial hold auto released",
				zap.Int("showtime_id", showtimeID),
				zap.Int64("released", released),
			)
		}
	}

	return outcome, nil
}

// releaseHeld 保留中途出錯時放回本次已取得的座位，呼叫端只會收到錯誤
func (s *SeatLedgerServiceImpl) releaseHeld(showtimeID int, seatIDs []int, userID int) {
	if len(seatIDs) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), compensationTimeout)
	defer cancel()

	if _, err := s.seatStatusRepository.Release(ctx, showtimeID, seatIDs, userID); err != nil {
		logger.WithComponent("service").Error("release seats after failed hold failed",
			zap.Int("showtime_id", showtimeID),
			zap.Ints("seat_ids", seatIDs),
			zap.Error(err),
		)
	}
}

// rejectReason 只用於回報原因；是否取得座位已由條件寫入決定
func (s *SeatLedgerServiceImpl) rejectReason(ctx context.Context, showtimeID int, seatID int) model.HoldReason {
	statuses, err := s.seatStatusRepository.FindBySeats(ctx, showtimeID, []int{seatID})
	if err != nil || len(statuses) == 0 {
		return model.HoldReasonHeld
	}
	switch statuses[0].Status {
	case model.SeatStateBooked:
		return model.HoldReasonBooked
	case model.SeatStateBlocked, model.SeatStateMaintenance:
		return model.HoldReasonUnavailable
	default:
		return model.HoldReasonHeld
	}
}

func (s *SeatLedgerServiceImpl) Release(ctx context.Context, showtimeID int, seatIDs []int, userID int) (int64, error) {
	ids, err := s.validateSeatIDs(seatIDs)
	if err != nil {
		return 0, err
	}
	return s.seatStatusRepository.Release(ctx, showtimeID, ids, userID)
}

func (s *SeatLedgerServiceImpl) ConfirmBooked(ctx context.Context, showtimeID int, seatIDs []int, bookingID string, holderID int) (int64, error) {
	return s.seatStatusRepository.ConfirmBooked(ctx, showtimeID, model.UniqueIDs(seatIDs), bookingID, holderID)
}

func (s *SeatLedgerServiceImpl) ReclaimExpiredHolds(ctx context.Context) (int64, error) {
	return s.seatStatusRepository.ReclaimExpired(ctx, s.opts.now())
}
