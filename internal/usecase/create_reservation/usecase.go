package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	customerRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/customer"
	reservationRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/reservation"
)

// User-facing outcome messages
const (
	msgConfirmed          = "Reservation confirmed"
	msgOutOfHours         = "Reservation must be within opening hours"
	msgMissingName        = "Name is required for new customers"
	msgNoAvailability     = "Sorry, no tables are available for this time slot"
	msgDuplicateUpdated   = "Your existing reservation was updated with the new party size"
	msgDuplicateUnchanged = "You already have a reservation for this time"
)

// На проигранной гонке за стол выбор повторяется один раз
// с исключением занятого стола, затем отдаем no_availability
const maxTableAttempts = 2

// UseCase use case создания брони: проверка доступности, поиск или создание
// клиента, дедупликация и вставка брони в одной сериализуемой транзакции
type UseCase struct {
	customers    CustomerRepository
	reservations ReservationRepository
	availability AvailabilityService
	txManager    TransactionManager
	recorder     OutcomeRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customers CustomerRepository,
	reservations ReservationRepository,
	availability AvailabilityService,
	txManager TransactionManager,
	recorder OutcomeRecorder,
	logger Logger,
) *UseCase {
	if recorder == nil {
		recorder = NoopRecorder{}
	}
	return &UseCase{
		customers:    customers,
		reservations: reservations,
		availability: availability,
		txManager:    txManager,
		recorder:     recorder,
		logger:       logger,
	}
}

// Execute выполняет попытку бронирования.
// Ошибка возвращается только при сбое хранилища или невалидном входе;
// все ожидаемые бизнес-исходы приходят как Outcome.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Outcome, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if req.DurationMinutes == 0 {
		req.DurationMinutes = uc.availability.DefaultDuration()
	}

	uc.logger.Info("CreateReservation: email=%s, start=%s, guests=%d, duration=%d",
		req.Email, req.Start.Format(time.RFC3339), req.GuestCount, req.DurationMinutes)

	// 1. Часы работы (не требует обращения к БД)
	if !uc.availability.WithinOperatingHours(req.Start, req.DurationMinutes) {
		uc.logger.Warn("CreateReservation: out of opening hours: start=%s", req.Start.Format(time.RFC3339))
		return uc.finish(&Outcome{Code: OutcomeOutOfHours, Message: msgOutOfHours}), nil
	}

	// 2. Попытки бронирования. Нарушение уникального индекса
	// (table_number, reservation_date) означает проигранную гонку:
	// транзакция уже откачена, повторяем выбор стола без этого стола.
	var exclude []int
	for attempt := 1; attempt <= maxTableAttempts; attempt++ {
		outcome, lostTable, err := uc.tryReserve(ctx, req, exclude)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrTableTaken) && lostTable > 0 {
				uc.logger.Warn("CreateReservation: lost race for table %d (attempt %d), retrying",
					lostTable, attempt)
				exclude = append(exclude, lostTable)
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return uc.finish(outcome), nil
	}

	uc.logger.Warn("CreateReservation: no table after %d attempts: email=%s, start=%s",
		maxTableAttempts, req.Email, req.Start.Format(time.RFC3339))
	return uc.finish(uc.noAvailability(ctx, req)), nil
}

// tryReserve одна попытка бронирования в сериализуемой транзакции.
// Возвращает номер стола, за который проиграна гонка, если вставка
// упала на уникальном индексе.
func (uc *UseCase) tryReserve(ctx context.Context, req *Request, exclude []int) (*Outcome, int, error) {
	var outcome *Outcome
	var chosenTable int

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Ищем клиента по email
		cust, err := uc.customers.GetByEmail(txCtx, req.Email)
		if err != nil && !errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return fmt.Errorf("get customer: %w", err)
		}

		// 2.2. Новый клиент обязан представиться
		if cust == nil && req.Name == "" {
			outcome = &Outcome{Code: OutcomeMissingCustomerName, Message: msgMissingName}
			return nil
		}

		// 2.3. Дедупликация: у клиента уже есть активная бронь
		// ровно на это время
		if cust != nil {
			dup, err := uc.reservations.GetActiveByCustomerAndStart(txCtx, cust.ID, req.Start)
			if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("duplicate check: %w", err)
			}
			if dup != nil {
				outcome, err = uc.resolveDuplicate(txCtx, req, cust, dup)
				return err
			}
		}

		// 2.4. Подбираем стол
		tableNumber, found, err := uc.availability.FindAvailableTable(
			txCtx, req.Start, req.DurationMinutes, req.GuestCount, exclude...)
		if err != nil {
			return fmt.Errorf("find table: %w", err)
		}
		if !found {
			outcome = uc.noAvailability(txCtx, req)
			return nil
		}
		chosenTable = tableNumber

		// 2.5. Создаем клиента в той же транзакции, что и бронь:
		// либо фиксируются оба, либо ни одного
		if cust == nil {
			cust, err = uc.customers.Create(txCtx, &domain.Customer{
				Name:             req.Name,
				Email:            req.Email,
				Phone:            req.Phone,
				NewsletterSignup: req.NewsletterSignup,
			})
			if err != nil {
				return fmt.Errorf("create customer: %w", err)
			}
		}

		// 2.6. Вставляем бронь; уникальный индекс это последний рубеж
		// против двойного бронирования
		res, err := uc.reservations.Create(txCtx, &domain.Reservation{
			CustomerID:      cust.ID,
			TableNumber:     tableNumber,
			ReservationDate: req.Start,
			DurationMinutes: req.DurationMinutes,
			GuestCount:      req.GuestCount,
			Status:          domain.StatusConfirmed,
		})
		if err != nil {
			return err
		}

		outcome = &Outcome{
			Code:        OutcomeConfirmed,
			Message:     msgConfirmed,
			Reservation: snapshot(res, cust),
		}
		return nil
	})

	if err != nil {
		return nil, chosenTable, err
	}

	return outcome, 0, nil
}

// resolveDuplicate обрабатывает повторный запрос на то же время.
// Другой размер компании: обновляем бронь на месте. Идентичный запрос: no-op.
func (uc *UseCase) resolveDuplicate(ctx context.Context, req *Request, cust *domain.Customer, dup *domain.Reservation) (*Outcome, error) {
	if dup.GuestCount == req.GuestCount {
		uc.logger.Info("CreateReservation: duplicate unchanged: reservation id=%d", dup.ID)
		return &Outcome{
			Code:        OutcomeDuplicateUnchanged,
			Message:     msgDuplicateUnchanged,
			Reservation: snapshot(dup, cust),
		}, nil
	}

	// Новая компания должна помещаться за уже назначенный стол
	fits, err := uc.availability.TableFitsParty(ctx, dup.TableNumber, req.GuestCount)
	if err != nil {
		return nil, fmt.Errorf("check table capacity: %w", err)
	}
	if !fits {
		uc.logger.Warn("CreateReservation: table %d cannot fit %d guests for reservation id=%d",
			dup.TableNumber, req.GuestCount, dup.ID)
		return uc.noAvailability(ctx, req), nil
	}

	if err := uc.reservations.UpdateGuestCount(ctx, dup.ID, req.GuestCount); err != nil {
		return nil, fmt.Errorf("update guest count: %w", err)
	}

	uc.logger.Info("CreateReservation: duplicate updated: reservation id=%d, guests %d -> %d",
		dup.ID, dup.GuestCount, req.GuestCount)

	dup.GuestCount = req.GuestCount
	return &Outcome{
		Code:        OutcomeDuplicateUpdated,
		Message:     msgDuplicateUpdated,
		Reservation: snapshot(dup, cust),
	}, nil
}

// noAvailability формирует отказ со списком альтернативных слотов на ту же дату
func (uc *UseCase) noAvailability(ctx context.Context, req *Request) *Outcome {
	outcome := &Outcome{Code: OutcomeNoAvailability, Message: msgNoAvailability}

	slots, err := uc.availability.AvailableTimeSlots(ctx, req.Start, req.GuestCount, req.DurationMinutes)
	if err != nil {
		// Альтернативы это best effort, отказ отдаем и без них
		uc.logger.Warn("CreateReservation: failed to collect alternative slots: %v", err)
		return outcome
	}

	outcome.AlternativeSlots = slots
	return outcome
}

func (uc *UseCase) finish(outcome *Outcome) *Outcome {
	uc.recorder.IncOutcome(string(outcome.Code))
	return outcome
}

func snapshot(res *domain.Reservation, cust *domain.Customer) *ReservationData {
	return &ReservationData{
		ReservationID:   res.ID,
		Email:           cust.Email,
		Name:            cust.Name,
		Phone:           cust.Phone,
		TableNumber:     res.TableNumber,
		Date:            res.ReservationDate,
		DurationMinutes: res.DurationMinutes,
		GuestCount:      res.GuestCount,
		Status:          string(res.Status),
	}
}
