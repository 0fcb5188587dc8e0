package availability

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// Policy политика выбора стола
type Policy string

const (
	// PolicyCapacity стол подбирается по вместимости: среди активных столов
	// с capacity >= размера компании берется первый свободный, в порядке
	// возрастания вместимости (наименьший достаточный стол)
	PolicyCapacity Policy = "capacity"

	// PolicyUniform все столы фиксированного пула 1..N взаимозаменяемы,
	// вместимость не учитывается, свободный стол выбирается случайно
	PolicyUniform Policy = "uniform"
)

// Config настройки сервиса доступности.
// PoolSize используется только политикой PolicyUniform.
type Config struct {
	Policy                 Policy
	PoolSize               int
	SlotStepMinutes        int
	DefaultDurationMinutes int
}

// Service проверяет доступность: часы работы, свободные столы, сетка слотов
type Service struct {
	reservations    ReservationRepository
	tables          TableRepository
	policy          Policy
	poolSize        int
	slotStep        int
	defaultDuration int
	rnd             *rand.Rand
	logger          Logger
}

// NewService создает новый сервис доступности
func NewService(
	reservations ReservationRepository,
	tables TableRepository,
	cfg Config,
	logger Logger,
) *Service {
	return &Service{
		reservations:    reservations,
		tables:          tables,
		policy:          cfg.Policy,
		poolSize:        cfg.PoolSize,
		slotStep:        cfg.SlotStepMinutes,
		defaultDuration: cfg.DefaultDurationMinutes,
		rnd:             rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:          logger,
	}
}

// DefaultDuration длительность брони по умолчанию в минутах
func (s *Service) DefaultDuration() int {
	return s.defaultDuration
}

// WithinOperatingHours проверяет, что бронь укладывается в часы работы
func (s *Service) WithinOperatingHours(start time.Time, durationMinutes int) bool {
	return domain.WithinOperatingHours(start, durationMinutes)
}

// FindAvailableTable ищет свободный стол на окно [start, start+duration).
// Возвращает (0, false, nil), когда свободных столов нет: это не ошибка.
// excludeTables исключает столы, на которых вставка уже проиграла гонку.
func (s *Service) FindAvailableTable(
	ctx context.Context,
	start time.Time,
	durationMinutes int,
	guestCount int,
	excludeTables ...int,
) (int, bool, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	overlapping, err := s.reservations.ListActiveOverlapping(ctx, start, end)
	if err != nil {
		return 0, false, fmt.Errorf("availability: list overlapping reservations: %w", err)
	}

	occupied := occupiedTables(overlapping, start, end)
	for _, n := range excludeTables {
		occupied[n] = true
	}

	var table int
	var found bool
	switch s.policy {
	case PolicyUniform:
		table, found, err = s.pickUniform(occupied)
	default:
		table, found, err = s.pickByCapacity(ctx, guestCount, occupied)
	}
	if err != nil {
		return 0, false, err
	}

	if !found {
		s.logger.Warn("FindAvailableTable: no free table for %d guests at %s (policy=%s)",
			guestCount, start.Format(time.RFC3339), s.policy)
		return 0, false, nil
	}

	s.logger.Info("FindAvailableTable: table %d selected for %d guests at %s (policy=%s)",
		table, guestCount, start.Format(time.RFC3339), s.policy)
	return table, true, nil
}

// pickByCapacity first-fit по возрастанию вместимости
func (s *Service) pickByCapacity(ctx context.Context, guestCount int, occupied map[int]bool) (int, bool, error) {
	tables, err := s.tables.ListActive(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("availability: list active tables: %w", err)
	}

	for _, t := range tables {
		if !t.Fits(guestCount) {
			continue
		}
		if occupied[t.TableNumber] {
			continue
		}
		return t.TableNumber, true, nil
	}

	return 0, false, nil
}

// pickUniform равновероятный выбор из свободных столов пула 1..poolSize
func (s *Service) pickUniform(occupied map[int]bool) (int, bool, error) {
	free := make([]int, 0, s.poolSize)
	for n := 1; n <= s.poolSize; n++ {
		if !occupied[n] {
			free = append(free, n)
		}
	}

	if len(free) == 0 {
		return 0, false, nil
	}

	return free[s.rnd.Intn(len(free))], true, nil
}

// TableFitsParty проверяет, что стол вмещает компанию.
// Для политики uniform вместимость не учитывается.
func (s *Service) TableFitsParty(ctx context.Context, tableNumber, guestCount int) (bool, error) {
	if s.policy == PolicyUniform {
		return true, nil
	}

	t, err := s.tables.GetByNumber(ctx, tableNumber)
	if err != nil {
		return false, fmt.Errorf("availability: get table %d: %w", tableNumber, err)
	}

	return t.Fits(guestCount), nil
}

// AvailableTimeSlots перечисляет свободные слоты на дату.
// Слоты идут с настроенным шагом от открытия до (закрытие - duration)
// включительно; слот остается в списке, если хотя бы один стол свободен.
// Результат отсортирован хронологически.
func (s *Service) AvailableTimeSlots(
	ctx context.Context,
	date time.Time,
	guestCount int,
	durationMinutes int,
) ([]time.Time, error) {
	opening := domain.OpeningAt(date)
	closing := domain.ClosingAt(date)
	lastStart := closing.Add(-time.Duration(durationMinutes) * time.Minute)

	if lastStart.Before(opening) {
		return []time.Time{}, nil
	}

	// Один запрос на весь день, дальше проверки в памяти
	dayReservations, err := s.reservations.ListActiveOverlapping(ctx, opening, closing)
	if err != nil {
		return nil, fmt.Errorf("availability: list day reservations: %w", err)
	}

	var candidates []*domain.Table
	if s.policy != PolicyUniform {
		candidates, err = s.tables.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("availability: list active tables: %w", err)
		}
	}

	slots := make([]time.Time, 0)
	for slot := opening; !slot.After(lastStart); slot = slot.Add(time.Duration(s.slotStep) * time.Minute) {
		slotEnd := slot.Add(time.Duration(durationMinutes) * time.Minute)
		occupied := occupiedTables(dayReservations, slot, slotEnd)

		if s.hasFreeTable(candidates, guestCount, occupied) {
			slots = append(slots, slot)
		}
	}

	return slots, nil
}

func (s *Service) hasFreeTable(tables []*domain.Table, guestCount int, occupied map[int]bool) bool {
	if s.policy == PolicyUniform {
		// Считаем только столы пула: брони на номера вне 1..poolSize
		// (другая политика, урезанный пул) слот не занимают
		used := 0
		for n := range occupied {
			if n >= 1 && n <= s.poolSize {
				used++
			}
		}
		return used < s.poolSize
	}

	for _, t := range tables {
		if t.Fits(guestCount) && !occupied[t.TableNumber] {
			return true
		}
	}
	return false
}

// occupiedTables номера столов, занятых активными бронями в окне [start, end)
func occupiedTables(reservations []*domain.Reservation, start, end time.Time) map[int]bool {
	occupied := make(map[int]bool)
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if r.OverlapsWindow(start, end) {
			occupied[r.TableNumber] = true
		}
	}
	return occupied
}
