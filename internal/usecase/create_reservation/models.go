package create_reservation

import "time"

// Request модель запроса на создание брони
type Request struct {
	Email            string     // Email клиента (ключ идентичности)
	Name             string     // Имя (обязательно для новых клиентов)
	Phone            *string    // Телефон (опционально)
	Start            time.Time  // Дата и время начала брони
	GuestCount       int        // Размер компании
	DurationMinutes  int        // Длительность, 0 = значение по умолчанию
	NewsletterSignup bool       // Подписка на рассылку при создании клиента
}

// OutcomeCode код исхода попытки бронирования
type OutcomeCode string

const (
	// OutcomeConfirmed бронь создана
	OutcomeConfirmed OutcomeCode = "confirmed"

	// OutcomeOutOfHours запрошенное время вне часов работы
	OutcomeOutOfHours OutcomeCode = "out_of_hours"

	// OutcomeMissingCustomerName новый клиент без имени
	OutcomeMissingCustomerName OutcomeCode = "missing_customer_name"

	// OutcomeNoAvailability нет свободного стола
	OutcomeNoAvailability OutcomeCode = "no_availability"

	// OutcomeDuplicateUpdated у клиента уже есть бронь на это время,
	// размер компании обновлен
	OutcomeDuplicateUpdated OutcomeCode = "duplicate_updated"

	// OutcomeDuplicateUnchanged у клиента уже есть идентичная бронь,
	// ничего не изменено
	OutcomeDuplicateUnchanged OutcomeCode = "duplicate_unchanged"
)

// Outcome исход попытки бронирования.
// Бизнес-отказы это данные, а не ошибки: вызывающий всегда получает
// заполненный Outcome, ошибка возвращается только при сбое хранилища.
type Outcome struct {
	Code             OutcomeCode
	Message          string
	Reservation      *ReservationData // заполнен для confirmed и duplicate_*
	AlternativeSlots []time.Time      // заполнен для no_availability
}

// Success сообщает, считается ли исход успешным для клиента
func (o *Outcome) Success() bool {
	switch o.Code {
	case OutcomeConfirmed, OutcomeDuplicateUpdated, OutcomeDuplicateUnchanged:
		return true
	default:
		return false
	}
}

// ReservationData снапшот созданной (или существующей) брони
type ReservationData struct {
	ReservationID   int64
	Email           string
	Name            string
	Phone           *string
	TableNumber     int
	Date            time.Time
	DurationMinutes int
	GuestCount      int
	Status          string
}
