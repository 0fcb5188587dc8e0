package get_available_slots

import "time"

// Request модель запроса на получение свободных слотов
type Request struct {
	Date            time.Time // Дата (время игнорируется)
	GuestCount      int       // Размер компании
	DurationMinutes int       // Длительность, 0 = значение по умолчанию
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time   // Дата, на которую запрашивались слоты
	GuestCount      int         // Размер компании
	DurationMinutes int         // Длительность брони
	Slots           []time.Time // Свободные слоты, хронологически
}
