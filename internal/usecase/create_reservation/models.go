package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64     // ID пользователя из сессии
	FacilityID int64     // ID площадки
	Date       time.Time // Дата бронирования (без времени)
	TimeSlot   string    // Метка слота, например "18:00"
	Contact    string    // Контактный телефон
	Message    *string   // Сообщение владельцу (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	FacilityID   int64     `json:"facilityId"`
	FacilityName string    `json:"facilityName"` // Снимок названия на момент бронирования
	BookingDate  string    `json:"bookingDate"`  // "2025-06-01"
	TimeSlot     string    `json:"timeSlot"`
	Contact      string    `json:"contact"`
	Message      *string   `json:"message,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
