package check_availability

import "time"

// Request модель запроса занятости площадки на дату
type Request struct {
	FacilityID int64
	Date       time.Time
}

// Response занятые слоты; результат справочный и устаревает сразу после чтения
type Response struct {
	FacilityID    int64    `json:"facilityId"`
	Date          string   `json:"date"`
	OccupiedSlots []string `json:"occupiedSlots"`
}
