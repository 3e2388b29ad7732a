package models

import (
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

// Request модели

// FacilityRequest поля площадки при создании и полной перезаписи
type FacilityRequest struct {
	Name          string  `json:"name"`
	Price         string  `json:"price"`
	Description   string  `json:"description"`
	Address       string  `json:"address"`
	ImageFilename *string `json:"imageFilename,omitempty"` // имя загруженного файла; nil - изображение не меняется
}

// Response модели

// FacilityResponse ответ с данными площадки
type FacilityResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	ImageRef    *string   `json:"imageRef,omitempty"`
	Address     string    `json:"address"`
	OwnerID     *int64    `json:"ownerId,omitempty"`
	OwnerName   *string   `json:"ownerName,omitempty"`
	IsFavorite  bool      `json:"isFavorite"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromDomainFacility конвертирует domain.Facility в FacilityResponse
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}
	return &FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Price:       f.Price,
		Description: f.Description,
		ImageRef:    f.ImageRef,
		Address:     f.Address,
		OwnerID:     f.OwnerID,
		OwnerName:   f.OwnerName,
		IsFavorite:  f.IsFavorite,
		CreatedAt:   f.CreatedAt,
	}
}

// FromDomainFacilityList конвертирует список площадок
func FromDomainFacilityList(list []*domain.Facility) []*FacilityResponse {
	result := make([]*FacilityResponse, 0, len(list))
	for _, f := range list {
		result = append(result, FromDomainFacility(f))
	}
	return result
}
