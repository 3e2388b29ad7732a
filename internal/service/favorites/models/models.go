package models

import (
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	facilityModels "github.com/m04kA/SMC-CanchaBooking/internal/service/facilities/models"
)

// FavoriteResponse избранная площадка с датой добавления
type FavoriteResponse struct {
	ID       int64                            `json:"id"`
	AddedAt  time.Time                        `json:"addedAt"`
	Facility *facilityModels.FacilityResponse `json:"facility"`
}

// FromDomainFavorite конвертирует domain.Favorite в FavoriteResponse
func FromDomainFavorite(f *domain.Favorite) *FavoriteResponse {
	if f == nil {
		return nil
	}
	return &FavoriteResponse{
		ID:       f.ID,
		AddedAt:  f.AddedAt,
		Facility: facilityModels.FromDomainFacility(f.Facility),
	}
}

// FromDomainFavoriteList конвертирует список избранного
func FromDomainFavoriteList(list []*domain.Favorite) []*FavoriteResponse {
	result := make([]*FavoriteResponse, 0, len(list))
	for _, f := range list {
		result = append(result, FromDomainFavorite(f))
	}
	return result
}
