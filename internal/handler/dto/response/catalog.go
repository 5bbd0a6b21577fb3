package response

import (
	"hotel-folio/internal/domain/catalog"

	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	MaxOccupancy int    `json:"maxOccupancy"`
}

type MealPlanResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func FromRoomTypes(rts []catalog.RoomType) ([]RoomTypeResponse, error) {
	out := make([]RoomTypeResponse, 0, len(rts))
	if err := copier.Copy(&out, rts); err != nil {
		return nil, err
	}
	return out, nil
}

func FromMealPlans(mps []catalog.MealPlan) ([]MealPlanResponse, error) {
	out := make([]MealPlanResponse, 0, len(mps))
	if err := copier.Copy(&out, mps); err != nil {
		return nil, err
	}
	return out, nil
}
