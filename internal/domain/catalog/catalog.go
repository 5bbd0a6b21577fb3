// Package catalog holds the static room-type and meal-plan tables used by pricing and by
// the reservation form selectors. A Catalog is immutable once built.
package catalog

import (
	"errors"
	"strings"

	"hotel-folio/internal/pkg/errs"
)

var (
	ErrUnknownRoomType = errors.New("unknown room type")
	ErrUnknownMealPlan = errors.New("unknown meal plan")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

type RoomType struct {
	Code         string
	Name         string
	MaxOccupancy int
}

type MealPlan struct {
	Code string
	Name string
}

type Catalog struct {
	roomTypes    []RoomType
	mealPlans    []MealPlan
	roomTypeByID map[string]int
	mealPlanByID map[string]int
}

func New(roomTypes []RoomType, mealPlans []MealPlan) (*Catalog, error) {
	c := &Catalog{
		roomTypes:    make([]RoomType, 0, len(roomTypes)),
		mealPlans:    make([]MealPlan, 0, len(mealPlans)),
		roomTypeByID: make(map[string]int, len(roomTypes)),
		mealPlanByID: make(map[string]int, len(mealPlans)),
	}

	for _, rt := range roomTypes {
		code := strings.TrimSpace(rt.Code)
		if code == "" {
			return nil, errs.Invalid(ErrInvalidCatalog, "room type with empty code")
		}
		if _, dup := c.roomTypeByID[code]; dup {
			return nil, errs.Invalid(ErrInvalidCatalog, "duplicate room type %q", code)
		}
		if rt.MaxOccupancy < 1 {
			return nil, errs.Invalid(ErrInvalidCatalog, "room type %q has no occupancy", code)
		}
		rt.Code = code
		c.roomTypeByID[code] = len(c.roomTypes)
		c.roomTypes = append(c.roomTypes, rt)
	}

	for _, mp := range mealPlans {
		code := strings.TrimSpace(mp.Code)
		if code == "" {
			return nil, errs.Invalid(ErrInvalidCatalog, "meal plan with empty code")
		}
		if _, dup := c.mealPlanByID[code]; dup {
			return nil, errs.Invalid(ErrInvalidCatalog, "duplicate meal plan %q", code)
		}
		mp.Code = code
		c.mealPlanByID[code] = len(c.mealPlans)
		c.mealPlans = append(c.mealPlans, mp)
	}

	return c, nil
}

// Default returns the hotel's standard tables.
func Default() *Catalog {
	c, err := New(
		[]RoomType{
			{Code: "STD", Name: "Standard Room", MaxOccupancy: 2},
			{Code: "DLX", Name: "Deluxe Room", MaxOccupancy: 3},
			{Code: "SUI", Name: "Suite", MaxOccupancy: 4},
			{Code: "FAM", Name: "Family Room", MaxOccupancy: 5},
		},
		[]MealPlan{
			{Code: "EP", Name: "Room Only"},
			{Code: "CP", Name: "Breakfast Included"},
			{Code: "MAP", Name: "Half Board"},
			{Code: "AP", Name: "Full Board"},
		},
	)
	if err != nil {
		panic("default catalog: " + err.Error())
	}
	return c
}

func (c *Catalog) RoomType(code string) (RoomType, error) {
	i, ok := c.roomTypeByID[code]
	if !ok {
		return RoomType{}, errs.Invalid(ErrUnknownRoomType, "room type %q", code)
	}
	return c.roomTypes[i], nil
}

func (c *Catalog) MealPlan(code string) (MealPlan, error) {
	i, ok := c.mealPlanByID[code]
	if !ok {
		return MealPlan{}, errs.Invalid(ErrUnknownMealPlan, "meal plan %q", code)
	}
	return c.mealPlans[i], nil
}

func (c *Catalog) RoomTypes() []RoomType {
	out := make([]RoomType, len(c.roomTypes))
	copy(out, c.roomTypes)
	return out
}

func (c *Catalog) MealPlans() []MealPlan {
	out := make([]MealPlan, len(c.mealPlans))
	copy(out, c.mealPlans)
	return out
}
