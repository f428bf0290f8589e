package service

import (
	"fmt"
	"log"

	"mikes-grill/grill-svc/internal/domain"
)

var DefaultHours = []domain.RestaurantHours{
	{DayOfWeek: "Monday", OpenTime: "11:00 AM", CloseTime: "9:00 PM", SortOrder: 1},
	{DayOfWeek: "Tuesday", OpenTime: "11:00 AM", CloseTime: "9:00 PM", SortOrder: 2},
	{DayOfWeek: "Wednesday", OpenTime: "11:00 AM", CloseTime: "9:00 PM", SortOrder: 3},
	{DayOfWeek: "Thursday", OpenTime: "11:00 AM", CloseTime: "9:00 PM", SortOrder: 4},
	{DayOfWeek: "Friday", OpenTime: "11:00 AM", CloseTime: "10:00 PM", SortOrder: 5},
	{DayOfWeek: "Saturday", OpenTime: "11:00 AM", CloseTime: "10:00 PM", SortOrder: 6},
	{DayOfWeek: "Sunday", Closed: true, SortOrder: 7},
}

type HoursService struct {
	repo HoursRepository
}

func NewHoursService(repo HoursRepository) *HoursService {
	return &HoursService{repo: repo}
}

func (s *HoursService) List() ([]domain.RestaurantHours, error) {
	return s.repo.ListHours()
}

// SaveAll applies the open/close/closed fields of every row that carries a known id
// and returns the full ordered set as stored. Either every row is saved or none is.
func (s *HoursService) SaveAll(hours []domain.RestaurantHours) ([]domain.RestaurantHours, error) {
	rows := make([]domain.RestaurantHours, 0, len(hours))
	for _, row := range hours {
		if row.ID <= 0 {
			continue
		}
		row.Normalize()
		rows = append(rows, row)
	}
	if len(rows) > 0 {
		if err := s.repo.UpdateHoursBatch(rows); err != nil {
			return nil, fmt.Errorf("save hours: %w", err)
		}
	}
	return s.repo.ListHours()
}

func (s *HoursService) Update(id int, hours *domain.RestaurantHours) (*domain.RestaurantHours, error) {
	hours.ID = id
	hours.Normalize()
	rows, err := s.repo.UpdateHours(hours)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	all, err := s.repo.ListHours()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *HoursService) EnsureDefaults() error {
	count, err := s.repo.CountHours()
	if err != nil {
		return fmt.Errorf("count hours: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, day := range DefaultHours {
		row := day
		if err := s.repo.InsertHours(&row); err != nil {
			return fmt.Errorf("seed hours for %s: %w", day.DayOfWeek, err)
		}
	}
	log.Printf("Seeded default opening hours")
	return nil
}

var _ HoursServiceInterface = (*HoursService)(nil)
