package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
)

// StatisticsService defines read-only aggregate queries over Active faculty
type StatisticsService interface {
	Overview(ctx context.Context) (*dto.StatsOverview, error)
	DepartmentDistribution(ctx context.Context) ([]dto.ChartPoint, error)
}

type statisticsServiceImpl struct {
	store repositories.FacultyStore
}

// NewStatisticsService creates a new statistics service instance
func NewStatisticsService(store repositories.FacultyStore) StatisticsService {
	return &statisticsServiceImpl{store: store}
}

func activeFilter() repositories.FacultyFilter {
	return repositories.FacultyFilter{Status: string(models.StatusActive)}
}

// Overview returns dashboard counters; designations without records report 0
func (s *statisticsServiceImpl) Overview(ctx context.Context) (*dto.StatsOverview, error) {
	total, err := s.store.Count(ctx, activeFilter())
	if err != nil {
		return nil, fmt.Errorf("error counting faculty: %w", err)
	}

	ratified := true
	ratifiedFilter := activeFilter()
	ratifiedFilter.Ratified = &ratified
	ratifiedCount, err := s.store.Count(ctx, ratifiedFilter)
	if err != nil {
		return nil, fmt.Errorf("error counting ratified faculty: %w", err)
	}

	groups, err := s.store.CountBy(ctx, repositories.GroupByDesignation, activeFilter())
	if err != nil {
		return nil, fmt.Errorf("error grouping faculty by designation: %w", err)
	}
	byDesignation := make(map[models.Designation]int64, len(groups))
	for _, g := range groups {
		byDesignation[models.Designation(g.Key)] = g.Count
	}

	return &dto.StatsOverview{
		TotalFaculty:        total,
		RatifiedFaculty:     ratifiedCount,
		Professors:          byDesignation[models.DesignationProfessor],
		AssociateProfessors: byDesignation[models.DesignationAssociateProfessor],
		AssistantProfessors: byDesignation[models.DesignationAssistantProfessor],
	}, nil
}

// DepartmentDistribution returns the number of Active records per department, ordered by label
func (s *statisticsServiceImpl) DepartmentDistribution(ctx context.Context) ([]dto.ChartPoint, error) {
	groups, err := s.store.CountBy(ctx, repositories.GroupByDepartment, activeFilter())
	if err != nil {
		return nil, fmt.Errorf("error grouping faculty by department: %w", err)
	}

	points := make([]dto.ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, dto.ChartPoint{Label: g.Key, Count: g.Count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })
	return points, nil
}
