package controllers

import (
	"net/http"
	"testing"

	"github.com/yigit/facultyhub/internal/app/models/dto"
)

func TestStatisticsEndpoints(t *testing.T) {
	s := newTestServer(t)
	for i := 1; i <= 3; i++ {
		s.create(t, facultyBody(i, 4))
	}
	other := facultyBody(4, 4)
	other["department"] = "Civil Engineering"
	other["designation"] = "Professor"
	s.create(t, other)

	code, env := s.do(t, http.MethodGet, "/stats/overview", nil)
	if code != http.StatusOK {
		t.Fatalf("overview: status %d", code)
	}
	var overview dto.StatsOverview
	decodeData(t, env, &overview)
	want := dto.StatsOverview{TotalFaculty: 4, Professors: 1, AssistantProfessors: 3}
	if overview != want {
		t.Errorf("overview = %+v, want %+v", overview, want)
	}

	code, env = s.do(t, http.MethodGet, "/stats/departments", nil)
	if code != http.StatusOK {
		t.Fatalf("departments: status %d", code)
	}
	var points []dto.ChartPoint
	decodeData(t, env, &points)
	if len(points) != 2 || points[0].Label != "Civil Engineering" || points[0].Count != 1 || points[1].Count != 3 {
		t.Errorf("points = %+v", points)
	}
}
