package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

// Creator is the part of the faculty service seeding needs
type Creator interface {
	Create(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
}

var _ Creator = (services.FacultyService)(nil)

// Result counts what a seed run did
type Result struct {
	Created int
	Skipped int
}

type sample struct {
	first, last    string
	email          string
	employeeID     string
	department     models.Department
	designation    models.Designation
	joined         string
	teaching       int
	industry       int
	journals       int
	conferences    int
	books          int
	status         models.Status
	qualifications []string
}

var samples = []sample{
	{"Anita", "Sharma", "anita.sharma@college.edu", "CSE001", models.DeptComputerScience, models.DesignationAssistantProfessor, "2019-07-15", 6, 2, 4, 3, 0, models.StatusActive, []string{"Ph.D", "M.Tech"}},
	{"Ravi", "Kumar", "ravi.kumar@college.edu", "ME014", models.DeptMechanical, models.DesignationProfessor, "2012-01-09", 18, 5, 22, 9, 2, models.StatusActive, []string{"Ph.D", "M.E"}},
	{"Meera", "Iyer", "meera.iyer@college.edu", "ECE007", models.DeptElectronics, models.DesignationAssociateProfessor, "2022-06-01", 9, 0, 8, 6, 1, models.StatusActive, []string{"Ph.D"}},
	{"Arjun", "Nair", "arjun.nair@college.edu", "IT021", models.DeptInformationTech, models.DesignationAssistantProfessor, "2024-08-19", 2, 3, 1, 1, 0, models.StatusActive, []string{"M.Tech", "B.Tech"}},
	{"Kavya", "Reddy", "kavya.reddy@college.edu", "CE003", models.DeptCivil, models.DesignationAssociateProfessor, "2016-03-28", 12, 1, 7, 2, 0, models.StatusOnLeave, []string{"Ph.D", "M.Tech"}},
	{"Farhan", "Qureshi", "farhan.qureshi@college.edu", "BT005", models.DeptBiotechnology, models.DesignationProfessor, "2010-11-02", 20, 0, 30, 12, 3, models.StatusActive, []string{"Ph.D", "M.Sc"}},
}

// CreateDefaultData creates the sample faculty through the regular create
// path. Records that already exist are skipped, so it can run repeatedly.
func CreateDefaultData(ctx context.Context, svc Creator, lgr zerolog.Logger) (Result, error) {
	lgr.Info().Int("samples", len(samples)).Msg("Creating default faculty data...")

	var (
		res      Result
		finalErr error
	)
	for _, s := range samples {
		_, err := svc.Create(ctx, s.request())
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, apperrors.ErrConflict):
			res.Skipped++
		default:
			lgr.Error().Err(err).Str("employeeId", s.employeeID).Msg("Error creating default faculty")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("Default faculty data processed")
	return res, finalErr
}

func (s sample) request() *dto.CreateFacultyRequest {
	joined, _ := time.Parse("2006-01-02", s.joined)
	return &dto.CreateFacultyRequest{
		Name:           models.PersonName{FirstName: s.first, LastName: s.last},
		Email:          s.email,
		EmployeeID:     s.employeeID,
		Department:     string(s.department),
		Designation:    string(s.designation),
		DateOfJoining:  &dto.Date{Time: joined},
		Qualifications: s.qualifications,
		Experience: &dto.ExperienceRequest{
			Teaching: intPtr(s.teaching),
			Industry: intPtr(s.industry),
		},
		Publications: &dto.PublicationsRequest{
			Journals:    intPtr(s.journals),
			Conferences: intPtr(s.conferences),
			Books:       intPtr(s.books),
		},
		Phone:  "+91-98450" + s.employeeID[len(s.employeeID)-3:] + "00",
		Status: string(s.status),
	}
}

func intPtr(v int) *int { return &v }
