package models

// Department is one of the engineering departments a faculty member belongs to
type Department string

const (
	DeptComputerScience Department = "Computer Science Engineering"
	DeptInformationTech Department = "Information Technology"
	DeptElectronics     Department = "Electronics and Communication Engineering"
	DeptElectrical      Department = "Electrical Engineering"
	DeptMechanical      Department = "Mechanical Engineering"
	DeptCivil           Department = "Civil Engineering"
	DeptChemical        Department = "Chemical Engineering"
	DeptBiotechnology   Department = "Biotechnology"
)

var departments = []Department{
	DeptComputerScience,
	DeptInformationTech,
	DeptElectronics,
	DeptElectrical,
	DeptMechanical,
	DeptCivil,
	DeptChemical,
	DeptBiotechnology,
}

// AllDepartments returns the legal department values in display order
func AllDepartments() []Department {
	out := make([]Department, len(departments))
	copy(out, departments)
	return out
}

// IsValid reports whether d is one of the known departments
func (d Department) IsValid() bool {
	for _, known := range departments {
		if d == known {
			return true
		}
	}
	return false
}

// Designation is the academic rank; it selects the eligibility thresholds
type Designation string

const (
	DesignationProfessor          Designation = "Professor"
	DesignationAssociateProfessor Designation = "Associate Professor"
	DesignationAssistantProfessor Designation = "Assistant Professor"
)

// AllDesignations returns the legal designation values
func AllDesignations() []Designation {
	return []Designation{
		DesignationProfessor,
		DesignationAssociateProfessor,
		DesignationAssistantProfessor,
	}
}

// IsValid reports whether d is one of the known designations
func (d Designation) IsValid() bool {
	switch d {
	case DesignationProfessor, DesignationAssociateProfessor, DesignationAssistantProfessor:
		return true
	}
	return false
}

// Status is the employment status of a faculty member
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusOnLeave  Status = "On Leave"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}
	return false
}
