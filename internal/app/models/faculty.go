package models

import (
	"strings"
	"time"
)

// Faculty represents a faculty member record
type Faculty struct {
	ID                 string             `json:"id" bson:"_id"`
	Name               PersonName         `json:"name" bson:"name"`
	Email              string             `json:"email" bson:"email" validate:"required,max=255,email_pattern"`
	EmployeeID         string             `json:"employeeId" bson:"employeeId" validate:"required,max=64"`
	Department         Department         `json:"department" bson:"department" validate:"required,department"`
	Designation        Designation        `json:"designation" bson:"designation" validate:"required,designation"`
	DateOfJoining      time.Time          `json:"dateOfJoining" bson:"dateOfJoining" validate:"required"`
	Qualifications     []string           `json:"qualifications" bson:"qualifications" validate:"min=1,dive,nonblank"`
	Experience         Experience         `json:"experience" bson:"experience"`
	Publications       Publications       `json:"publications" bson:"publications"`
	Phone              string             `json:"phone" bson:"phone" validate:"required,in_phone"`
	Address            *Address           `json:"address,omitempty" bson:"address,omitempty"`
	RatificationStatus RatificationStatus `json:"ratificationStatus" bson:"ratificationStatus"`
	Status             Status             `json:"status" bson:"status" validate:"required,faculty_status"`
	Documents          []Document         `json:"documents,omitempty" bson:"documents" validate:"dive"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PersonName holds the first and last name of a faculty member
type PersonName struct {
	FirstName string `json:"firstName" bson:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required,max=50"`
}

// Experience is counted in whole years
type Experience struct {
	Teaching int `json:"teaching" bson:"teaching" validate:"gte=0"`
	Industry int `json:"industry" bson:"industry" validate:"gte=0"`
	Research int `json:"research" bson:"research" validate:"gte=0"`
}

// Publications counts published works by kind
type Publications struct {
	Journals    int `json:"journals" bson:"journals" validate:"gte=0"`
	Conferences int `json:"conferences" bson:"conferences" validate:"gte=0"`
	Books       int `json:"books" bson:"books" validate:"gte=0"`
}

// Total returns journals + conferences + books
func (p Publications) Total() int {
	return p.Journals + p.Conferences + p.Books
}

// Address is free-form and optional
type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

// RatificationStatus tracks the ratification of a faculty appointment.
// IsEligible is a cached evaluation result, recomputed on every write.
type RatificationStatus struct {
	IsRatified       bool       `json:"isRatified" bson:"isRatified"`
	RatificationDate *time.Time `json:"ratificationDate,omitempty" bson:"ratificationDate,omitempty"`
	RatifiedBy       string     `json:"ratifiedBy,omitempty" bson:"ratifiedBy,omitempty" validate:"max=255"`
	Comments         string     `json:"comments,omitempty" bson:"comments,omitempty"`
	IsEligible       bool       `json:"isEligible" bson:"isEligible"`
}

// Document is a reference to an uploaded file
type Document struct {
	Name       string    `json:"name" bson:"name" validate:"required"`
	Path       string    `json:"path" bson:"path" validate:"required"`
	UploadDate time.Time `json:"uploadDate" bson:"uploadDate"`
}

// FullName returns "first last"
func FullName(f *Faculty) string {
	if f == nil {
		return ""
	}
	return f.Name.FirstName + " " + f.Name.LastName
}

// Normalize trims and case-folds user supplied fields and fills defaults
func (f *Faculty) Normalize() {
	f.Name.FirstName = strings.TrimSpace(f.Name.FirstName)
	f.Name.LastName = strings.TrimSpace(f.Name.LastName)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.EmployeeID = strings.ToUpper(strings.TrimSpace(f.EmployeeID))
	f.Phone = strings.TrimSpace(f.Phone)

	if f.Qualifications == nil {
		f.Qualifications = []string{}
	}
	for i, q := range f.Qualifications {
		f.Qualifications[i] = strings.TrimSpace(q)
	}

	if f.Status == "" {
		f.Status = StatusActive
	}
	if f.Documents == nil {
		f.Documents = []Document{}
	}
}

// Clone returns a deep copy of f
func (f *Faculty) Clone() *Faculty {
	if f == nil {
		return nil
	}
	c := *f
	if f.Qualifications != nil {
		c.Qualifications = make([]string, len(f.Qualifications))
		copy(c.Qualifications, f.Qualifications)
	}
	if f.Documents != nil {
		c.Documents = make([]Document, len(f.Documents))
		copy(c.Documents, f.Documents)
	}
	if f.Address != nil {
		addr := *f.Address
		c.Address = &addr
	}
	if f.RatificationStatus.RatificationDate != nil {
		d := *f.RatificationStatus.RatificationDate
		c.RatificationStatus.RatificationDate = &d
	}
	return &c
}

// GroupCount is a single bucket of a grouped count
type GroupCount struct {
	Key   string `json:"key" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}
