package domain

import (
	"time"

	"github.com/opencampus/campus/pkg/idx"
)

// Course is a protected resource. InstructorID is the owning identity, set
// from the verified caller at creation and never transferred.
type Course struct {
	ID           idx.ID
	InstructorID idx.ID
	Name         string
	Description  *string
	CreatedAt    time.Time
}

// CourseUpdate carries a partial update: nil fields are left unchanged.
type CourseUpdate struct {
	Name        *string
	Description *string
}

// Empty reports whether the update would change nothing.
func (u CourseUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil
}
