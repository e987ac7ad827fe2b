package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/opencampus/campus/internal/course/domain"
	"github.com/opencampus/campus/internal/course/store"
	"github.com/opencampus/campus/pkg/idx"
)

type coursesRepo struct {
	db *sql.DB
}

func (r *coursesRepo) CreateCourse(ctx context.Context, c domain.Course) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO courses (id, instructor_id, course_name, course_description, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID.String(),
		c.InstructorID.String(),
		c.Name,
		mapOptionalString(c.Description),
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (r *coursesRepo) GetCourseByID(ctx context.Context, id idx.ID) (domain.Course, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, instructor_id, course_name, course_description, created_at
		FROM courses WHERE id = ?`, id.String())
	return scanCourse(row)
}

func (r *coursesRepo) ListCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, instructor_id, course_name, course_description, created_at
		FROM courses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var courses []domain.Course
	for rows.Next() {
		course, err := scanCourseRow(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// UpdateCourse leaves columns untouched when the corresponding field is nil.
func (r *coursesRepo) UpdateCourse(ctx context.Context, id idx.ID, update domain.CourseUpdate) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE courses SET
			course_name        = COALESCE(?, course_name),
			course_description = COALESCE(?, course_description)
		WHERE id = ?`,
		mapOptionalString(update.Name),
		mapOptionalString(update.Description),
		id.String(),
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(row *sql.Row) (domain.Course, error) {
	course, err := scanCourseRow(row)
	if err != nil {
		return domain.Course{}, mapNotFound(err)
	}
	return course, nil
}

func scanCourseRow(s scanner) (domain.Course, error) {
	var (
		c           domain.Course
		id          string
		instructor  string
		description sql.NullString
		createdAt   string
	)
	if err := s.Scan(&id, &instructor, &c.Name, &description, &createdAt); err != nil {
		return domain.Course{}, err
	}

	c.ID = idx.ID(id)
	c.InstructorID = idx.ID(instructor)
	if description.Valid {
		c.Description = &description.String
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		c.CreatedAt = t
	}
	return c, nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
