package services

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

// memStudentRepo keeps students in memory keyed by student_id
type memStudentRepo struct {
	mu       sync.Mutex
	nextID   int64
	students map[string]*models.Student
	failOn   map[string]error
}

func newMemStudentRepo() *memStudentRepo {
	return &memStudentRepo{students: map[string]*models.Student{}, failOn: map[string]error{}}
}

func (r *memStudentRepo) sorted() []*models.Student {
	list := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r *memStudentRepo) List(ctx context.Context) ([]*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(), nil
}

func (r *memStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *memStudentRepo) Create(ctx context.Context, student *models.Student) error {
	inserted, err := r.InsertIfAbsent(ctx, student)
	if err != nil {
		return err
	}
	if !inserted {
		return apperrors.ErrStudentIDAlreadyExists
	}
	return nil
}

func (r *memStudentRepo) Update(ctx context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, s := range r.students {
		if s.ID == student.ID {
			delete(r.students, key)
			r.students[student.StudentID] = student
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (r *memStudentRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, s := range r.students {
		if s.ID == id {
			delete(r.students, key)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (r *memStudentRepo) InsertIfAbsent(ctx context.Context, student *models.Student) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn[student.StudentID]; err != nil {
		return false, err
	}
	if _, ok := r.students[student.StudentID]; ok {
		return false, nil
	}
	r.nextID++
	student.ID = r.nextID
	r.students[student.StudentID] = student
	return true, nil
}

func (r *memStudentRepo) ForEach(ctx context.Context, fn func(*models.Student) error) error {
	r.mu.Lock()
	list := r.sorted()
	r.mu.Unlock()
	for _, s := range list {
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

// recordingAudit collects recorded actions
type recordingAudit struct {
	mu      sync.Mutex
	actions []models.AuditAction
	details []string
}

func (a *recordingAudit) Record(ctx context.Context, action models.AuditAction, entity string, entityID, actorID int64, details string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
	a.details = append(a.details, details)
}

func (a *recordingAudit) List(ctx context.Context, page, size int) (*dto.AuditLogListResponse, error) {
	return &dto.AuditLogListResponse{}, nil
}

// staticOptions resolves against a fixed set of active options
type staticOptions struct {
	OptionService
	byCategory map[models.Category]map[string]int64
	err        error
}

func (o *staticOptions) Resolve(ctx context.Context, category models.Category, raw string) (Resolution, error) {
	if o.err != nil {
		return Resolution{}, o.err
	}
	if raw == "" {
		return Resolution{}, nil
	}
	if id, ok := o.byCategory[category][raw]; ok {
		return Resolution{OptionID: &id, Value: raw}, nil
	}
	return Resolution{Value: raw}, nil
}
