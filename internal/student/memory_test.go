// AngelaMos | 2026
// memory_test.go

package student

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

type memoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	students map[int64]Student
	courses  []EnrolledCourse
	writeErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{students: map[int64]Student{}}
}

func (m *memoryRepository) seed(name, email, studentID string) Student {
	st := &Student{Name: name, Email: email, StudentID: studentID}
	_ = m.Create(context.Background(), st)
	return *st
}

func (m *memoryRepository) List(context.Context) ([]Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Student, 0, len(m.students))
	for _, st := range m.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepository) GetByID(_ context.Context, id int64) (*Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.students[id]
	if !ok {
		return nil, fmt.Errorf("get student: %w", core.ErrNotFound)
	}
	return &st, nil
}

func (m *memoryRepository) ListCourses(
	_ context.Context,
	studentIDs []int64,
) ([]EnrolledCourse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wanted := make(map[int64]bool, len(studentIDs))
	for _, id := range studentIDs {
		wanted[id] = true
	}

	out := []EnrolledCourse{}
	for _, c := range m.courses {
		if wanted[c.OwnerID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryRepository) EmailTaken(
	_ context.Context,
	email string,
	exceptID int64,
) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, st := range m.students {
		if id != exceptID && st.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) StudentIDTaken(
	_ context.Context,
	studentID string,
	exceptID int64,
) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, st := range m.students {
		if id != exceptID && st.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) Create(_ context.Context, st *Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}

	m.nextID++
	st.ID = m.nextID
	st.CreatedAt = time.Now()
	st.UpdatedAt = st.CreatedAt
	m.students[st.ID] = *st
	return nil
}

func (m *memoryRepository) Update(_ context.Context, st *Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}
	if _, ok := m.students[st.ID]; !ok {
		return fmt.Errorf("update student: %w", core.ErrNotFound)
	}

	st.UpdatedAt = time.Now()
	m.students[st.ID] = *st
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.students[id]; !ok {
		return fmt.Errorf("delete student: %w", core.ErrNotFound)
	}
	delete(m.students, id)
	return nil
}
