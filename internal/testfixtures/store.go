package testfixtures

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/holiday"
)

// HolidayStore хранилище отпусков в памяти с тем же контрактом, что и PostgreSQL репозиторий
// Возвращает копии, поэтому тесты не могут случайно изменить сохраненные данные
type HolidayStore struct {
	mu       sync.Mutex
	holidays map[uuid.UUID]domain.Holiday

	// Errors позволяет заставить метод вернуть ошибку: ключ - имя метода
	Errors map[string]error

	// Locks количество вызовов LockSchedule
	Locks int
}

// NewHolidayStore создает хранилище с начальными данными
func NewHolidayStore(holidays ...*domain.Holiday) *HolidayStore {
	s := &HolidayStore{
		holidays: make(map[uuid.UUID]domain.Holiday),
		Errors:   make(map[string]error),
	}
	for _, h := range holidays {
		s.Put(h)
	}
	return s
}

// Put сохраняет отпуск как есть, без проверок
func (s *HolidayStore) Put(h *domain.Holiday) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holidays[h.ID] = *h
}

// Len возвращает количество сохраненных отпусков
func (s *HolidayStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.holidays)
}

func (s *HolidayStore) LockSchedule(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Locks++
	return s.Errors["LockSchedule"]
}

func (s *HolidayStore) GetAll(ctx context.Context) ([]*domain.Holiday, error) {
	return s.filter("GetAll", func(*domain.Holiday) bool { return true })
}

func (s *HolidayStore) GetByEmployeeID(ctx context.Context, employeeID string) ([]*domain.Holiday, error) {
	return s.filter("GetByEmployeeID", func(h *domain.Holiday) bool { return h.EmployeeID == employeeID })
}

func (s *HolidayStore) FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Holiday, error) {
	return s.filter("FindOverlapping", func(h *domain.Holiday) bool { return h.Overlaps(start, end) })
}

func (s *HolidayStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Errors["GetByID"]; err != nil {
		return nil, err
	}
	h, ok := s.holidays[id]
	if !ok {
		return nil, holidayRepo.ErrHolidayNotFound
	}
	return &h, nil
}

func (s *HolidayStore) Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Errors["Create"]; err != nil {
		return nil, err
	}
	created := *h
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.holidays[created.ID] = created
	return &created, nil
}

func (s *HolidayStore) Update(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Errors["Update"]; err != nil {
		return nil, err
	}
	if _, ok := s.holidays[h.ID]; !ok {
		return nil, holidayRepo.ErrHolidayNotFound
	}
	updated := *h
	updated.UpdatedAt = time.Now()
	s.holidays[h.ID] = updated
	return &updated, nil
}

func (s *HolidayStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Errors["Delete"]; err != nil {
		return err
	}
	if _, ok := s.holidays[id]; !ok {
		return holidayRepo.ErrHolidayNotFound
	}
	delete(s.holidays, id)
	return nil
}

func (s *HolidayStore) filter(method string, keep func(*domain.Holiday) bool) ([]*domain.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Errors[method]; err != nil {
		return nil, err
	}

	result := make([]*domain.Holiday, 0)
	for _, h := range s.holidays {
		h := h
		if keep(&h) {
			result = append(result, &h)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})
	return result, nil
}
