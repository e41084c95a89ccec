package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrEventNotFound = errors.New("event not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every stored event.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.Load(ctx)
}

// Replace overwrites the entire store with the given list.
func (s *Service) Replace(ctx context.Context, events []Event) error {
	if err := s.repo.Save(ctx, events); err != nil {
		return fmt.Errorf("failed to replace events: %w", err)
	}
	return nil
}

// Create expands the draft's recurrence rule into dated instances and
// appends them to the store. A series id is assigned only when more than one
// instance is produced; the instances share the draft's fields at creation
// time and diverge on later per-instance edits.
func (s *Service) Create(ctx context.Context, draft Draft) ([]Event, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	dates, err := Expand(draft.Date, draft.Recurrence, draft.RecurrenceEnd)
	if err != nil {
		return nil, err
	}

	seriesID := ""
	if len(dates) > 1 {
		seriesID = uuid.New().String()
	}

	created := make([]Event, 0, len(dates))
	for _, date := range dates {
		created = append(created, Event{
			ID:          uuid.New().String(),
			SeriesID:    seriesID,
			Name:        draft.Name,
			Date:        date,
			Time:        draft.Time,
			EndTime:     draft.EndTime,
			Location:    draft.Location,
			Description: draft.Description,
		})
	}

	events, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	events = append(events, created...)
	if err := s.repo.Save(ctx, events); err != nil {
		return nil, fmt.Errorf("failed to save events: %w", err)
	}

	return created, nil
}

// Update edits a single instance. Series siblings are untouched.
func (s *Service) Update(ctx context.Context, id string, draft Draft) (*Event, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	events, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	for i := range events {
		if events[i].ID != id {
			continue
		}
		events[i].Name = draft.Name
		events[i].Date = draft.Date
		events[i].Time = draft.Time
		events[i].EndTime = draft.EndTime
		events[i].Location = draft.Location
		events[i].Description = draft.Description
		if err := s.repo.Save(ctx, events); err != nil {
			return nil, fmt.Errorf("failed to save events: %w", err)
		}
		updated := events[i]
		return &updated, nil
	}
	return nil, ErrEventNotFound
}

// DeleteInstance removes exactly one instance by id.
func (s *Service) DeleteInstance(ctx context.Context, id string) error {
	events, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	remaining := make([]Event, 0, len(events))
	found := false
	for _, e := range events {
		if e.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, e)
	}
	if !found {
		return ErrEventNotFound
	}
	if err := s.repo.Save(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}
	return nil
}

// DeleteSeries removes every instance sharing the series id of the event
// with the given id. An event without a series id falls back to a
// single-instance delete.
func (s *Service) DeleteSeries(ctx context.Context, id string) error {
	events, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	seriesID := ""
	found := false
	for _, e := range events {
		if e.ID == id {
			seriesID = e.SeriesID
			found = true
			break
		}
	}
	if !found {
		return ErrEventNotFound
	}
	if seriesID == "" {
		return s.DeleteInstance(ctx, id)
	}

	remaining := make([]Event, 0, len(events))
	for _, e := range events {
		if e.SeriesID == seriesID {
			continue
		}
		remaining = append(remaining, e)
	}
	if err := s.repo.Save(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}
	return nil
}

// Get returns a single instance by id.
func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	events, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	for _, e := range events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrEventNotFound
}
