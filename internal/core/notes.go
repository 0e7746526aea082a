package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// NoteService manages free-form notes.
type NoteService interface {
	List(ctx context.Context) ([]Note, error)

	// Create requires a non-empty title. Content defaults to empty and
	// category to "General"; the identity is a fresh UUID.
	Create(ctx context.Context, payload map[string]any) (*Note, error)

	// Update merges title/content/category from a partial payload and stamps
	// updated_at.
	Update(ctx context.Context, id string, updates map[string]any) (*Note, error)

	Delete(ctx context.Context, id string) error
}

type noteService struct {
	store *Store
}

// NewNoteService constructs a NoteService backed by the store.
func NewNoteService(store *Store) NoteService {
	return &noteService{store: store}
}

func (s *noteService) List(ctx context.Context) ([]Note, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Notes, nil
}

func (s *noteService) Create(ctx context.Context, payload map[string]any) (*Note, error) {
	title := strings.TrimSpace(cast.ToString(payload["title"]))
	if title == "" {
		return nil, fmt.Errorf("note title is required: %w", ErrValidation)
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().Format(time.RFC3339)
	n := Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   cast.ToString(payload["content"]),
		Category:  "General",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if v, ok := payload["category"]; ok {
		if c := cast.ToString(v); c != "" {
			n.Category = c
		}
	}

	doc.Notes = append(doc.Notes, n)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return &n, nil
}

func (s *noteService) Update(ctx context.Context, id string, updates map[string]any) (*Note, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Notes {
		if doc.Notes[i].ID != id {
			continue
		}
		if v, ok := updates["title"]; ok {
			doc.Notes[i].Title = cast.ToString(v)
		}
		if v, ok := updates["content"]; ok {
			doc.Notes[i].Content = cast.ToString(v)
		}
		if v, ok := updates["category"]; ok {
			doc.Notes[i].Category = cast.ToString(v)
		}
		doc.Notes[i].UpdatedAt = time.Now().Format(time.RFC3339)
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("failed to save note: %w", err)
		}
		return &doc.Notes[i], nil
	}
	return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	kept := doc.Notes[:0]
	found := false
	for _, n := range doc.Notes {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	doc.Notes = kept
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}
