package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jask/gitdeck/internal/database"
	"github.com/jask/gitdeck/internal/database/repository"
)

const (
	profileKey  = "visitor_profile"
	positionKey = "deck_position"
)

// GenericGreeting is shown when no profile has been saved.
const GenericGreeting = "Welcome to the Git workshop!"

// ErrMissingField is wrapped by FieldError when a required field is blank.
var ErrMissingField = errors.New("required field missing")

// FieldError names the form field that blocked a save.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %v", e.Field, ErrMissingField) }

func (e *FieldError) Unwrap() error { return ErrMissingField }

// Profile is the visitor record kept between runs.
type Profile struct {
	Name        string    `json:"name"`
	Affiliation string    `json:"affiliation"`
	ProfileURL  string    `json:"profile_url"`
	SavedAt     time.Time `json:"saved_at"`
}

// Store is the subset of the key-value repo the profile service needs.
type Store interface {
	Get(ctx context.Context, key string) (*repository.Entry, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ProfileService persists the visitor profile and the last viewed slide.
type ProfileService struct {
	KV     Store
	Logger *zap.Logger
	Now    func() time.Time
}

func (s *ProfileService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *ProfileService) now() time.Time {
	if s.Now == nil {
		return database.Now()
	}
	return s.Now()
}

// Load returns the saved profile. Absent or unreadable data yields nil, nil.
func (s *ProfileService) Load(ctx context.Context) (*Profile, error) {
	e, err := s.KV.Get(ctx, profileKey)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if e == nil {
		return nil, nil
	}
	var p Profile
	if err := json.Unmarshal([]byte(e.Value), &p); err != nil {
		s.logger().Warn("ignoring malformed profile", zap.Error(err))
		return nil, nil
	}
	if p.Name == "" || p.Affiliation == "" {
		s.logger().Warn("ignoring incomplete profile")
		return nil, nil
	}
	return &p, nil
}

// Save validates and writes the profile. Name and affiliation are required;
// the link may be empty.
func (s *ProfileService) Save(ctx context.Context, name, affiliation, link string) (*Profile, error) {
	p := Profile{
		Name:        strings.TrimSpace(name),
		Affiliation: strings.TrimSpace(affiliation),
		ProfileURL:  strings.TrimSpace(link),
	}
	if p.Name == "" {
		return nil, &FieldError{Field: "name"}
	}
	if p.Affiliation == "" {
		return nil, &FieldError{Field: "affiliation"}
	}
	p.SavedAt = s.now()

	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	if err := s.KV.Put(ctx, profileKey, string(b)); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.logger().Info("profile saved", zap.String("name", p.Name))
	return &p, nil
}

// Clear removes the saved profile.
func (s *ProfileService) Clear(ctx context.Context) error {
	if err := s.KV.Delete(ctx, profileKey); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

// Position returns the last viewed slide index, or 0.
func (s *ProfileService) Position(ctx context.Context) (int, error) {
	e, err := s.KV.Get(ctx, positionKey)
	if err != nil {
		return 0, fmt.Errorf("load position: %w", err)
	}
	if e == nil {
		return 0, nil
	}
	n, err := strconv.Atoi(e.Value)
	if err != nil || n < 0 {
		s.logger().Warn("ignoring malformed deck position", zap.String("value", e.Value))
		return 0, nil
	}
	return n, nil
}

// SavePosition records the current slide index.
func (s *ProfileService) SavePosition(ctx context.Context, index int) error {
	if index < 0 {
		index = 0
	}
	if err := s.KV.Put(ctx, positionKey, strconv.Itoa(index)); err != nil {
		return fmt.Errorf("save position: %w", err)
	}
	return nil
}

// Greeting personalizes the header line.
func Greeting(p *Profile) string {
	if p == nil {
		return GenericGreeting
	}
	return fmt.Sprintf("Welcome, %s from %s!", p.Name, p.Affiliation)
}
