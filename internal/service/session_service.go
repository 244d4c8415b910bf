package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/remark-assist-api/internal/models"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
)

// SessionService keeps each teacher's working set (bank + roster) in process
// memory for the lifetime of one run. Nothing survives a restart.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	logger   *zap.Logger
}

// NewSessionService constructs SessionService.
func NewSessionService(logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{sessions: make(map[string]models.Session), logger: logger}
}

// Create opens a new working session.
func (s *SessionService) Create(subject, grade, semester string) models.Session {
	now := time.Now().UTC()
	session := models.Session{
		ID:        uuid.NewString(),
		Subject:   subject,
		Grade:     grade,
		Semester:  semester,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("session created", zap.String("session_id", session.ID), zap.String("subject", subject))
	return session
}

// Get returns a copy of the stored session.
func (s *SessionService) Get(id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
	}
	return &session, nil
}

// Update replaces the stored bank and roster of a session.
func (s *SessionService) Update(id string, bank []models.TemplateBankEntry, records []models.StudentRecord) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
	}
	session.Bank = bank
	session.Records = records
	session.UpdatedAt = time.Now().UTC()
	s.sessions[id] = session
	return &session, nil
}
