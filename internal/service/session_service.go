package service

import (
	"sync"
	"time"

	"study_planner_backend/internal/config"
	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/util"
	"study_planner_backend/pkg/logger"
	"study_planner_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session 一次学习会话：一个学生快照对应一个独立的 PerformanceStore
type Session struct {
	ID        string
	Student   string
	Store     *repository.PerformanceStore
	CreatedAt time.Time
}

// SessionService 管理会话生命周期并签发会话令牌。
// 各会话的 store 相互独立，互不共享可变状态。
type SessionService struct {
	cfg      *config.Config
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionService(cfg *config.Config) *SessionService {
	return &SessionService{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
}

// StartSession loads the configured student snapshot, builds a fresh store
// and returns a signed session token plus the initial profile.
func (s *SessionService) StartSession() (string, model.StudentProfile, error) {
	snapshot, err := repository.LoadSnapshot(s.cfg.Planner.SnapshotPath)
	if err != nil {
		return "", model.StudentProfile{}, err
	}

	store, err := repository.NewPerformanceStore(snapshot)
	if err != nil {
		return "", model.StudentProfile{}, err
	}

	session := &Session{
		ID:        uuid.New().String(),
		Student:   snapshot.Name,
		Store:     store,
		CreatedAt: time.Now(),
	}

	token, err := util.GenerateSessionJWT(session.ID, session.Student, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	if err != nil {
		return "", model.StudentProfile{}, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	monitoring.SessionsStarted.Inc()
	logger.Log.Info("study session started",
		zap.String("session", session.ID),
		zap.String("student", session.Student))

	return token, store.Profile(), nil
}

// StoreFor resolves a session ID back to its store handle.
func (s *SessionService) StoreFor(sessionID string) (*repository.PerformanceStore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return session.Store, nil
}

// EndSession drops the session's store. Unknown IDs are a no-op: the token
// may simply have outlived a restart.
func (s *SessionService) EndSession(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
