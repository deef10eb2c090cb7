package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"ads-dental-admin/internal/domain/entity"
	"ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/pkg/jwt"

	"github.com/sirupsen/logrus"
)

// Keys of the two persisted session entries
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)

// SessionUsecase holds the single authenticated session of the running dashboard.
type SessionUsecase interface {
	Login(ctx context.Context, identifier, password string) (*entity.Session, error)
	Register(ctx context.Context, identifier, email, password, role string) (*entity.Session, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*entity.Session, error)
	// Current returns a copy of the session, or false when signed out.
	Current() (*entity.Session, bool)
	Token() string
	// OnSessionChange registers fn to run after every login, restore and
	// logout, so state loaded for the previous user can be dropped.
	OnSessionChange(fn func())
}

type sessionUsecase struct {
	log      *logrus.Logger
	authRepo repository.AuthRepository
	storage  repository.SessionStorage

	mu        sync.RWMutex
	session   *entity.Session
	listeners []func()
}

func NewSessionUsecase(
	log *logrus.Logger,
	authRepo repository.AuthRepository,
	storage repository.SessionStorage,
) SessionUsecase {
	return &sessionUsecase{
		log:      log,
		authRepo: authRepo,
		storage:  storage,
	}
}

func (u *sessionUsecase) Login(ctx context.Context, identifier, password string) (*entity.Session, error) {
	result, err := u.authRepo.Login(ctx, identifier, password)
	if err != nil {
		u.log.Warnf("Login failed for %q: %+v", identifier, err)
		return nil, &AuthError{Op: AuthOpLogin, Err: err}
	}

	roles := result.Roles
	if len(roles) == 0 {
		roles = entity.RoleSet{entity.RolePatient}
	}
	email := result.Email
	if email == "" {
		email = identifier
	}

	session := &entity.Session{
		Token: result.AccessToken,
		User: entity.User{
			Username: identifier,
			Email:    email,
			Roles:    roles,
		},
		ExpiresAt: jwt.ExpiresAt(result.AccessToken),
	}

	u.mu.Lock()
	u.session = session
	u.mu.Unlock()
	u.notify()

	// Persistence is best effort: the in-memory session stays usable.
	if err := u.persist(ctx, session); err != nil {
		u.log.Warnf("Failed to persist session for %q: %+v", identifier, err)
	}

	u.log.Infof("Signed in: user=%s, roles=%v", identifier, []string(roles))
	return copySession(session), nil
}

func (u *sessionUsecase) Register(ctx context.Context, identifier, email, password, role string) (*entity.Session, error) {
	if err := u.authRepo.Register(ctx, identifier, email, password, role); err != nil {
		u.log.Warnf("Registration failed for %q: %+v", identifier, err)
		return nil, &AuthError{Op: AuthOpRegister, Err: err}
	}
	return u.Login(ctx, identifier, password)
}

func (u *sessionUsecase) Logout(ctx context.Context) error {
	u.mu.Lock()
	u.session = nil
	u.mu.Unlock()
	u.notify()

	if err := u.storage.Delete(ctx, StorageKeyToken, StorageKeyUser); err != nil {
		u.log.Warnf("Failed to clear persisted session: %+v", err)
		return err
	}
	return nil
}

// Restore reinstates a persisted session verbatim. The token is not checked
// against the backend; a stale token surfaces on the first failing call.
func (u *sessionUsecase) Restore(ctx context.Context) (*entity.Session, error) {
	token, hasToken, err := u.storage.Get(ctx, StorageKeyToken)
	if err != nil {
		return nil, err
	}
	rawUser, hasUser, err := u.storage.Get(ctx, StorageKeyUser)
	if err != nil {
		return nil, err
	}
	if !hasToken || !hasUser || token == "" {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		u.log.Warnf("Ignoring unreadable persisted user record: %+v", err)
		return nil, nil
	}

	session := &entity.Session{
		Token:     token,
		User:      user,
		ExpiresAt: jwt.ExpiresAt(token),
	}

	u.mu.Lock()
	u.session = session
	u.mu.Unlock()
	u.notify()

	return copySession(session), nil
}

func (u *sessionUsecase) Current() (*entity.Session, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.session == nil {
		return nil, false
	}
	return copySession(u.session), true
}

func (u *sessionUsecase) Token() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.session == nil {
		return ""
	}
	return u.session.Token
}

func (u *sessionUsecase) OnSessionChange(fn func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.listeners = append(u.listeners, fn)
}

// notify runs the listeners without holding mu; they may read the session.
func (u *sessionUsecase) notify() {
	u.mu.RLock()
	listeners := append([]func(){}, u.listeners...)
	u.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

func (u *sessionUsecase) persist(ctx context.Context, session *entity.Session) error {
	rawUser, err := json.Marshal(session.User)
	if err != nil {
		return err
	}
	if err := u.storage.Set(ctx, StorageKeyToken, session.Token); err != nil {
		return err
	}
	return u.storage.Set(ctx, StorageKeyUser, string(rawUser))
}

func copySession(s *entity.Session) *entity.Session {
	cp := *s
	cp.User.Roles = append(entity.RoleSet(nil), s.User.Roles...)
	return &cp
}
