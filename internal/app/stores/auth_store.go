package stores

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/dashboard/internal/app/models"
	"github.com/campushub/dashboard/internal/app/models/dto"
	"github.com/campushub/dashboard/internal/pkg/apperrors"
	"github.com/campushub/dashboard/internal/pkg/auth"
	"github.com/campushub/dashboard/internal/pkg/validation"
	"github.com/campushub/dashboard/internal/storage"
)

// AuthStore is the mock credential store: a persisted user table and the
// current session. It simulates real authentication for demo purposes and
// makes no security guarantees beyond hashed passwords at rest.
type AuthStore struct {
	mu      sync.Mutex
	users   []models.User
	current *models.User

	storage storage.Storage
	jwt     *auth.JWTService
	logger  zerolog.Logger

	subscribers map[int]func(current *models.User)
	nextSubID   int
}

// NewAuthStore builds an AuthStore. The user table is loaded from storage;
// when nothing is stored yet, seedUsers becomes the initial table and is
// persisted. The stored session, if any, is rehydrated immediately.
func NewAuthStore(st storage.Storage, jwtService *auth.JWTService, seedUsers []models.User, logger zerolog.Logger) *AuthStore {
	s := &AuthStore{
		storage:     st,
		jwt:         jwtService,
		logger:      logger,
		subscribers: make(map[int]func(*models.User)),
	}

	var users []models.User
	if st.Load(usersKey, &users) && len(users) > 0 {
		s.users = users
	} else {
		s.users = append([]models.User(nil), seedUsers...)
		st.Save(usersKey, s.users)
		logger.Info().Int("count", len(s.users)).Msg("seeded default user table")
	}

	s.RefreshUser()
	return s
}

// SignIn matches the email case-insensitively against the user table and
// checks the password. On success the session is set and persisted and a
// session token is issued. Failures return apperrors.ErrInvalidCredentials
// and leave the current session untouched.
func (s *AuthStore) SignIn(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	normalized := normalizeEmail(email)

	s.mu.Lock()
	idx := s.userIndexByEmail(normalized)
	if idx < 0 || !auth.CheckPassword(s.users[idx].Password, password) {
		s.mu.Unlock()
		return nil, apperrors.ErrInvalidCredentials
	}

	user := s.users[idx].Public()
	s.current = &user
	s.storage.Save(sessionKey, user)
	subs := s.subscriberList()
	s.mu.Unlock()

	token, err := s.jwt.GenerateSessionToken(&user)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to issue session token")
	}

	for _, sub := range subs {
		sub(&user)
	}
	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("user signed in")
	return &dto.SessionResponse{User: user, Token: token}, nil
}

// SignUp creates a new account and begins a session. A normalized email equal
// to an existing user's fails with apperrors.ErrDuplicateAccount and leaves
// the user table unchanged.
func (s *AuthStore) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.SessionResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	normalized := normalizeEmail(req.Email)

	s.mu.Lock()
	if s.userIndexByEmail(normalized) >= 0 {
		s.mu.Unlock()
		return nil, apperrors.ErrDuplicateAccount
	}
	s.mu.Unlock()

	// Hash outside the lock: bcrypt at cost 12 is deliberately slow
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:        NewEntityID("user"),
		Email:     normalized,
		Password:  hashed,
		Name:      req.Name,
		Role:      req.Role,
		Profile:   req.Profile,
		Metadata:  req.Metadata,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	// Re-check: another sign-up for the same email may have won the race
	if s.userIndexByEmail(normalized) >= 0 {
		s.mu.Unlock()
		return nil, apperrors.ErrDuplicateAccount
	}
	s.users = append(s.users, user)
	public := user.Public()
	s.current = &public
	s.storage.Save(usersKey, s.users)
	s.storage.Save(sessionKey, public)
	subs := s.subscriberList()
	s.mu.Unlock()

	token, err := s.jwt.GenerateSessionToken(&public)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to issue session token")
	}

	for _, sub := range subs {
		sub(&public)
	}
	s.logger.Info().Str("email", public.Email).Str("role", string(public.Role)).Msg("account created")
	return &dto.SessionResponse{User: public, Token: token}, nil
}

// SignOut clears the current session from memory and persistence
func (s *AuthStore) SignOut(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.storage.Delete(sessionKey)
	subs := s.subscriberList()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(nil)
	}
}

// RefreshUser rehydrates the session from persisted storage. When the stored
// session references a user still present in the table, the table row wins
// (it may carry newer fields). When the user is gone, the raw persisted
// record is used as-is — degraded rehydration keeps the session alive.
func (s *AuthStore) RefreshUser() *models.User {
	var session models.User
	if !s.storage.Load(sessionKey, &session) || session.ID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == session.ID {
			fresh := s.users[i].Public()
			s.current = &fresh
			return &fresh
		}
	}
	s.logger.Warn().Str("userId", session.ID).
		Msg("stored session references an unknown user, using persisted record")
	s.current = &session
	return &session
}

// CurrentUser returns a copy of the signed-in user, or nil
func (s *AuthStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Users returns a copy of the user table
func (s *AuthStore) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Public()
	}
	return out
}

// Subscribe registers fn to be called synchronously whenever the session
// changes. The returned function cancels the subscription.
func (s *AuthStore) Subscribe(fn func(current *models.User)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *AuthStore) userIndexByEmail(normalized string) int {
	for i := range s.users {
		if normalizeEmail(s.users[i].Email) == normalized {
			return i
		}
	}
	return -1
}

func (s *AuthStore) subscriberList() []func(*models.User) {
	subs := make([]func(*models.User), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
