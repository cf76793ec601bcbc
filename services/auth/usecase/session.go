package usecase

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	"github.com/piresc/rideflex-admin/internal/pkg/jwt"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	nrpkg "github.com/piresc/rideflex-admin/internal/pkg/newrelic"
	"github.com/piresc/rideflex-admin/internal/utils"
	"github.com/piresc/rideflex-admin/services/auth"
)

const defaultLoginFailure = "Login failed"

// SessionUC holds the signed-in admin. The in-memory pair mirrors what the
// repository stores and both are only ever replaced as a whole.
type SessionUC struct {
	sessionRepo auth.SessionRepo
	authGW      auth.AuthGW
	now         func() time.Time

	mu      sync.RWMutex
	session *models.SessionData
	hooks   []func()
}

// NewSessionUC creates a new session usecase
func NewSessionUC(sessionRepo auth.SessionRepo, authGW auth.AuthGW) *SessionUC {
	return &SessionUC{
		sessionRepo: sessionRepo,
		authGW:      authGW,
		now:         time.Now,
	}
}

// Login signs in with the backend. The pair is stored only when the backend
// reports success together with a token and a user.
func (uc *SessionUC) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.NewValidationError("email", "Email is required")
	}
	if !utils.IsValidEmail(email) {
		return nil, apperrors.NewValidationError("email", "Please enter a valid email address")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password", "Password is required")
	}

	resp, err := uc.authGW.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		logger.Warn("Login request failed",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err))
		return nil, err
	}

	if !resp.Success || resp.Token == "" || resp.User == nil {
		msg := resp.Message
		if msg == "" {
			msg = defaultLoginFailure
		}
		return &models.LoginResult{Success: false, Message: msg}, nil
	}

	session := models.SessionData{Token: resp.Token, User: resp.User.Clone()}
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.session = &session
	uc.mu.Unlock()

	logger.Info("Admin signed in", logger.String("admin_id", session.User.ID))

	return &models.LoginResult{Success: true, Message: resp.Message, User: session.User.Clone()}, nil
}

// Logout tells the backend on a best-effort basis and always clears the session
func (uc *SessionUC) Logout(ctx context.Context) {
	token := uc.token()
	if token != "" {
		if err := uc.authGW.Logout(ctx, token); err != nil {
			logger.Debug("Backend logout failed, clearing session anyway", logger.Err(err))
		}
	}
	uc.clear(ctx)
}

// Restore loads a stored session and verifies it with /api/auth/me. A 401
// tears it down; any other failure keeps it as is.
func (uc *SessionUC) Restore(ctx context.Context) error {
	return nrpkg.TraceUseCase(ctx, "SessionUC.Restore", uc.restore)
}

func (uc *SessionUC) restore(ctx context.Context) error {
	stored, err := uc.sessionRepo.Load(ctx)
	if err != nil {
		return err
	}
	if !stored.Valid() {
		return nil
	}

	uc.mu.Lock()
	uc.session = stored
	uc.mu.Unlock()

	return uc.AuthenticatedRequest(ctx, func(ctx context.Context, token string) error {
		user, err := uc.authGW.Me(ctx, token)
		if err != nil {
			return err
		}
		refreshed := models.SessionData{Token: token, User: user}
		if err := uc.sessionRepo.Save(ctx, refreshed); err != nil {
			return err
		}

		uc.mu.Lock()
		if uc.session != nil && uc.session.Token == token {
			uc.session = &refreshed
		}
		uc.mu.Unlock()
		return nil
	})
}

// IsAuthenticated reports whether both token and user are held
func (uc *SessionUC) IsAuthenticated() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.session.Valid()
}

// CurrentUser returns a copy of the signed-in user, nil when signed out
func (uc *SessionUC) CurrentUser() *models.User {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.session == nil {
		return nil
	}
	return uc.session.User.Clone()
}

func (uc *SessionUC) HasRole(role string) bool {
	return uc.CurrentUser().HasRole(role)
}

func (uc *SessionUC) HasClaim(claim string) bool {
	return uc.CurrentUser().HasClaim(claim)
}

// OnExpired registers fn to run after the session has been torn down by a 401
func (uc *SessionUC) OnExpired(fn func()) {
	uc.mu.Lock()
	uc.hooks = append(uc.hooks, fn)
	uc.mu.Unlock()
}

// AuthenticatedRequest runs fn with the current token. Without a token fn is
// never called. A token whose exp has passed, or a 401 from fn, clears the
// session, fires the expiry hooks and returns apperrors.ErrAuthExpired.
func (uc *SessionUC) AuthenticatedRequest(ctx context.Context, fn func(ctx context.Context, token string) error) error {
	token := uc.token()
	if token == "" {
		return apperrors.ErrUnauthenticated
	}

	if jwt.IsExpired(token, uc.now()) {
		uc.expire(ctx, token)
		return apperrors.ErrAuthExpired
	}

	err := fn(ctx, token)
	if h, ok := apperrors.AsHTTP(err); ok && h.StatusCode == http.StatusUnauthorized {
		uc.expire(ctx, token)
		return apperrors.ErrAuthExpired
	}
	return err
}

func (uc *SessionUC) token() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.session == nil {
		return ""
	}
	return uc.session.Token
}

// expire tears the session down unless it has already been replaced by a newer login
func (uc *SessionUC) expire(ctx context.Context, token string) {
	uc.mu.Lock()
	if uc.session == nil || uc.session.Token != token {
		uc.mu.Unlock()
		return
	}
	uc.session = nil
	hooks := append([]func(){}, uc.hooks...)
	uc.mu.Unlock()

	if err := uc.sessionRepo.Clear(ctx); err != nil {
		logger.Error("Failed to clear expired session", logger.Err(err))
	}

	logger.Warn("Session expired, sign-in required")

	for _, hook := range hooks {
		hook()
	}
}

func (uc *SessionUC) clear(ctx context.Context) {
	uc.mu.Lock()
	uc.session = nil
	uc.mu.Unlock()

	if err := uc.sessionRepo.Clear(ctx); err != nil {
		logger.Error("Failed to clear session", logger.Err(err))
	}
}
