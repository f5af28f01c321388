package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobboard/internal/cache"
	"jobboard/internal/database"
	"jobboard/internal/middleware"
	"jobboard/internal/model"
	"jobboard/internal/service"
	"jobboard/internal/store"
	"jobboard/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

type fakePool struct {
	tasks []worker.Task
	full  bool
}

func (p *fakePool) Submit(t worker.Task) bool {
	if p.full {
		return false
	}
	p.tasks = append(p.tasks, t)
	return true
}

func (p *fakePool) Stop() {}

func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	createSession = service.CreateSession
	destroySession = service.DestroySession
	issueSessionToken = service.IssueSessionToken
	touchLastLogin = store.TouchLastLogin
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	user := &model.User{ID: 7, Email: "alice@example.com", Type: model.UserTypeEmployer, PasswordHash: "h"}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newFormCtx(e, "%")
		require.NoError(t, LoginHandler(nil, nil, &fakePool{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("bad email")}
		ctx, rec := newFormCtx(e, "email=x")
		require.NoError(t, LoginHandler(nil, nil, &fakePool{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "bad email")
	})

	t.Run("user not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var gotEmail string
		getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			gotEmail = email
			return nil, store.ErrNotFound
		}
		ctx, rec := newFormCtx(e, "email=Alice@Example.com&password=x")
		require.NoError(t, LoginHandler(nil, nil, &fakePool{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "alice@example.com", gotEmail)
	})

	t.Run("storage error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("dial tcp 10.0.0.5:5432: connection refused")
		}
		authenticateUser = func(context.Context, model.User, string) error {
			t.Fatal("authenticateUser must not be called")
			return nil
		}
		ctx, rec := newFormCtx(e, "email=a@b.c&password=x")
		require.NoError(t, LoginHandler(nil, nil, &fakePool{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "invalid credentials")
		require.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return user, nil }
		authenticateUser = func(context.Context, model.User, string) error { return service.ErrInvalidCredentials }
		ctx, rec := newFormCtx(e, "email=a@b.c&password=x")
		require.NoError(t, LoginHandler(nil, nil, &fakePool{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("session error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return user, nil }
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		createSession = func(context.Context, cache.Cache, service.Session, time.Duration) (string, error) {
			return "", errors.New("redis down")
		}
		ctx, rec := newFormCtx(e, "email=a@b.c&password=x")
		require.NoError(t, LoginHandler(nil, nil, &fakePool{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("token error destroys session", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return user, nil }
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		createSession = func(context.Context, cache.Cache, service.Session, time.Duration) (string, error) { return "sid", nil }
		issueSessionToken = func(string, int, time.Duration) (string, time.Time, error) {
			return "", time.Time{}, errors.New("no secret")
		}
		destroyed := ""
		destroySession = func(_ context.Context, _ cache.Cache, id string) error { destroyed = id; return nil }
		pool := &fakePool{}
		ctx, rec := newFormCtx(e, "email=a@b.c&password=x")
		require.NoError(t, LoginHandler(nil, nil, pool)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "sid", destroyed)
		require.Empty(t, pool.tasks)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		exp := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return user, nil }
		authenticateUser = func(_ context.Context, u model.User, pw string) error {
			require.Equal(t, "secret", pw)
			return nil
		}
		var stored service.Session
		createSession = func(_ context.Context, _ cache.Cache, s service.Session, ttl time.Duration) (string, error) {
			stored = s
			require.Equal(t, SessionTTL, ttl)
			return "sid", nil
		}
		issueSessionToken = func(sid string, uid int, _ time.Duration) (string, time.Time, error) {
			require.Equal(t, "sid", sid)
			require.Equal(t, 7, uid)
			return "tok", exp, nil
		}
		touched := 0
		touchLastLogin = func(_ context.Context, _ database.DB, id int) error { touched = id; return nil }

		pool := &fakePool{}
		ctx, rec := newFormCtx(e, "email=alice@example.com&password=secret")
		require.NoError(t, LoginHandler(nil, nil, pool)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"access_token":"tok"`)
		require.Contains(t, rec.Body.String(), `"user_type":"employer"`)
		require.Equal(t, service.Session{UserID: 7, UserType: model.UserTypeEmployer, Email: "alice@example.com"}, stored)

		cookie := rec.Header().Get("Set-Cookie")
		require.Contains(t, cookie, middleware.SessionCookieName+"=tok")
		require.Contains(t, cookie, "HttpOnly")
		require.Contains(t, cookie, "SameSite=Lax")

		require.Len(t, pool.tasks, 1)
		require.NoError(t, pool.tasks[0](context.Background()))
		require.Equal(t, 7, touched)
	})

	t.Run("full pool still logs in", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return user, nil }
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		createSession = func(context.Context, cache.Cache, service.Session, time.Duration) (string, error) { return "sid", nil }
		issueSessionToken = func(string, int, time.Duration) (string, time.Time, error) {
			return "tok", time.Now().Add(time.Hour), nil
		}

		pool := &fakePool{full: true}
		ctx, rec := newFormCtx(e, "email=alice@example.com&password=secret")
		require.NoError(t, LoginHandler(nil, nil, pool)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, pool.tasks)
	})

	t.Run("last login failure is reported by the task", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return user, nil }
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		createSession = func(context.Context, cache.Cache, service.Session, time.Duration) (string, error) { return "sid", nil }
		issueSessionToken = func(string, int, time.Duration) (string, time.Time, error) { return "tok", time.Now(), nil }
		touchLastLogin = func(context.Context, database.DB, int) error { return errors.New("db") }

		pool := &fakePool{}
		ctx, rec := newFormCtx(e, "email=a@b.c&password=x")
		require.NoError(t, LoginHandler(nil, nil, pool)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, pool.tasks, 1)
		require.ErrorContains(t, pool.tasks[0](context.Background()), "user 7")
	})
}
