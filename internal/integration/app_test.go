package integration_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stagedoor/theatre-reservation-system/internal/app"
	"github.com/stagedoor/theatre-reservation-system/internal/mailer"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	mockMailer := mailer.NewMockMailer()

	db, err := pgxpool.New(ctx, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		db.Close()
		return nil, err
	}

	application := app.New(cfg, logger, db, redisClient, mockMailer)

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mockMailer,
	}, nil
}

func (a *TestApp) do(t testing.TB, method, url, body string, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	a.App.Routes().ServeHTTP(rec, req)

	return rec.Result()
}

// login returns the session cookies of an existing activated user, or nil
// when the credentials are rejected.
func (a *TestApp) login(t testing.TB, email, password string) []*http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	res := a.do(t, http.MethodPost, "/sessions", body, nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil
	}

	return res.Cookies()
}

// registerAndActivate walks a user through the full signup flow, pulling the
// activation token out of the captured welcome mail.
func (a *TestApp) registerAndActivate(t testing.TB, firstName, lastName, email, password string) {
	t.Helper()

	body := fmt.Sprintf(`{"first_name": %q, "last_name": %q, "email": %q, "password": %q}`,
		firstName, lastName, email, password)

	res := a.do(t, http.MethodPost, "/users", body, nil)
	defer res.Body.Close()
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	token := a.activationTokenFor(t, email)

	res = a.do(t, http.MethodPut, "/users/activated", fmt.Sprintf(`{"token": %q}`, token), nil)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func (a *TestApp) activationTokenFor(t testing.TB, email string) string {
	t.Helper()

	for _, sent := range a.Mailer.GetSentEmails() {
		if sent.Recipient != email || sent.TemplateFile != "user_welcome.tmpl" {
			continue
		}

		data, ok := sent.Data.(map[string]any)
		require.True(t, ok, "unexpected mail data type")

		token, ok := data["activationToken"].(string)
		require.True(t, ok, "activation token missing from mail data")

		return token
	}

	t.Fatalf("no welcome mail captured for %s", email)
	return ""
}

// authenticatedUserCookies logs the standard test user in, creating and
// activating the account on first use.
func (a *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	if cookies := a.login(t, TestUserEmail, TestUserPassword); cookies != nil {
		return cookies
	}

	a.registerAndActivate(t, TestUserFirstName, TestUserLastName, TestUserEmail, TestUserPassword)

	cookies := a.login(t, TestUserEmail, TestUserPassword)
	require.NotNil(t, cookies, "login failed after registration")

	return cookies
}

// adminCookies logs the admin test user in, promoting the account via the
// database on first use since admin status cannot be self-assigned.
func (a *TestApp) adminCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	if cookies := a.login(t, TestAdminEmail, TestAdminPassword); cookies != nil {
		return cookies
	}

	a.registerAndActivate(t, "Ada", "Admin", TestAdminEmail, TestAdminPassword)

	_, err := a.DB.Exec(context.Background(), "UPDATE users SET is_admin = true WHERE email = $1", TestAdminEmail)
	require.NoError(t, err)

	cookies := a.login(t, TestAdminEmail, TestAdminPassword)
	require.NotNil(t, cookies, "admin login failed after registration")

	return cookies
}
