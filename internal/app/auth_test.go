package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/stagedoor/theatre-reservation-system/api"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
	"github.com/stagedoor/theatre-reservation-system/internal/mocks"
)

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name           string
		input          api.RegisterRequest
		createFunc     func(ctx context.Context, user *domain.User, tokenFn func(*domain.User) (*domain.Token, error)) (*domain.Token, error)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful registration",
			input: api.RegisterRequest{
				FirstName: "Freddie",
				LastName:  "Mercury",
				Email:     "freddie@example.com",
				Password:  "Pass123!@#",
			},
			createFunc: func(ctx context.Context, user *domain.User, tokenFn func(*domain.User) (*domain.Token, error)) (*domain.Token, error) {
				user.ID = 1
				return tokenFn(user)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "invalid password format",
			input: api.RegisterRequest{
				FirstName: "Freddie",
				LastName:  "Mercury",
				Email:     "freddie@example.com",
				Password:  "weak",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "missing email",
			input: api.RegisterRequest{
				FirstName: "Freddie",
				LastName:  "Mercury",
				Password:  "Pass123!@#",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "duplicate email",
			input: api.RegisterRequest{
				FirstName: "Freddie",
				LastName:  "Mercury",
				Email:     "existing@example.com",
				Password:  "Pass123!@#",
			},
			createFunc: func(ctx context.Context, user *domain.User, tokenFn func(*domain.User) (*domain.Token, error)) (*domain.Token, error) {
				return nil, domain.ErrUserAlreadyExists
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid input data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mocks.MockUserRepo{CreateWithTokenFunc: tt.createFunc}
			app := newTestApplication(func(a *Application) {
				a.userRepo = userRepo
			})

			w, r := executeRequest(t, http.MethodPost, "/users", tt.input)

			app.RegisterUser(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %v, want %v", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestLogin(t *testing.T) {
	activatedUser := func() *domain.User {
		user := &domain.User{ID: 1, Email: "freddie@example.com", Activated: true}
		if err := user.Password.Set("Pass123!@#"); err != nil {
			t.Fatal(err)
		}
		return user
	}

	tests := []struct {
		name           string
		input          api.LoginRequest
		getByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:  "unknown email",
			input: api.LoginRequest{Email: "freddie@example.com", Password: "Pass123!@#"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: "invalid credentials",
		},
		{
			name:  "wrong password",
			input: api.LoginRequest{Email: "freddie@example.com", Password: "WrongPass1!"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return activatedUser(), nil
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: "invalid credentials",
		},
		{
			name:  "inactive account",
			input: api.LoginRequest{Email: "freddie@example.com", Password: "Pass123!@#"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				user := activatedUser()
				user.Activated = false
				return user, nil
			},
			wantStatus:     http.StatusForbidden,
			wantErrMessage: ErrForbidden,
		},
		{
			name:  "successful login",
			input: api.LoginRequest{Email: "freddie@example.com", Password: "Pass123!@#"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return activatedUser(), nil
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mocks.MockUserRepo{GetByEmailFunc: tt.getByEmailFunc}
			app := newTestApplication(func(a *Application) {
				a.userRepo = userRepo
			})

			w, r := executeRequest(t, http.MethodPost, "/sessions", tt.input)

			handler := app.sessionManager.LoadAndSave(http.HandlerFunc(app.Login))
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %v, want %v", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
