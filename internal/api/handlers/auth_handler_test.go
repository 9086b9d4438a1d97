package handlers

import (
	"errors"
	"fmt"
	"testing"

	"spendwatch/internal/service"

	"github.com/gofiber/fiber/v2"
)

func TestStatusForAuthError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantPublic bool
	}{
		{service.ErrUserExists, fiber.StatusConflict, true},
		{service.ErrInvalidCredentials, fiber.StatusUnauthorized, true},
		{service.ErrUserNotFound, fiber.StatusUnauthorized, true},
		{fmt.Errorf("issuing tokens: %w", service.ErrInvalidCredentials), fiber.StatusUnauthorized, true},
		{errors.New("pool exhausted"), fiber.StatusInternalServerError, false},
	}

	for _, tc := range cases {
		status, message := statusForAuthError(tc.err)
		if status != tc.wantStatus {
			t.Errorf("statusForAuthError(%v) status = %d, want %d", tc.err, status, tc.wantStatus)
		}
		if tc.wantPublic && message == "" {
			t.Errorf("statusForAuthError(%v) returned no client message", tc.err)
		}
		if !tc.wantPublic && message != "" {
			t.Errorf("statusForAuthError(%v) leaked internal message %q", tc.err, message)
		}
	}
}

// A user-not-found lookup must answer exactly like bad credentials so the
// endpoint cannot be used to enumerate registered emails.
func TestStatusForAuthErrorHidesUserExistence(t *testing.T) {
	notFoundStatus, notFoundMsg := statusForAuthError(service.ErrUserNotFound)
	badCredsStatus, badCredsMsg := statusForAuthError(service.ErrInvalidCredentials)
	if notFoundStatus != badCredsStatus || notFoundMsg != badCredsMsg {
		t.Errorf("unknown user maps to (%d, %q), credentials to (%d, %q); responses must match",
			notFoundStatus, notFoundMsg, badCredsStatus, badCredsMsg)
	}
}
