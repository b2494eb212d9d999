package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-doc-vault/models"
)

func TestGetUsernameFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "john")

	username, ok := GetUsernameFromContext(ctx)
	if !ok {
		t.Fatal("expected username in context")
	}
	if username != "john" {
		t.Errorf("expected john, got %s", username)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	if _, ok := GetUsernameFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, 42)

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetUserFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, models.User{Username: "john", Role: "hr"})

	user, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user in context")
	}
	if user.Username != "john" || user.Role != "hr" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	if _, ok := GetUserFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
