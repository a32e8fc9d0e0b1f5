package admin

import (
	"context"
	"errors"
	"testing"

	"supermock/models"
)

func TestFakeDirectoryGetUser(t *testing.T) {
	dir := NewFakeDirectory(SeedUsers())

	u, err := dir.GetUser(context.Background(), "22222222-2222-2222-2222-222222222222")
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if u.Role != models.RoleInterviewer {
		t.Errorf("role = %q, want interviewer", u.Role)
	}

	if _, err := dir.GetUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("GetUser(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestFakeDirectorySearch(t *testing.T) {
	dir := NewFakeDirectory(SeedUsers())

	users, total, err := dir.ListUsers(context.Background(), 1, 20, "DMITRY")
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if total != 1 || len(users) != 1 {
		t.Fatalf("got %d/%d results, want 1", len(users), total)
	}
	if users[0].Username != "dmitry.ivanov" {
		t.Errorf("username = %q", users[0].Username)
	}
}

func TestFakeDirectoryPagination(t *testing.T) {
	dir := NewFakeDirectory(SeedUsers())

	first, total, err := dir.ListUsers(context.Background(), 1, 3, "")
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if total != 4 || len(first) != 3 {
		t.Fatalf("page 1: got %d of %d, want 3 of 4", len(first), total)
	}

	second, _, err := dir.ListUsers(context.Background(), 2, 3, "")
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("page 2: got %d, want 1", len(second))
	}

	empty, _, err := dir.ListUsers(context.Background(), 5, 3, "")
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("page past the end must be empty, got %d", len(empty))
	}
}
