package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/edu-tech-cl/platform-service/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func newTestRolService() (RolService, *mockRepository) {
	repo := newMockRepository()
	return NewRolService(repo, testLogger(), validator.New()), repo
}

func TestRolService_CreateAndGet(t *testing.T) {
	service, _ := newTestRolService()
	ctx := context.Background()

	rol, err := service.Create(ctx, &validator.RolRequest{Nombre: "Profesor"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rol.ID == 0 {
		t.Error("expected assigned ID")
	}

	got, err := service.GetByID(ctx, rol.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Nombre != "Profesor" {
		t.Errorf("expected Nombre 'Profesor', got %q", got.Nombre)
	}

	byNombre, err := service.GetByNombre(ctx, "Profesor")
	if err != nil {
		t.Fatalf("GetByNombre failed: %v", err)
	}
	if byNombre.ID != rol.ID {
		t.Errorf("expected ID %d, got %d", rol.ID, byNombre.ID)
	}
}

func TestRolService_CreateDuplicateNombre(t *testing.T) {
	service, _ := newTestRolService()
	ctx := context.Background()

	if _, err := service.Create(ctx, &validator.RolRequest{Nombre: "Administrador"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := service.Create(ctx, &validator.RolRequest{Nombre: "Administrador"})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "nombre" {
		t.Errorf("expected conflict on nombre, got %s", conflict.Field)
	}
}

func TestRolService_CreateInvalidNombre(t *testing.T) {
	service, _ := newTestRolService()

	_, err := service.Create(context.Background(), &validator.RolRequest{Nombre: ""})
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
}

func TestRolService_GetMissing(t *testing.T) {
	service, _ := newTestRolService()

	if _, err := service.GetByID(context.Background(), 999); !errors.Is(err, ErrRolNotFound) {
		t.Errorf("expected ErrRolNotFound, got %v", err)
	}
	if _, err := service.GetByNombre(context.Background(), "Fantasma"); !errors.Is(err, ErrRolNotFound) {
		t.Errorf("expected ErrRolNotFound, got %v", err)
	}
}

func TestRolService_Update(t *testing.T) {
	service, _ := newTestRolService()
	ctx := context.Background()

	rol, err := service.Create(ctx, &validator.RolRequest{Nombre: "Ayudante"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := service.Update(ctx, rol.ID, &validator.RolRequest{Nombre: "Tutor"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Nombre != "Tutor" {
		t.Errorf("expected Nombre 'Tutor', got %q", updated.Nombre)
	}
	if updated.ID != rol.ID {
		t.Errorf("update must not change the ID")
	}

	// Updating again with the same payload keeps the same state.
	again, err := service.Update(ctx, rol.ID, &validator.RolRequest{Nombre: "Tutor"})
	if err != nil {
		t.Fatalf("repeated Update failed: %v", err)
	}
	if again.Nombre != updated.Nombre || again.ID != updated.ID {
		t.Error("repeated update changed the stored state")
	}
}

func TestRolService_UpdateMissing(t *testing.T) {
	service, _ := newTestRolService()

	_, err := service.Update(context.Background(), 42, &validator.RolRequest{Nombre: "Tutor"})
	if !errors.Is(err, ErrRolNotFound) {
		t.Errorf("expected ErrRolNotFound, got %v", err)
	}
}

func TestRolService_Delete(t *testing.T) {
	service, _ := newTestRolService()
	ctx := context.Background()

	rol, err := service.Create(ctx, &validator.RolRequest{Nombre: "Temporal"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := service.Delete(ctx, rol.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected first delete to report true")
	}

	if _, err := service.GetByID(ctx, rol.ID); !errors.Is(err, ErrRolNotFound) {
		t.Errorf("deleted rol should be gone, got %v", err)
	}

	// Second delete of the same id reports false without error.
	deleted, err = service.Delete(ctx, rol.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func TestRolService_DeleteNeverExisted(t *testing.T) {
	service, _ := newTestRolService()

	deleted, err := service.Delete(context.Background(), 999)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted {
		t.Error("deleting id 999 should report false")
	}
}
