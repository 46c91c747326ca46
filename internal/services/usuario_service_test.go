package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/edu-tech-cl/platform-service/internal/events"
	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

const testDefaultRol = "Estudiante"

func newTestUsuarioService(t *testing.T, seedDefaultRol bool) (UsuarioService, *mockRepository, *events.MockEventPublisher) {
	t.Helper()

	repo := newMockRepository()
	if seedDefaultRol {
		if err := repo.rol.Create(context.Background(), &models.Rol{Nombre: testDefaultRol}); err != nil {
			t.Fatalf("failed to seed default rol: %v", err)
		}
	}

	publisher := events.NewMockEventPublisher(testLogger())
	service := NewUsuarioService(repo, testLogger(), validator.New(), publisher, testDefaultRol)

	return service, repo, publisher
}

func TestUsuarioService_CreateAssignsDefaultRol(t *testing.T) {
	service, repo, publisher := newTestUsuarioService(t, true)
	ctx := context.Background()

	usuario, err := service.Create(ctx, &validator.UsuarioCreateRequest{
		Nombre:   "Camila Soto",
		Email:    "camila.soto@example.cl",
		Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if usuario.Rol.Nombre != testDefaultRol {
		t.Errorf("expected default rol %q, got %q", testDefaultRol, usuario.Rol.Nombre)
	}
	if usuario.RolID == 0 {
		t.Error("expected RolID to be set")
	}

	stored, err := repo.usuario.GetByID(ctx, usuario.ID)
	if err != nil {
		t.Fatalf("stored usuario missing: %v", err)
	}
	if stored.RolID != usuario.RolID {
		t.Errorf("stored RolID %d differs from returned %d", stored.RolID, usuario.RolID)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if published[0].Type != events.EventUsuarioCreated {
		t.Errorf("expected event type %q, got %q", events.EventUsuarioCreated, published[0].Type)
	}
	if published[0].Source != "platform-service" {
		t.Errorf("unexpected event source %q", published[0].Source)
	}
}

func TestUsuarioService_CreateHashesPassword(t *testing.T) {
	service, repo, _ := newTestUsuarioService(t, true)
	ctx := context.Background()

	usuario, err := service.Create(ctx, &validator.UsuarioCreateRequest{
		Nombre:   "Matías Fuentes",
		Email:    "matias.fuentes@example.cl",
		Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, err := repo.usuario.GetByID(ctx, usuario.ID)
	if err != nil {
		t.Fatalf("stored usuario missing: %v", err)
	}
	if stored.Password == "secreto123" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secreto123")); err != nil {
		t.Errorf("stored password is not a valid bcrypt hash of the input: %v", err)
	}
}

func TestUsuarioService_CreateMissingDefaultRol(t *testing.T) {
	service, repo, _ := newTestUsuarioService(t, false)
	ctx := context.Background()

	_, err := service.Create(ctx, &validator.UsuarioCreateRequest{
		Nombre:   "Valentina Rojas",
		Email:    "valentina.rojas@example.cl",
		Password: "secreto123",
	})

	var invalidRef *InvalidReferenceError
	if !errors.As(err, &invalidRef) {
		t.Fatalf("expected InvalidReferenceError, got %v", err)
	}
	if invalidRef.Reference != testDefaultRol {
		t.Errorf("expected reference %q, got %q", testDefaultRol, invalidRef.Reference)
	}

	// Nothing may be written when registration fails.
	count, _ := repo.usuario.Count(ctx)
	if count != 0 {
		t.Errorf("expected no usuarios written, found %d", count)
	}
}

func TestUsuarioService_CreateDuplicateEmail(t *testing.T) {
	service, _, _ := newTestUsuarioService(t, true)
	ctx := context.Background()

	req := &validator.UsuarioCreateRequest{
		Nombre:   "Camila Soto",
		Email:    "camila.soto@example.cl",
		Password: "secreto123",
	}
	if _, err := service.Create(ctx, req); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := service.Create(ctx, req)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "email" {
		t.Errorf("expected conflict on email, got %s", conflict.Field)
	}
}

func TestUsuarioService_CambiarRol(t *testing.T) {
	service, repo, publisher := newTestUsuarioService(t, true)
	ctx := context.Background()

	if err := repo.rol.Create(ctx, &models.Rol{Nombre: "Profesor"}); err != nil {
		t.Fatalf("failed to create rol: %v", err)
	}

	usuario, err := service.Create(ctx, &validator.UsuarioCreateRequest{
		Nombre:   "Jorge Castillo",
		Email:    "jorge.castillo@example.cl",
		Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	publisher.ClearEvents()

	changed, err := service.CambiarRol(ctx, usuario.ID, "Profesor")
	if err != nil {
		t.Fatalf("CambiarRol failed: %v", err)
	}
	if changed.Rol.Nombre != "Profesor" {
		t.Errorf("expected rol 'Profesor', got %q", changed.Rol.Nombre)
	}

	profesor, err := repo.rol.GetByNombre(ctx, "Profesor")
	if err != nil {
		t.Fatalf("rol lookup failed: %v", err)
	}
	if changed.RolID != profesor.ID {
		t.Errorf("expected RolID %d, got %d", profesor.ID, changed.RolID)
	}

	stored, _ := repo.usuario.GetByID(ctx, usuario.ID)
	if stored.RolID != profesor.ID {
		t.Errorf("role change not persisted, stored RolID %d", stored.RolID)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventUsuarioRolChanged {
		t.Errorf("expected one rol-changed event, got %+v", published)
	}
}

func TestUsuarioService_CambiarRolMissingUsuario(t *testing.T) {
	service, _, _ := newTestUsuarioService(t, true)

	_, err := service.CambiarRol(context.Background(), 999, testDefaultRol)
	if !errors.Is(err, ErrUsuarioNotFound) {
		t.Errorf("expected ErrUsuarioNotFound, got %v", err)
	}
}

func TestUsuarioService_CambiarRolMissingRol(t *testing.T) {
	service, _, _ := newTestUsuarioService(t, true)
	ctx := context.Background()

	usuario, err := service.Create(ctx, &validator.UsuarioCreateRequest{
		Nombre:   "Paula Herrera",
		Email:    "paula.herrera@example.cl",
		Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = service.CambiarRol(ctx, usuario.ID, "Inexistente")
	var invalidRef *InvalidReferenceError
	if !errors.As(err, &invalidRef) {
		t.Fatalf("expected InvalidReferenceError, got %v", err)
	}
	if invalidRef.Reference != "Inexistente" {
		t.Errorf("expected reference 'Inexistente', got %q", invalidRef.Reference)
	}
}

func TestUsuarioService_UpdatePartial(t *testing.T) {
	service, _, _ := newTestUsuarioService(t, true)
	ctx := context.Background()

	usuario, err := service.Create(ctx, &validator.UsuarioCreateRequest{
		Nombre:   "Andrea Morales",
		Email:    "andrea.morales@example.cl",
		Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	nuevoNombre := "Andrea M. Morales"
	updated, err := service.Update(ctx, usuario.ID, &validator.UsuarioUpdateRequest{Nombre: &nuevoNombre})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Nombre != nuevoNombre {
		t.Errorf("expected updated nombre, got %q", updated.Nombre)
	}
	if updated.Email != usuario.Email {
		t.Errorf("email should be untouched, got %q", updated.Email)
	}
}

func TestUsuarioService_DeletePolicy(t *testing.T) {
	service, _, _ := newTestUsuarioService(t, true)
	ctx := context.Background()

	usuario, err := service.Create(ctx, &validator.UsuarioCreateRequest{
		Nombre:   "Temporal",
		Email:    "temporal@example.cl",
		Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := service.Delete(ctx, usuario.ID)
	if err != nil || !deleted {
		t.Fatalf("expected successful delete, got deleted=%v err=%v", deleted, err)
	}

	deleted, err = service.Delete(ctx, usuario.ID)
	if err != nil {
		t.Fatalf("second Delete errored: %v", err)
	}
	if deleted {
		t.Error("second delete should report false")
	}
}
