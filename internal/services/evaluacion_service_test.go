package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edu-tech-cl/platform-service/internal/events"
	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

func newTestEvaluacionService(t *testing.T) (EvaluacionService, *mockRepository, uint) {
	t.Helper()

	repo := newMockRepository()
	curso := &models.Curso{Titulo: "Análisis de Datos con Python"}
	if err := repo.curso.Create(context.Background(), curso); err != nil {
		t.Fatalf("failed to seed curso: %v", err)
	}

	publisher := events.NewMockEventPublisher(testLogger())
	service := NewEvaluacionService(repo, testLogger(), validator.New(), publisher)

	return service, repo, curso.ID
}

func evaluacionRequest(cursoID uint) *validator.EvaluacionRequest {
	duracion := 90
	inicio := time.Now().AddDate(0, 0, 7)
	return &validator.EvaluacionRequest{
		Nombre:             "Prueba Parcial",
		Descripcion:        "Unidades 1 y 2.",
		Tipo:               "sumativa",
		Estado:             "programada",
		FechaInicio:        inicio,
		FechaTermino:       inicio.Add(2 * time.Hour),
		Duracion:           &duracion,
		CalificacionMaxima: 100,
		CursoID:            cursoID,
	}
}

func TestEvaluacionService_CreateAndGet(t *testing.T) {
	service, _, cursoID := newTestEvaluacionService(t)
	ctx := context.Background()

	evaluacion, err := service.Create(ctx, evaluacionRequest(cursoID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if evaluacion.CursoID != cursoID {
		t.Errorf("expected CursoID %d, got %d", cursoID, evaluacion.CursoID)
	}

	got, err := service.GetByID(ctx, evaluacion.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Nombre != "Prueba Parcial" {
		t.Errorf("expected nombre 'Prueba Parcial', got %q", got.Nombre)
	}
	if got.Duracion == nil || *got.Duracion != 90 {
		t.Errorf("expected duracion 90, got %v", got.Duracion)
	}
}

func TestEvaluacionService_CreateInvalidCurso(t *testing.T) {
	service, repo, _ := newTestEvaluacionService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, evaluacionRequest(999))
	var invalidRef *InvalidReferenceError
	if !errors.As(err, &invalidRef) {
		t.Fatalf("expected InvalidReferenceError, got %v", err)
	}
	if invalidRef.Resource != "curso" {
		t.Errorf("expected curso reference error, got %s", invalidRef.Resource)
	}

	count, _ := repo.evaluacion.Count(ctx)
	if count != 0 {
		t.Errorf("expected no evaluaciones written, found %d", count)
	}
}

func TestEvaluacionService_ListByCurso(t *testing.T) {
	service, repo, cursoID := newTestEvaluacionService(t)
	ctx := context.Background()

	otroCurso := &models.Curso{Titulo: "Otro Curso"}
	if err := repo.curso.Create(ctx, otroCurso); err != nil {
		t.Fatalf("failed to seed curso: %v", err)
	}

	if _, err := service.Create(ctx, evaluacionRequest(cursoID)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	req := evaluacionRequest(otroCurso.ID)
	req.Nombre = "Examen Final"
	if _, err := service.Create(ctx, req); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	evaluaciones, err := service.ListByCurso(ctx, cursoID)
	if err != nil {
		t.Fatalf("ListByCurso failed: %v", err)
	}
	if len(evaluaciones) != 1 {
		t.Fatalf("expected 1 evaluacion for curso %d, got %d", cursoID, len(evaluaciones))
	}
	if evaluaciones[0].Nombre != "Prueba Parcial" {
		t.Errorf("unexpected evaluacion %q", evaluaciones[0].Nombre)
	}
}

func TestEvaluacionService_ListByCursoMissing(t *testing.T) {
	service, _, _ := newTestEvaluacionService(t)

	_, err := service.ListByCurso(context.Background(), 999)
	if !errors.Is(err, ErrCursoNotFound) {
		t.Errorf("expected ErrCursoNotFound, got %v", err)
	}
}

func TestEvaluacionService_UpdateChangesCurso(t *testing.T) {
	service, repo, cursoID := newTestEvaluacionService(t)
	ctx := context.Background()

	evaluacion, err := service.Create(ctx, evaluacionRequest(cursoID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	otroCurso := &models.Curso{Titulo: "Curso Destino"}
	if err := repo.curso.Create(ctx, otroCurso); err != nil {
		t.Fatalf("failed to seed curso: %v", err)
	}

	req := evaluacionRequest(otroCurso.ID)
	req.Nombre = "Prueba Reprogramada"
	updated, err := service.Update(ctx, evaluacion.ID, req)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.CursoID != otroCurso.ID {
		t.Errorf("expected CursoID %d, got %d", otroCurso.ID, updated.CursoID)
	}
	if updated.Nombre != "Prueba Reprogramada" {
		t.Errorf("expected updated nombre, got %q", updated.Nombre)
	}

	// Moving to a curso that does not exist is rejected.
	req.CursoID = 999
	if _, err := service.Update(ctx, evaluacion.ID, req); err == nil {
		t.Error("expected error for missing curso reference")
	}
}

func TestEvaluacionService_DeletePolicy(t *testing.T) {
	service, _, cursoID := newTestEvaluacionService(t)
	ctx := context.Background()

	evaluacion, err := service.Create(ctx, evaluacionRequest(cursoID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := service.Delete(ctx, evaluacion.ID)
	if err != nil || !deleted {
		t.Fatalf("expected successful delete, got deleted=%v err=%v", deleted, err)
	}

	deleted, err = service.Delete(ctx, evaluacion.ID)
	if err != nil {
		t.Fatalf("second Delete errored: %v", err)
	}
	if deleted {
		t.Error("second delete should report false")
	}
}
