package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/edu-tech-cl/platform-service/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportCatalogo builds an XLSX workbook with one sheet for courses and one
// for their assessments.
func (s *exportService) ExportCatalogo(ctx context.Context) ([]byte, error) {
	cursos, err := s.repo.Curso().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cursos: %w", err)
	}

	evaluaciones, err := s.repo.Evaluacion().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluaciones: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const cursosSheet = "Cursos"
	if err := f.SetSheetName("Sheet1", cursosSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	cursoHeaders := []string{"ID", "Titulo", "Categoria", "Instructor", "Price", "Popularidad"}
	for i, header := range cursoHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(cursosSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, curso := range cursos {
		values := []interface{}{curso.ID, curso.Titulo, curso.Categoria, curso.Instructor, curso.Price, curso.Popularidad}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(cursosSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write curso row: %w", err)
			}
		}
	}

	const evaluacionesSheet = "Evaluaciones"
	if _, err := f.NewSheet(evaluacionesSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	evalHeaders := []string{"ID", "Nombre", "Tipo", "Estado", "FechaInicio", "FechaTermino", "CalificacionMaxima", "CursoID"}
	for i, header := range evalHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(evaluacionesSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, evaluacion := range evaluaciones {
		values := []interface{}{
			evaluacion.ID,
			evaluacion.Nombre,
			evaluacion.Tipo,
			evaluacion.Estado,
			evaluacion.FechaInicio.Format("2006-01-02"),
			evaluacion.FechaTermino.Format("2006-01-02"),
			evaluacion.CalificacionMaxima,
			evaluacion.CursoID,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(evaluacionesSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write evaluacion row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.InfoContext(ctx, "Catalogo exported",
		"cursos", len(cursos),
		"evaluaciones", len(evaluaciones))

	return buf.Bytes(), nil
}
