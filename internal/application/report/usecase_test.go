package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/application/report"
	"github.com/jhoicas/inventario-cafe/internal/domain"
)

type stubSource struct {
	state *dto.DashboardDTO
	err   error
	lines int
}

func (s *stubSource) Dashboard(_ context.Context, historyLines int) (*dto.DashboardDTO, error) {
	s.lines = historyLines
	return s.state, s.err
}

type stubGenerator struct{}

func (stubGenerator) GenerateInventoryPDF(context.Context, *dto.DashboardDTO) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func (stubGenerator) ExportInventoryXML(context.Context, *dto.DashboardDTO) ([]byte, error) {
	return []byte("<inventario/>"), nil
}

func TestGenerate_Formatos(t *testing.T) {
	src := &stubSource{state: &dto.DashboardDTO{GeneratedAt: time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)}}
	uc := report.NewReportUseCase(src, stubGenerator{}, stubGenerator{}, 25)

	data, name, ct, err := uc.Generate(context.Background(), report.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(data))
	assert.Equal(t, "inventario-20240501-083000.pdf", name)
	assert.Equal(t, "application/pdf", ct)
	assert.Equal(t, 25, src.lines)

	_, name, ct, err = uc.Generate(context.Background(), report.FormatXML)
	require.NoError(t, err)
	assert.Equal(t, "inventario-20240501-083000.xml", name)
	assert.Equal(t, "application/xml", ct)
}

func TestGenerate_FormatoDesconocido(t *testing.T) {
	uc := report.NewReportUseCase(&stubSource{state: &dto.DashboardDTO{}}, stubGenerator{}, stubGenerator{}, 10)
	_, _, _, err := uc.Generate(context.Background(), "csv")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_ErrorDeEstado(t *testing.T) {
	uc := report.NewReportUseCase(&stubSource{err: domain.ErrMissingFile}, stubGenerator{}, stubGenerator{}, 10)
	_, _, _, err := uc.Generate(context.Background(), report.FormatPDF)
	assert.True(t, errors.Is(err, domain.ErrMissingFile))
}
