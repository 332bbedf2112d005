package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/domain/repository"
	"github.com/jhoicas/inventario-cafe/pkg/textenc"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo historial de movimientos en un archivo de texto, una línea por evento.
type InventoryMovementRepo struct {
	path string
	now  func() time.Time
}

// NewInventoryMovementRepository construye el adaptador sobre el archivo indicado.
func NewInventoryMovementRepository(path string) *InventoryMovementRepo {
	return &InventoryMovementRepo{path: path, now: time.Now}
}

// WithClock reemplaza el reloj usado para las marcas de tiempo.
func (r *InventoryMovementRepo) WithClock(now func() time.Time) *InventoryMovementRepo {
	r.now = now
	return r
}

// Append agrega "[YYYY-MM-DD HH:MM:SS] <mensaje>" al final del archivo, siempre en UTF-8.
func (r *InventoryMovementRepo) Append(_ context.Context, message string) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("abrir historial: %w", err)
	}
	line := entity.FormatHistoryLine(r.now(), message)
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("escribir historial: %w", err)
	}
	return f.Close()
}

// Recent devuelve las últimas maxLines líneas, la más reciente primero.
// Con maxLines <= 0 devuelve todas. Si el archivo no existe lo crea vacío.
func (r *InventoryMovementRepo) Recent(_ context.Context, maxLines int) ([]string, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(r.path, nil, filePerm); err != nil {
				return nil, fmt.Errorf("crear historial: %w", err)
			}
			return []string{}, nil
		}
		return nil, fmt.Errorf("leer historial: %w", err)
	}
	return LastLines(textenc.Decode(raw), maxLines), nil
}

// LastLines separa text en líneas (\n, \r\n o \r) y devuelve las últimas n en orden inverso.
func LastLines(text string, n int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[len(lines)-1-i] = l
	}
	return out
}
