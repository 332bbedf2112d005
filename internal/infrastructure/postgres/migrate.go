package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS inventario (
	bodega   SMALLINT NOT NULL,
	cafe     SMALLINT NOT NULL,
	cantidad BIGINT   NOT NULL,
	PRIMARY KEY (bodega, cafe)
);
CREATE TABLE IF NOT EXISTS precios (
	cafe   SMALLINT PRIMARY KEY,
	precio NUMERIC  NOT NULL
);
CREATE TABLE IF NOT EXISTS historial (
	id      BIGSERIAL PRIMARY KEY,
	fecha   TIMESTAMP NOT NULL,
	mensaje TEXT      NOT NULL
);`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}
