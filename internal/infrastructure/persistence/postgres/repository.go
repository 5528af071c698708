package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// repository é a base comum dos repositórios: extrai a transação do contexto
// e aplica o filtro padrão de soft delete.
type repository struct {
	db *gorm.DB
}

// getDB extrai DB do contexto (para suportar transações)
func (r *repository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// live retorna o DB já com o filtro de soft delete aplicado.
// Todas as leituras passam por aqui; quem precisa enxergar registros
// deletados usa getDB diretamente.
func (r *repository) live(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).Where("deleted_at IS NULL")
}

// unixPtr converte *time.Time para *int64 (colunas de timestamp)
func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ts := t.Unix()
	return &ts
}

// timePtr converte *int64 para *time.Time
func timePtr(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0)
	return &t
}
