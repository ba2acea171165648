package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

const (
	viewConfigsTable = "view_configs vc"
)

type ViewConfigRepository interface {
	GetByName(name string) (*domain.ViewConfig, error)
	List() ([]*domain.ViewConfig, error)
	SaveOrUpdate(cfg *domain.ViewConfig) error
}

type viewConfigRepository struct {
	conn *postgres.Connection
}

func NewViewConfigRepository(conn *postgres.Connection) ViewConfigRepository {
	return &viewConfigRepository{
		conn: conn,
	}
}

func (r *viewConfigRepository) GetByName(name string) (*domain.ViewConfig, error) {
	query, args, err := squirrel.
		Select("vc.name, vc.columns").
		From(viewConfigsTable).
		Where(squirrel.Eq{"vc.name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	cfg := &domain.ViewConfig{}
	var columnsJSON []byte

	if err := row.Scan(&cfg.Name, &columnsJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração de exibição: %w", err)
	}

	if columnsJSON != nil {
		if err := json.Unmarshal(columnsJSON, &cfg.Columns); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de columns: %w", err)
		}
	}

	return cfg, nil
}

func (r *viewConfigRepository) List() ([]*domain.ViewConfig, error) {
	query, args, err := squirrel.
		Select("vc.name, vc.columns").
		From(viewConfigsTable).
		OrderBy("vc.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	configs := make([]*domain.ViewConfig, 0)
	for rows.Next() {
		cfg := &domain.ViewConfig{}
		var columnsJSON []byte

		if err := rows.Scan(&cfg.Name, &columnsJSON); err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração de exibição: %w", err)
		}

		if columnsJSON != nil {
			if err := json.Unmarshal(columnsJSON, &cfg.Columns); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de columns: %w", err)
			}
		}

		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}

func (r *viewConfigRepository) SaveOrUpdate(cfg *domain.ViewConfig) error {
	columnsJSON, err := json.Marshal(cfg.Columns)
	if err != nil {
		return fmt.Errorf("erro ao serializar columns para JSON: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("view_configs").
		Columns("id", "name", "columns").
		Values(
			id,
			cfg.Name,
			columnsJSON,
		).
		Suffix(`
			ON CONFLICT (name) DO UPDATE SET
				columns = EXCLUDED.columns,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
