package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

const (
	reportLogsTable = "report_logs rl"
)

// ReportLogRepository registra quando o último relatório de cada conta foi
// gerado, base para a janela de espera entre gerações.
type ReportLogRepository interface {
	GetLastGeneratedAt(accountID string) (*time.Time, error)
	SaveGeneratedAt(accountID string, generatedAt time.Time) error
}

type reportLogRepository struct {
	conn *postgres.Connection
}

func NewReportLogRepository(conn *postgres.Connection) ReportLogRepository {
	return &reportLogRepository{
		conn: conn,
	}
}

func (r *reportLogRepository) GetLastGeneratedAt(accountID string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("rl.generated_at").
		From(reportLogsTable).
		Where(squirrel.Eq{"rl.account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	var generatedAt time.Time
	if err := row.Scan(&generatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de geração: %w", err)
	}

	return &generatedAt, nil
}

func (r *reportLogRepository) SaveGeneratedAt(accountID string, generatedAt time.Time) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("report_logs").
		Columns("id", "account_id", "generated_at").
		Values(
			id,
			accountID,
			generatedAt,
		).
		Suffix(`
			ON CONFLICT (account_id) DO UPDATE SET
				generated_at = EXCLUDED.generated_at,
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
