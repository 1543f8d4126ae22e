package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/growzzy/growzzy-os-api/infrastructure/database/postgres"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/lib/pq"
)

const (
	reportsTable   = "reports r"
	reportsColumns = "r.id, r.title, r.type, r.status, r.metrics, r.generated_at"
)

type ReportRepository interface {
	List() ([]*domain.Report, error)
	GetByID(id string) (*domain.Report, error)
	Create(report *domain.Report) error
	Delete(id string) (bool, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) List() ([]*domain.Report, error) {
	query, args, err := squirrel.
		Select(reportsColumns).
		From(reportsTable).
		OrderBy("r.generated_at DESC").
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

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		report := &domain.Report{}
		var metricsJSON []byte

		err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Type,
			&report.Status,
			&metricsJSON,
			&report.GeneratedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}

		if metricsJSON != nil {
			metrics := &domain.ReportMetrics{}
			if err := json.Unmarshal(metricsJSON, metrics); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
			}
			report.Metrics = metrics
		}

		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *reportRepository) GetByID(id string) (*domain.Report, error) {
	query, args, err := squirrel.
		Select(reportsColumns).
		From(reportsTable).
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	report := &domain.Report{}
	var metricsJSON []byte
	err = row.Scan(
		&report.ID,
		&report.Title,
		&report.Type,
		&report.Status,
		&metricsJSON,
		&report.GeneratedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	if metricsJSON != nil {
		metrics := &domain.ReportMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
		report.Metrics = metrics
	}

	return report, nil
}

func (r *reportRepository) Create(report *domain.Report) error {
	var metricsJSON []byte
	var err error

	if report.Metrics != nil {
		metricsJSON, err = json.Marshal(report.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar metrics para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("reports").
		Columns("id", "title", "type", "status", "metrics").
		Values(
			report.ID,
			report.Title,
			report.Type,
			report.Status,
			metricsJSON,
		).
		Suffix("RETURNING generated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&report.GeneratedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *reportRepository) Delete(id string) (bool, error) {
	query, args, err := squirrel.
		Delete("reports").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}
