package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/growzzy/growzzy-os-api/infrastructure/database/postgres"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/lib/pq"
)

const (
	automationsTable   = "automations a"
	automationsColumns = "a.id, a.name, a.trigger, a.condition, a.action, a.status, a.last_run, a.next_run, a.created_at, a.updated_at"
)

type AutomationRepository interface {
	List() ([]*domain.Automation, error)
	GetByID(id string) (*domain.Automation, error)
	Create(automation *domain.Automation) error
	Update(automation *domain.Automation) error
	Delete(id string) (bool, error)
	// ListDue retorna as automações ativas cujo next_run já passou
	ListDue(now time.Time) ([]*domain.Automation, error)
}

type automationRepository struct {
	conn *postgres.Connection
}

func NewAutomationRepository(conn *postgres.Connection) AutomationRepository {
	return &automationRepository{
		conn: conn,
	}
}

func (r *automationRepository) List() ([]*domain.Automation, error) {
	query, args, err := squirrel.
		Select(automationsColumns).
		From(automationsTable).
		OrderBy("a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAutomations(query, args...)
}

func (r *automationRepository) ListDue(now time.Time) ([]*domain.Automation, error) {
	query, args, err := squirrel.
		Select(automationsColumns).
		From(automationsTable).
		Where(squirrel.Eq{"a.status": domain.AutomationStatusActive}).
		Where(squirrel.Lt{"a.next_run": now}).
		OrderBy("a.next_run ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAutomations(query, args...)
}

func (r *automationRepository) queryAutomations(query string, args ...interface{}) ([]*domain.Automation, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	automations := make([]*domain.Automation, 0)
	for rows.Next() {
		automation := &domain.Automation{}
		err := rows.Scan(
			&automation.ID,
			&automation.Name,
			&automation.Trigger,
			&automation.Condition,
			&automation.Action,
			&automation.Status,
			&automation.LastRun,
			&automation.NextRun,
			&automation.CreatedAt,
			&automation.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear automação: %w", err)
		}
		automations = append(automations, automation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return automations, nil
}

func (r *automationRepository) GetByID(id string) (*domain.Automation, error) {
	query, args, err := squirrel.
		Select(automationsColumns).
		From(automationsTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	automation := &domain.Automation{}
	err = row.Scan(
		&automation.ID,
		&automation.Name,
		&automation.Trigger,
		&automation.Condition,
		&automation.Action,
		&automation.Status,
		&automation.LastRun,
		&automation.NextRun,
		&automation.CreatedAt,
		&automation.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear automação: %w", err)
	}

	return automation, nil
}

func (r *automationRepository) Create(automation *domain.Automation) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("automations").
		Columns("id", "name", "trigger", "condition", "action", "status", "last_run", "next_run").
		Values(
			automation.ID,
			automation.Name,
			automation.Trigger,
			automation.Condition,
			automation.Action,
			automation.Status,
			automation.LastRun,
			automation.NextRun,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&automation.CreatedAt, &automation.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *automationRepository) Update(automation *domain.Automation) error {
	query, args, err := squirrel.StatementBuilder.
		Update("automations").
		Set("name", automation.Name).
		Set("trigger", automation.Trigger).
		Set("condition", automation.Condition).
		Set("action", automation.Action).
		Set("status", automation.Status).
		Set("last_run", automation.LastRun).
		Set("next_run", automation.NextRun).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": automation.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *automationRepository) Delete(id string) (bool, error) {
	query, args, err := squirrel.
		Delete("automations").
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
