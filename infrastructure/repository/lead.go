package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/growzzy/growzzy-os-api/infrastructure/database/postgres"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/lib/pq"
)

const (
	leadsTable   = "leads l"
	leadsColumns = "l.id, l.name, l.email, l.phone, l.company, l.value, l.status, l.source, l.notes, l.tags, l.score, l.created_at, l.updated_at"
)

type LeadRepository interface {
	List() ([]*domain.Lead, error)
	GetByID(id string) (*domain.Lead, error)
	Create(lead *domain.Lead) error
	Update(lead *domain.Lead) error
	UpdateStatus(id string, status domain.LeadStatus) (bool, error)
	Delete(id string) (bool, error)
	Count() (int, error)
}

type leadRepository struct {
	conn *postgres.Connection
}

func NewLeadRepository(conn *postgres.Connection) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func (r *leadRepository) List() ([]*domain.Lead, error) {
	query, args, err := squirrel.
		Select(leadsColumns).
		From(leadsTable).
		OrderBy("l.created_at DESC").
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

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := r.scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return leads, nil
}

func (r *leadRepository) GetByID(id string) (*domain.Lead, error) {
	query, args, err := squirrel.
		Select(leadsColumns).
		From(leadsTable).
		Where(squirrel.Eq{"l.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	lead := &domain.Lead{}
	var tags pq.StringArray
	err = row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Company,
		&lead.Value,
		&lead.Status,
		&lead.Source,
		&lead.Notes,
		&tags,
		&lead.Score,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lead: %w", err)
	}
	lead.Tags = tags

	return lead, nil
}

func (r *leadRepository) Create(lead *domain.Lead) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("leads").
		Columns("id", "name", "email", "phone", "company", "value", "status", "source", "notes", "tags", "score").
		Values(
			lead.ID,
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.Company,
			lead.Value,
			lead.Status,
			lead.Source,
			lead.Notes,
			pq.Array(lead.Tags),
			lead.Score,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&lead.CreatedAt, &lead.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *leadRepository) Update(lead *domain.Lead) error {
	query, args, err := squirrel.StatementBuilder.
		Update("leads").
		Set("name", lead.Name).
		Set("email", lead.Email).
		Set("phone", lead.Phone).
		Set("company", lead.Company).
		Set("value", lead.Value).
		Set("status", lead.Status).
		Set("source", lead.Source).
		Set("notes", lead.Notes).
		Set("tags", pq.Array(lead.Tags)).
		Set("score", lead.Score).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": lead.ID}).
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

func (r *leadRepository) UpdateStatus(id string, status domain.LeadStatus) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Update("leads").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
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

func (r *leadRepository) Delete(id string) (bool, error) {
	query, args, err := squirrel.
		Delete("leads").
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

func (r *leadRepository) Count() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("leads").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar leads: %w", err)
	}

	return count, nil
}

func (r *leadRepository) scanLead(rows *sql.Rows) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var tags pq.StringArray

	err := rows.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Company,
		&lead.Value,
		&lead.Status,
		&lead.Source,
		&lead.Notes,
		&tags,
		&lead.Score,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	lead.Tags = tags

	return lead, nil
}
