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
	campaignsTable   = "campaigns c"
	campaignsColumns = "c.id, c.name, c.platform, c.status, c.daily_budget, c.currency, c.spend, c.revenue, c.conversions, c.impressions, c.ctr, c.cpc, c.created_at, c.updated_at"
)

type CampaignRepository interface {
	List(filters *domain.CampaignFilters) ([]*domain.Campaign, error)
	GetByID(id string) (*domain.Campaign, error)
	Create(campaign *domain.Campaign) error
	Update(campaign *domain.Campaign) error
	Delete(id string) (bool, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) List(filters *domain.CampaignFilters) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Platform != nil {
			builder = builder.Where(squirrel.Eq{"c.platform": *filters.Platform})
		}
		if filters.Status != nil {
			builder = builder.Where(squirrel.Eq{"c.status": *filters.Status})
		}
		if filters.StartDate != nil {
			builder = builder.Where(squirrel.GtOrEq{"c.created_at": filters.StartDate.Format(time.RFC3339)})
		}
		if filters.EndDate != nil {
			builder = builder.Where(squirrel.LtOrEq{"c.created_at": filters.EndDate.Format(time.RFC3339)})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	campaign := &domain.Campaign{}
	err = row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Platform,
		&campaign.Status,
		&campaign.DailyBudget,
		&campaign.Currency,
		&campaign.Spend,
		&campaign.Revenue,
		&campaign.Conversions,
		&campaign.Impressions,
		&campaign.CTR,
		&campaign.CPC,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) Create(campaign *domain.Campaign) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "name", "platform", "status", "daily_budget", "currency", "spend", "revenue", "conversions", "impressions", "ctr", "cpc").
		Values(
			campaign.ID,
			campaign.Name,
			campaign.Platform,
			campaign.Status,
			campaign.DailyBudget,
			campaign.Currency,
			campaign.Spend,
			campaign.Revenue,
			campaign.Conversions,
			campaign.Impressions,
			campaign.CTR,
			campaign.CPC,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&campaign.CreatedAt, &campaign.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignRepository) Update(campaign *domain.Campaign) error {
	query, args, err := squirrel.StatementBuilder.
		Update("campaigns").
		Set("name", campaign.Name).
		Set("platform", campaign.Platform).
		Set("status", campaign.Status).
		Set("daily_budget", campaign.DailyBudget).
		Set("spend", campaign.Spend).
		Set("revenue", campaign.Revenue).
		Set("conversions", campaign.Conversions).
		Set("impressions", campaign.Impressions).
		Set("ctr", campaign.CTR).
		Set("cpc", campaign.CPC).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID}).
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

func (r *campaignRepository) Delete(id string) (bool, error) {
	query, args, err := squirrel.
		Delete("campaigns").
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

func (r *campaignRepository) scanCampaign(rows *sql.Rows) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	err := rows.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Platform,
		&campaign.Status,
		&campaign.DailyBudget,
		&campaign.Currency,
		&campaign.Spend,
		&campaign.Revenue,
		&campaign.Conversions,
		&campaign.Impressions,
		&campaign.CTR,
		&campaign.CPC,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return campaign, nil
}
