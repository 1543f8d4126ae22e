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
	credentialsTable   = "platform_credentials pc"
	credentialsColumns = "pc.user_id, pc.platform, pc.access_token, pc.refresh_token, pc.expires_at, pc.account_data, pc.created_at, pc.updated_at"
)

type CredentialRepository interface {
	// Upsert grava a credencial sobrescrevendo a anterior de (user_id, platform)
	Upsert(credential *domain.PlatformCredential) error
	GetByUserAndPlatform(userID int, platform domain.Platform) (*domain.PlatformCredential, error)
	ListByUser(userID int) ([]*domain.PlatformCredential, error)
	Delete(userID int, platform domain.Platform) (bool, error)
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

func (r *credentialRepository) Upsert(credential *domain.PlatformCredential) error {
	var accountDataJSON []byte
	var err error

	if credential.AccountData != nil {
		accountDataJSON, err = json.Marshal(credential.AccountData)
		if err != nil {
			return fmt.Errorf("erro ao serializar account_data para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("platform_credentials").
		Columns("user_id", "platform", "access_token", "refresh_token", "expires_at", "account_data").
		Values(
			credential.UserID,
			credential.Platform,
			credential.AccessToken,
			credential.RefreshToken,
			credential.ExpiresAt,
			accountDataJSON,
		).
		Suffix(`
			ON CONFLICT (user_id, platform) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				expires_at = EXCLUDED.expires_at,
				account_data = EXCLUDED.account_data,
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

func (r *credentialRepository) GetByUserAndPlatform(userID int, platform domain.Platform) (*domain.PlatformCredential, error) {
	query, args, err := squirrel.
		Select(credentialsColumns).
		From(credentialsTable).
		Where(squirrel.Eq{"pc.user_id": userID, "pc.platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	credential, err := r.scanCredentialRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear credencial: %w", err)
	}

	return credential, nil
}

func (r *credentialRepository) ListByUser(userID int) ([]*domain.PlatformCredential, error) {
	query, args, err := squirrel.
		Select(credentialsColumns).
		From(credentialsTable).
		Where(squirrel.Eq{"pc.user_id": userID}).
		OrderBy("pc.platform ASC").
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

	credentials := make([]*domain.PlatformCredential, 0)
	for rows.Next() {
		credential := &domain.PlatformCredential{}
		var accountDataJSON []byte

		err := rows.Scan(
			&credential.UserID,
			&credential.Platform,
			&credential.AccessToken,
			&credential.RefreshToken,
			&credential.ExpiresAt,
			&accountDataJSON,
			&credential.CreatedAt,
			&credential.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear credencial: %w", err)
		}

		if accountDataJSON != nil {
			if err := json.Unmarshal(accountDataJSON, &credential.AccountData); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de account_data: %w", err)
			}
		}

		credentials = append(credentials, credential)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return credentials, nil
}

func (r *credentialRepository) Delete(userID int, platform domain.Platform) (bool, error) {
	query, args, err := squirrel.
		Delete("platform_credentials").
		Where(squirrel.Eq{"user_id": userID, "platform": platform}).
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

func (r *credentialRepository) scanCredentialRow(row *sql.Row) (*domain.PlatformCredential, error) {
	credential := &domain.PlatformCredential{}
	var accountDataJSON []byte

	err := row.Scan(
		&credential.UserID,
		&credential.Platform,
		&credential.AccessToken,
		&credential.RefreshToken,
		&credential.ExpiresAt,
		&accountDataJSON,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if accountDataJSON != nil {
		if err := json.Unmarshal(accountDataJSON, &credential.AccountData); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de account_data: %w", err)
		}
	}

	return credential, nil
}
