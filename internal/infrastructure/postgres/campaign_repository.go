package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo implementación del puerto CampaignRepository sobre PostgreSQL.
type CampaignRepo struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository construye el adaptador de persistencia para campañas.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `id, company_id, name, description, type, discount_pct, budget, starts_at, ends_at, status, created_at, updated_at`

// Create persiste una nueva campaña.
func (r *CampaignRepo) Create(campaign *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		campaign.ID, campaign.CompanyID, campaign.Name, campaign.Description,
		campaign.Type, campaign.DiscountPct, campaign.Budget,
		campaign.StartsAt, campaign.EndsAt, campaign.Status,
		campaign.CreatedAt, campaign.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByCompanyAndID obtiene una campaña de la empresa.
func (r *CampaignRepo) GetByCompanyAndID(companyID, id string) (*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE company_id = $1 AND id = $2`
	var c entity.Campaign
	err := r.pool.QueryRow(context.Background(), query, companyID, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Description,
		&c.Type, &c.DiscountPct, &c.Budget,
		&c.StartsAt, &c.EndsAt, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// ListByCompany lista campañas de la empresa con filtros opcionales.
func (r *CampaignRepo) ListByCompany(companyID string, f repository.CampaignFilter) ([]*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE company_id = $1`
	args := []any{companyID}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY starts_at DESC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var list []*entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.Type, &c.DiscountPct, &c.Budget, &c.StartsAt, &c.EndsAt, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una campaña.
func (r *CampaignRepo) Update(campaign *entity.Campaign) error {
	query := `
		UPDATE campaigns SET name = $3, description = $4, discount_pct = $5, budget = $6, starts_at = $7, ends_at = $8, status = $9, updated_at = $10
		WHERE company_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		campaign.CompanyID, campaign.ID, campaign.Name, campaign.Description,
		campaign.DiscountPct, campaign.Budget, campaign.StartsAt, campaign.EndsAt,
		campaign.Status, campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

// Delete elimina una campaña de la empresa (el caso de uso solo borra drafts).
func (r *CampaignRepo) Delete(companyID, id string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM campaigns WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}
