package repository

import "github.com/jhoicas/fieldforce-api/internal/domain/entity"

// CampaignFilter filtros opcionales para listados de campañas.
type CampaignFilter struct {
	Status string
	Type   string
	Limit  int
	Offset int
}

// CampaignRepository define el puerto de persistencia para Campaign.
type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	GetByCompanyAndID(companyID, id string) (*entity.Campaign, error)
	ListByCompany(companyID string, f CampaignFilter) ([]*entity.Campaign, error)
	Update(campaign *entity.Campaign) error
	Delete(companyID, id string) error
}
