// seed puebla la base de datos con datos de demostración: una empresa con los
// cuatro módulos activos, usuarios de cada rol, territorios, clientes,
// catálogo de productos y una campaña de descuento activa.
//
// Uso: go run ./cmd/seed
//
// Es idempotente a nivel de empresa: si ya existe una empresa con el NIT demo,
// no vuelve a insertar nada.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fieldforce-api/pkg/config"
	"github.com/jhoicas/fieldforce-api/pkg/logger"
)

const (
	demoTaxID    = "900123456-7"
	demoPassword = "Demo1234!"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	territoryRepo := postgres.NewTerritoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)

	if existing, err := companyRepo.GetByTaxID(demoTaxID); err != nil {
		log.Fatal().Err(err).Msg("consultar empresa demo")
	} else if existing != nil {
		log.Info().Str("company_id", existing.ID).Msg("la empresa demo ya existe, nada que hacer")
		return
	}

	now := time.Now()

	company := &entity.Company{
		ID:        uuid.NewString(),
		Name:      "Distribuidora La Sabana",
		TaxID:     demoTaxID,
		Email:     "contacto@lasabana.example.com",
		Phone:     "+57 601 555 0100",
		Address:   "Calle 100 #15-20, Bogotá",
		Status:    entity.CompanyStatusActive,
		Plan:      entity.PlanPro,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(company); err != nil {
		log.Fatal().Err(err).Msg("crear empresa demo")
	}

	for _, mod := range []string{
		entity.ModuleFieldSales, entity.ModuleFieldMarketing,
		entity.ModulePromotions, entity.ModuleReporting,
	} {
		err := companyRepo.UpsertModule(&entity.CompanyModule{
			ID:          uuid.NewString(),
			CompanyID:   company.ID,
			ModuleName:  mod,
			IsActive:    true,
			ActivatedAt: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("module", mod).Msg("activar módulo")
		}
	}

	north := seedTerritory(log, territoryRepo, company.ID, "Bogotá Norte", "cundinamarca", now)
	south := seedTerritory(log, territoryRepo, company.ID, "Bogotá Sur", "cundinamarca", now)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña demo")
	}

	users := []*entity.User{
		{Email: "root@fieldforce.example.com", Name: "Root", Role: entity.RoleSuperAdmin},
		{Email: "admin@lasabana.example.com", Name: "Ana Admin", Role: entity.RoleCompanyAdmin},
		{Email: "gerente@lasabana.example.com", Name: "Gustavo Gerente", Role: entity.RoleAreaManager, TerritoryID: &north.ID},
		{Email: "vendedor.norte@lasabana.example.com", Name: "Valeria Vendedora", Role: entity.RoleFieldAgent, TerritoryID: &north.ID},
		{Email: "vendedor.sur@lasabana.example.com", Name: "Samuel Vendedor", Role: entity.RoleFieldAgent, TerritoryID: &south.ID},
	}
	for _, u := range users {
		u.ID = uuid.NewString()
		u.CompanyID = company.ID
		u.PasswordHash = string(hash)
		u.Status = "active"
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("crear usuario")
		}
	}

	customers := []*entity.Customer{
		{Name: "Supermercado El Vecino", TaxID: "830100200-1", City: "Bogotá", Address: "Cra 7 #120-15", TerritoryID: &north.ID},
		{Name: "Tienda Doña Marta", TaxID: "52800900-2", City: "Bogotá", Address: "Calle 170 #45-10", TerritoryID: &north.ID},
		{Name: "Minimercado El Tunal", TaxID: "79500100-3", City: "Bogotá", Address: "Av Boyacá #50 Sur-22", TerritoryID: &south.ID},
	}
	for _, c := range customers {
		c.ID = uuid.NewString()
		c.CompanyID = company.ID
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := customerRepo.Create(c); err != nil {
			log.Fatal().Err(err).Str("customer", c.Name).Msg("crear cliente")
		}
	}

	products := []*entity.Product{
		{SKU: "BEB-001", Name: "Gaseosa Cola 1.5L", Price: decimal.NewFromFloat(4500), Unit: "unidad"},
		{SKU: "BEB-002", Name: "Agua con gas 600ml x12", Price: decimal.NewFromFloat(18000), Unit: "caja"},
		{SKU: "SNK-001", Name: "Papas fritas 40g x24", Price: decimal.NewFromFloat(26400), Unit: "caja"},
		{SKU: "SNK-002", Name: "Maní salado 50g x12", Price: decimal.NewFromFloat(15600), Unit: "caja"},
	}
	for _, p := range products {
		p.ID = uuid.NewString()
		p.CompanyID = company.ID
		p.Active = true
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("crear producto")
		}
	}

	campaign := &entity.Campaign{
		ID:          uuid.NewString(),
		CompanyID:   company.ID,
		Name:        "Descuento de temporada",
		Description: "10% de descuento en todo el catálogo durante el trimestre",
		Type:        entity.CampaignTypePromotion,
		DiscountPct: decimal.NewFromInt(10),
		Budget:      decimal.NewFromInt(5000000),
		StartsAt:    now.AddDate(0, 0, -7),
		EndsAt:      now.AddDate(0, 3, 0),
		Status:      entity.CampaignStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := campaignRepo.Create(campaign); err != nil {
		log.Fatal().Err(err).Msg("crear campaña")
	}

	log.Info().
		Str("company_id", company.ID).
		Int("users", len(users)).
		Int("customers", len(customers)).
		Int("products", len(products)).
		Msg("datos demo creados; contraseña de todos los usuarios: " + demoPassword)
}

func seedTerritory(log *logger.Logger, repo *postgres.TerritoryRepo, companyID, name, region string, now time.Time) *entity.Territory {
	t := &entity.Territory{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      name,
		Region:    region,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(t); err != nil {
		log.Fatal().Err(err).Str("territory", name).Msg("crear territorio")
	}
	return t
}
