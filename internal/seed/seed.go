// Package seed installs the default dataset a fresh installation falls
// back to, so an empty database never presents an unusable login.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"jobsreport/internal/model"
	"jobsreport/internal/repository"
)

const defaultPassword = "password123"

// Repositories bundles the stores the seeder writes to.
type Repositories struct {
	Users          repository.UserRepository
	Clients        repository.ClientRepository
	Projects       repository.ProjectRepository
	Subcontractors repository.SubcontractorRepository
}

// ApplyIfEmpty installs the default dataset when no users exist yet.
// Returns true if seeding ran.
func ApplyIfEmpty(ctx context.Context, repos Repositories) (bool, error) {
	count, err := repos.Users.CountAll(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if err := Apply(ctx, repos); err != nil {
		return false, err
	}
	return true, nil
}

// Apply inserts the default subcontractor, users, clients and projects.
func Apply(ctx context.Context, repos Repositories) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	sub := &model.Subcontractor{
		Name:          "Impresa Gamma Srl",
		VATNumber:     "09876543210",
		ContactPerson: "Sig. Rossi",
		Phone:         "02-555666",
		Email:         "info@impresagamma.it",
		Status:        model.UserStatusActive,
	}
	if err := repos.Subcontractors.Create(ctx, sub); err != nil {
		return fmt.Errorf("seed subcontractor: %w", err)
	}

	users := []*model.User{
		{
			Name:         "Mario Rossi",
			Username:     "admin",
			PasswordHash: string(hash),
			Email:        "mario@works-summary.it",
			Role:         model.RoleAdmin,
			Status:       model.UserStatusActive,
			HourlyRate:   decimal.NewFromInt(25),
			Phone:        "3331234567",
			Address:      "Via Roma 1, Milano",
			Notes:        "System administrator",
		},
		{
			Name:            "Luca Bianchi",
			Username:        "luca",
			PasswordHash:    string(hash),
			Email:           "luca@works-summary.it",
			Role:            model.RoleOperator,
			Status:          model.UserStatusActive,
			HourlyRate:      decimal.NewFromInt(20),
			ExtraCost:       decimal.NewFromInt(5),
			Phone:           "3339876543",
			Address:         "Via Milano 2, Roma",
			Notes:           "Field technician",
			SubcontractorID: &sub.ID,
		},
		{
			Name:         "Giulia Verdi",
			Username:     "giulia",
			PasswordHash: string(hash),
			Email:        "giulia@works-summary.it",
			Role:         model.RoleSupervisor,
			Status:       model.UserStatusActive,
			HourlyRate:   decimal.NewFromInt(22),
			Phone:        "3335554443",
			Address:      "Via Dante 5, Torino",
			Notes:        "Site supervisor",
		},
	}
	for _, u := range users {
		if err := repos.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}

	clients := []*model.Client{
		{
			Name:             "Edilizia Futura S.p.A.",
			VATNumber:        "12345678901",
			BillingAddress:   "Via Roma 10, Milano",
			MainContactName:  "Ing. Neri",
			MainContactPhone: "02-123456",
			Email:            "amministrazione@ediliziafutura.it",
			Status:           model.ClientStatusActive,
		},
		{
			Name:             "Residenza il Bosco",
			VATNumber:        "09827364512",
			BillingAddress:   "Piazza Garibaldi 2, Monza",
			MainContactName:  "Arch. Bianchi",
			MainContactPhone: "039-223344",
			Email:            "info@ilbosco.it",
			Status:           model.ClientStatusActive,
		},
		{
			Name:             "Global Service S.p.A.",
			VATNumber:        "11223344556",
			BillingAddress:   "Corso Italia 45, Milano",
			MainContactName:  "Dott. Ferrari",
			MainContactPhone: "02-998877",
			Email:            "segreteria@globalservice.it",
			Status:           model.ClientStatusActive,
		},
	}
	for _, c := range clients {
		if err := repos.Clients.Create(ctx, c); err != nil {
			return fmt.Errorf("seed client %s: %w", c.Name, err)
		}
	}

	projects := []*model.Project{
		{
			ClientID:     clients[0].ID,
			Name:         "Ristrutturazione Condominio Sole",
			Description:  "Facade and roof renovation",
			Status:       model.ProjectStatusActive,
			SellingPrice: decimal.NewFromInt(65),
		},
		{
			ClientID:     clients[1].ID,
			Name:         "Impianto Fotovoltaico Villa Blu",
			Description:  "Panel and storage installation",
			Status:       model.ProjectStatusActive,
			SellingPrice: decimal.NewFromInt(55),
		},
		{
			ClientID:     clients[2].ID,
			Name:         "Manutenzione Straordinaria Centro Verde",
			Description:  "Urgent pipework intervention",
			Status:       model.ProjectStatusActive,
			SellingPrice: decimal.NewFromInt(70),
		},
	}
	for _, p := range projects {
		if err := repos.Projects.Create(ctx, p); err != nil {
			return fmt.Errorf("seed project %s: %w", p.Name, err)
		}
	}

	log.Printf("Seeded %d users, %d clients, %d projects, 1 subcontractor", len(users), len(clients), len(projects))
	return nil
}
