package protein_fx

import (
	"go.uber.org/fx"

	"fittrack/internal/repositories"
	"fittrack/internal/services"
)

var Module = fx.Provide(
	provideProteinService)

func provideProteinService(accountRepo repositories.AccountRepository) services.ProteinServiceInterface {
	return services.NewProteinService(accountRepo)
}
