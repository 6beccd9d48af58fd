package ports

import (
	"context"

	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
)

// ContributorSource lista los colaboradores de un repositorio en el host de
// control de versiones. Las implementaciones paginan de forma transparente.
type ContributorSource interface {
	ListContributors(ctx context.Context, org, repo string) ([]models.Contributor, error)
}
