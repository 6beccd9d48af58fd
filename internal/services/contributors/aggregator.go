package contributors

import (
	"context"
	"sort"
	"sync"

	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/ports"
	"github.com/Tomas-vilte/DoraPulse/internal/logger"
)

const defaultWorkers = 4

// Aggregator merges per-repository contributor lists into one ranked team
// view. Fetches run on a bounded worker pool; the merge itself is
// serialized so the login-keyed map never sees concurrent writes.
type Aggregator struct {
	source  ports.ContributorSource
	workers int
}

// NewAggregator crea el agregador sobre la fuente de colaboradores dada.
func NewAggregator(source ports.ContributorSource) *Aggregator {
	return &Aggregator{
		source:  source,
		workers: defaultWorkers,
	}
}

type repoResult struct {
	repo         models.TeamRepo
	contributors []models.Contributor
	err          error
}

// TeamContributors aggregates contributors across the team's GitHub
// repositories and returns them ranked by total contributions, descending.
// A repository whose fetch fails is logged and skipped; if every repository
// fails the result is an empty list, not an error. Ties keep the order in
// which contributors were first encountered, following the team's
// repository list order.
func (a *Aggregator) TeamContributors(ctx context.Context, team models.Team) []models.Contributor {
	repos := make([]models.TeamRepo, 0, len(team.Repos))
	for _, repo := range team.Repos {
		if repo.Provider != models.RepoProviderGitHub {
			logger.Debug(ctx, "repositorio omitido por proveedor no soportado",
				"repo", repo.Name, "provider", string(repo.Provider))
			continue
		}
		repos = append(repos, repo)
	}

	results := a.fetchAll(ctx, repos)

	// Single-threaded fold, in repository list order so tie ranking and
	// breakdown append order stay deterministic.
	byLogin := make(map[string]*models.Contributor)
	var order []string
	for _, result := range results {
		if result.err != nil {
			logger.Error(ctx, "error al obtener colaboradores, repositorio omitido", result.err,
				"repo", result.repo.Name, "org", result.repo.Org)
			continue
		}

		for _, contributor := range result.contributors {
			entry := models.RepoContribution{
				Name:          result.repo.Name,
				Contributions: contributor.Contributions,
			}

			if existing, ok := byLogin[contributor.Login]; ok {
				existing.Contributions += contributor.Contributions
				existing.Repositories = append(existing.Repositories, entry)
				continue
			}

			seeded := contributor
			seeded.Repositories = []models.RepoContribution{entry}
			byLogin[contributor.Login] = &seeded
			order = append(order, contributor.Login)
		}
	}

	ranked := make([]models.Contributor, 0, len(order))
	for _, login := range order {
		ranked = append(ranked, *byLogin[login])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Contributions > ranked[j].Contributions
	})

	return ranked
}

// fetchAll runs the per-repository fetches on the worker pool and returns
// the results ordered like the input slice.
func (a *Aggregator) fetchAll(ctx context.Context, repos []models.TeamRepo) []repoResult {
	results := make([]repoResult, len(repos))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := a.workers
	if workers > len(repos) {
		workers = len(repos)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				repo := repos[i]
				contributors, err := a.source.ListContributors(ctx, repo.Org, repo.Name)
				results[i] = repoResult{
					repo:         repo,
					contributors: contributors,
					err:          err,
				}
			}
		}()
	}

	for i := range repos {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
