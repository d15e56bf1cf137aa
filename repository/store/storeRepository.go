// repository/store/repo.go
package storerepo

import "github.com/aleksiojala-maker/hihoneyapp/model"

// Repo is the static store catalog. Stores are fixed at load time and never
// mutated, so lookups need no context or error channel.
type Repo interface {
	List() []model.Store
	Get(id string) (*model.Store, bool)
}

type repo struct {
	stores []model.Store
	byID   map[string]model.Store
}

func New(stores []model.Store) Repo {
	byID := make(map[string]model.Store, len(stores))
	for _, s := range stores {
		byID[s.ID] = s
	}
	return &repo{stores: stores, byID: byID}
}

func (r *repo) List() []model.Store {
	out := make([]model.Store, len(r.stores))
	copy(out, r.stores)
	return out
}

func (r *repo) Get(id string) (*model.Store, bool) {
	s, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &s, true
}

// DemoStores returns the two Hi Honey locations the service launches with.
func DemoStores() []model.Store {
	return []model.Store{
		{
			ID:          "helsinki-oulunkyla",
			Name:        "Hi Honey Helsinki Oulunkylä",
			Address:     "Maaherrantie 34",
			City:        "Helsinki",
			Description: "Our flagship studio located in the heart of Oulunkylä. We offer a full range of alterations, custom bridal wear, and our exclusive rental collection.",
			Hours:       "Tue-Fri 10-17, Sat by appointment",
			Phone:       "+358 40 123 4567",
			Image:       "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?w=800&q=80",
		},
		{
			ID:          "espoo-rebridal",
			Name:        "Hi Honey Espoo (ReBridal)",
			Address:     "Kauppakeskus Ainoa",
			City:        "Espoo",
			Description: "Located inside ReBridal, focusing on pre-loved gowns and accessories. Pick up your rentals while browsing sustainable fashion.",
			Hours:       "Mon-Fri 10-20, Sat 10-18",
			Phone:       "+358 50 987 6543",
			Image:       "https://images.unsplash.com/photo-1549417229-7686ac5595fd?w=800&q=80",
		},
	}
}
