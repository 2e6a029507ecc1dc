package memory

import (
	"time"

	"finance-advisor-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type CodeRepository struct {
	cache *cache.Cache
}

// NewCodeRepository stores login codes with a 15 minute expiration, purging
// expired entries every 10 minutes.
func NewCodeRepository() contract.CodeRepository {
	c := cache.New(15*time.Minute, 10*time.Minute)
	return &CodeRepository{
		cache: c,
	}
}

func (r *CodeRepository) Save(email, code string) {
	r.cache.Set(email, code, cache.DefaultExpiration)
}

func (r *CodeRepository) Get(email string) (string, bool) {
	if x, found := r.cache.Get(email); found {
		return x.(string), true
	}
	return "", false
}

func (r *CodeRepository) Delete(email string) {
	r.cache.Delete(email)
}
