package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"lifeplanner/internal/event/repository"
	"lifeplanner/pkg/gemini"
	pkgLog "lifeplanner/pkg/log"
)

const (
	// extractionCacheSize bounds the duplicate-submission cache.
	extractionCacheSize = 256

	// extractionCacheTTL keeps cached extractions fresh enough that
	// date-relative prompts ("tomorrow") cannot go stale.
	extractionCacheTTL = 10 * time.Minute
)

type implUseCase struct {
	l    pkgLog.Logger
	llm  gemini.IGemini
	repo repository.Repository

	// cache absorbs repeated identical submissions without a second LLM
	// round trip. Keyed by input hash; only successful extractions enter.
	cache *expirable.LRU[string, gemini.Candidate]

	// mu serializes every store mutation together with the issue
	// re-detection it triggers, so no reader observes stale flags.
	mu sync.Mutex

	now func() time.Time
}

// New creates a new event UseCase instance. A nil now defaults to time.Now;
// tests inject a fixed clock.
func New(l pkgLog.Logger, llm gemini.IGemini, repo repository.Repository, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:     l,
		llm:   llm,
		repo:  repo,
		cache: expirable.NewLRU[string, gemini.Candidate](extractionCacheSize, nil, extractionCacheTTL),
		now:   now,
	}
}
