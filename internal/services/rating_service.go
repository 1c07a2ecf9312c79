package services

import (
	"context"
	"errors"
	"sync"

	"sparehub/internal/catalog"
	"sparehub/internal/domain"
	"sparehub/internal/remote"
	"sparehub/internal/store"
)

// RatingSubmitter is the slice of the remote client the rating flow needs.
type RatingSubmitter interface {
	SubmitRating(ctx context.Context, sku string, value int) (remote.RatingResult, error)
}

// RatingService runs the per-SKU rating state machine for a profile:
// Unrated -> PendingConfirm -> Submitting -> Rated. Rated is terminal; the
// guard set persisted under rated_v2 rejects repeat attempts locally, without
// a network call.
type RatingService struct {
	Store  *store.Store
	Cat    *catalog.Catalog
	Ctx    domain.RatingContext
	Remote RatingSubmitter

	mu       sync.Mutex
	pending  map[string]int  // profile|sku -> tentatively selected value
	inflight map[string]bool // profile|sku with a submission outstanding
}

func NewRatingService(s *store.Store, cat *catalog.Catalog, rctx domain.RatingContext, rem RatingSubmitter) *RatingService {
	return &RatingService{
		Store: s, Cat: cat, Ctx: rctx, Remote: rem,
		pending:  make(map[string]int),
		inflight: make(map[string]bool),
	}
}

func pkey(profileID, sku string) string { return profileID + "|" + sku }

func (s *RatingService) ratedSet(profileID string) []string {
	rated := []string{}
	s.Store.Get(profileID, store.KeyRated, &rated)
	return rated
}

func (s *RatingService) valueMap(profileID string) map[string]int {
	vals := map[string]int{}
	s.Store.Get(profileID, store.KeyRatedValues, &vals)
	return vals
}

// Rated reports whether this profile already rated sku, and with what value.
func (s *RatingService) Rated(profileID, sku string) (int, bool) {
	for _, x := range s.ratedSet(profileID) {
		if x == sku {
			return s.valueMap(profileID)[sku], true
		}
	}
	return 0, false
}

// Eligible checks whether this profile may rate sku right now. Checked again
// at submit time; selection-time results are not trusted.
func (s *RatingService) Eligible(profileID, sku string) error {
	p, ok := s.Cat.BySKU(sku)
	if !ok {
		return domain.ErrUnknownProduct
	}
	if !s.Ctx.CanRate {
		return domain.ErrUnauthorized
	}
	if !s.Ctx.IsAuthenticated {
		return &domain.RedirectError{URL: s.Ctx.LoginURL}
	}
	if p.OwnerID != 0 && p.OwnerID == s.Ctx.CurrentUserID {
		return domain.ErrUnauthorized
	}
	if _, done := s.Rated(profileID, sku); done {
		return domain.ErrAlreadyRated
	}
	return nil
}

// Select tentatively picks a star value. Selecting again overwrites the
// pending value; nothing is persisted or sent until Submit.
func (s *RatingService) Select(profileID, sku string, value int) error {
	if value < 1 || value > 5 {
		return &domain.ValidationError{Field: "rating", Msg: "rating must be between 1 and 5"}
	}
	if err := s.Eligible(profileID, sku); err != nil {
		return err
	}
	s.mu.Lock()
	s.pending[pkey(profileID, sku)] = value
	s.mu.Unlock()
	return nil
}

// Cancel drops a pending selection, returning the SKU to Unrated.
func (s *RatingService) Cancel(profileID, sku string) {
	s.mu.Lock()
	delete(s.pending, pkey(profileID, sku))
	s.mu.Unlock()
}

func (s *RatingService) Pending(profileID, sku string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.pending[pkey(profileID, sku)]
	return v, ok
}

// Submit sends the rating to the remote endpoint. value 0 means "use the
// pending selection". On success the canonical product takes the server's
// authoritative rating/review figures and the local guard is persisted; on
// failure nothing local changes. A remote conflict is the exception: the
// server already holds a rating from this account, so the guard is persisted
// anyway to resolve the desync while the call itself is still reported as
// ErrAlreadyRated.
func (s *RatingService) Submit(ctx context.Context, profileID, sku string, value int) (remote.RatingResult, error) {
	if value == 0 {
		v, ok := s.Pending(profileID, sku)
		if !ok {
			return remote.RatingResult{}, &domain.ValidationError{Field: "rating", Msg: "no rating selected"}
		}
		value = v
	}
	if value < 1 || value > 5 {
		return remote.RatingResult{}, &domain.ValidationError{Field: "rating", Msg: "rating must be between 1 and 5"}
	}
	if err := s.Eligible(profileID, sku); err != nil {
		return remote.RatingResult{}, err
	}

	key := pkey(profileID, sku)
	s.mu.Lock()
	if s.inflight[key] {
		s.mu.Unlock()
		return remote.RatingResult{}, domain.ErrSubmitPending
	}
	s.inflight[key] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
	}()

	res, err := s.Remote.SubmitRating(ctx, sku, value)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRated) {
			// 409 reconciliation: the server-side rating wins.
			s.markRated(profileID, sku, value)
			s.Cancel(profileID, sku)
		}
		return remote.RatingResult{}, err
	}

	s.Cat.ApplyRating(sku, res.Rating, res.Reviews)
	if err := s.markRated(profileID, sku, value); err != nil {
		return res, err
	}
	s.Cancel(profileID, sku)
	return res, nil
}

func (s *RatingService) markRated(profileID, sku string, value int) error {
	rated := s.ratedSet(profileID)
	present := false
	for _, x := range rated {
		if x == sku {
			present = true
			break
		}
	}
	if !present {
		rated = append(rated, sku)
	}
	vals := s.valueMap(profileID)
	vals[sku] = value

	if err := s.Store.Set(profileID, store.KeyRated, rated); err != nil {
		return err
	}
	return s.Store.Set(profileID, store.KeyRatedValues, vals)
}
