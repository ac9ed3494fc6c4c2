package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"catalogview/internal/models"
	"catalogview/internal/repositories"
)

// ViewService manages product list views: one catalog fetch per view, then
// synchronous re-derivation on every search, filter or page change.
type ViewService struct {
	views    repositories.ViewRepository
	products *ProductService
	pageSize int
}

// NewViewService creates a new ViewService. A non-positive pageSize falls back to models.DefaultPageSize.
func NewViewService(views repositories.ViewRepository, products *ProductService, pageSize int) *ViewService {
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}
	return &ViewService{
		views:    views,
		products: products,
		pageSize: pageSize,
	}
}

// Create stores a new view in the loading state and starts its catalog fetch.
// The returned channel is closed once the fetch has settled.
func (s *ViewService) Create() (*models.View, <-chan struct{}, error) {
	view := &models.View{
		Status: models.StatusLoading,
		State:  models.DefaultViewState(s.pageSize),
	}
	if err := s.views.Create(view); err != nil {
		return nil, nil, fmt.Errorf("failed to create view: %w", err)
	}

	done := make(chan struct{})
	go s.load(view.ID, done)

	log.Printf("Created view %s", view.ID)
	return view, done, nil
}

// load runs the single fetch of a view. It is not cancelled when the view goes away.
func (s *ViewService) load(id string, done chan<- struct{}) {
	defer close(done)

	products, loadErr := s.products.LoadCatalog()
	if loadErr != nil {
		log.Printf("Error loading catalog for view %s: %v", id, loadErr)
	}

	_, err := s.views.Update(id, func(view *models.View) error {
		if loadErr != nil {
			view.Status = models.StatusError
			view.Err = loadErr
			return nil
		}
		view.Status = models.StatusReady
		view.Products = products
		return nil
	})
	if errors.Is(err, repositories.ErrViewNotFound) {
		log.Printf("View %s was discarded before its catalog fetch settled", id)
	}
}

// Get returns the view with the given ID.
func (s *ViewService) Get(id string) (*models.View, error) {
	return s.views.GetByID(id)
}

// Update applies the present fields of update to the view state. The page is
// stored as given, so a shrinking result set can leave it past the last page.
func (s *ViewService) Update(id string, update models.ViewUpdate) (*models.Page, error) {
	view, err := s.views.Update(id, func(view *models.View) error {
		if update.Page != nil && *update.Page < 1 {
			return fmt.Errorf("invalid page: %d", *update.Page)
		}
		if update.Search != nil {
			view.State.Search = *update.Search
		}
		if update.Filter != nil {
			view.State.Filter = *update.Filter
		}
		if update.Page != nil {
			view.State.Page = *update.Page
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	page := pageOf(view)
	return &page, nil
}

// Page derives the visible page of the view and marks the view as seen.
func (s *ViewService) Page(id string) (*models.Page, error) {
	view, err := s.views.Update(id, func(*models.View) error { return nil })
	if err != nil {
		return nil, err
	}
	page := pageOf(view)
	return &page, nil
}

// Delete discards a view.
func (s *ViewService) Delete(id string) error {
	return s.views.Delete(id)
}

// Sweep discards every view idle for longer than ttl.
func (s *ViewService) Sweep(ttl time.Duration) int {
	removed := s.views.DeleteIdle(time.Now().Add(-ttl))
	if removed > 0 {
		log.Printf("Expired %d idle views", removed)
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *ViewService) RunSweeper(ctx context.Context, ttl, interval time.Duration) error {
	if ttl <= 0 || interval <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep(ttl)
		}
	}
}

func pageOf(view *models.View) models.Page {
	switch view.Status {
	case models.StatusReady:
		page := Derive(view.Products, view.State)
		page.ViewID = view.ID
		page.Status = models.StatusReady
		return page
	case models.StatusError:
		return models.Page{
			ViewID:  view.ID,
			Status:  models.StatusError,
			Message: models.GenericErrorMessage,
			State:   view.State,
			Items:   []models.Product{},
		}
	default:
		return models.Page{
			ViewID: view.ID,
			Status: models.StatusLoading,
			State:  view.State,
			Items:  []models.Product{},
		}
	}
}
