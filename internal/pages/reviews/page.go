// Package reviews implements the review moderation page: the filterable
// review table, manual visibility transitions, deletion, per-restaurant
// rating averages, and the automatic low-rating hide rule.
package reviews

import (
	"context"
	"strconv"

	"cravio-admin/internal/common/config"
	"cravio-admin/internal/common/errors"
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/common/metrics"
	"cravio-admin/internal/models"
	"cravio-admin/internal/view"
)

type DataAPI interface {
	FetchReviews(ctx context.Context) ([]models.Review, error)
	UpdateReviewStatus(ctx context.Context, id string, status models.ReviewStatus) error
	DeleteReview(ctx context.Context, id string) error
}

type Page struct {
	api        DataAPI
	ctrl       *view.Controller[models.Review]
	moderation config.ModerationConfig
	log        logger.Logger
}

func NewPage(api DataAPI, moderation config.ModerationConfig, log logger.Logger) *Page {
	p := &Page{
		api:        api,
		moderation: moderation,
		log:        log.WithFields(map[string]interface{}{"page": "reviews"}),
	}
	p.ctrl = view.NewController("review", api.FetchReviews,
		func(r models.Review) string { return r.ID }, p.log)
	return p
}

// Criteria are the active filter inputs. Status defaults to the visible
// view; "all" shows everything, any other value is matched exactly.
type Criteria struct {
	Rating     string
	Restaurant string
	Status     string
}

func (c Criteria) predicates() []view.Predicate[models.Review] {
	status := c.Status
	if status == "" {
		status = string(models.ReviewVisible)
	}
	if status == "all" {
		status = ""
	}
	return []view.Predicate[models.Review]{
		ratingPredicate(c.Rating),
		view.SearchPredicate(c.Restaurant, func(r models.Review) []string {
			return []string{r.RestaurantName()}
		}),
		view.EqualsPredicate(status, func(r models.Review) string { return string(r.Status) }),
	}
}

func ratingPredicate(value string) view.Predicate[models.Review] {
	if value == "" {
		return nil
	}
	want, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return func(r models.Review) bool { return r.Rating == want }
}

// List refreshes the collection, runs the auto-hide sweep, and returns the
// filtered view. Each planned hide is mutated remotely first and reflected
// locally only after the API confirmed, so a failed hide leaves that review
// untouched and visible.
func (p *Page) List(ctx context.Context, c Criteria) ([]models.Review, error) {
	loadErr := p.ctrl.Load(ctx)
	if loadErr == nil {
		p.sweep(ctx)
	}
	return p.ctrl.View(c.predicates()...), loadErr
}

func (p *Page) sweep(ctx context.Context) {
	changes := view.AutoModerate(p.ctrl.Items(), p.moderation.AutoHide, p.moderation.MinRating)
	for _, change := range changes {
		change := change
		err := p.ctrl.WithEntityLock(change.ID, func() error {
			if err := p.api.UpdateReviewStatus(ctx, change.ID, change.Status); err != nil {
				return err
			}
			p.ctrl.ApplyPatch(change.ID, func(r models.Review) models.Review {
				r.Status = change.Status
				return r
			})
			return nil
		})
		if err != nil {
			p.log.WithError(err).Warn("auto-hide mutation failed", map[string]interface{}{
				"review_id": change.ID,
			})
			continue
		}
		metrics.AutoModerationHides.Inc()
		p.log.Info("review auto-hidden", map[string]interface{}{
			"review_id":  change.ID,
			"min_rating": p.moderation.MinRating,
		})
	}
}

func (p *Page) SetStatus(ctx context.Context, id string, status models.ReviewStatus) (models.Review, error) {
	if !status.Valid() {
		return models.Review{}, errors.NewValidationFailedError("status must be visible or hidden")
	}

	var patched models.Review
	err := p.ctrl.WithEntityLock(id, func() error {
		if err := p.api.UpdateReviewStatus(ctx, id, status); err != nil {
			return err
		}
		p.ctrl.ApplyPatch(id, func(r models.Review) models.Review {
			r.Status = status
			patched = r
			return r
		})
		return nil
	})
	return patched, err
}

func (p *Page) Delete(ctx context.Context, id string) error {
	return p.ctrl.WithEntityLock(id, func() error {
		if err := p.api.DeleteReview(ctx, id); err != nil {
			return err
		}
		p.ctrl.Remove(id)
		return nil
	})
}

// Averages computes the per-restaurant mean rating over the currently
// filtered view, rounded to 2 decimal places. Reviews without a restaurant
// reference are excluded.
func (p *Page) Averages(c Criteria) []view.GroupAverage {
	return view.AverageBy(p.ctrl.View(c.predicates()...),
		func(r models.Review) (string, bool) {
			name := r.RestaurantName()
			return name, name != ""
		},
		func(r models.Review) float64 { return float64(r.Rating) })
}
