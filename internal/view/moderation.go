package view

import "cravio-admin/internal/models"

// StatusChange is one pending review-status mutation produced by the
// auto-moderation sweep. The caller issues the remote mutation first and
// reflects the change locally only after the API confirms it.
type StatusChange struct {
	ID     string
	Status models.ReviewStatus
}

// AutoModerate plans hide mutations for reviews whose rating falls strictly
// below minRating and which are not already hidden. Running the sweep again
// over a collection where the planned changes have been applied yields no
// further work, so repeated sweeps are safe.
func AutoModerate(reviews []models.Review, enabled bool, minRating int) []StatusChange {
	if !enabled {
		return nil
	}
	var changes []StatusChange
	for _, r := range reviews {
		if r.Rating < minRating && r.Status != models.ReviewHidden {
			changes = append(changes, StatusChange{ID: r.ID, Status: models.ReviewHidden})
		}
	}
	return changes
}
