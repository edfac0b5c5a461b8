// Package users implements the read-only customer directory with search and
// role/activity filters.
package users

import (
	"context"

	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/models"
	"cravio-admin/internal/view"
)

type DataAPI interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
}

type Page struct {
	ctrl *view.Controller[models.User]
	log  logger.Logger
}

func NewPage(api DataAPI, log logger.Logger) *Page {
	p := &Page{log: log.WithFields(map[string]interface{}{"page": "users"})}
	p.ctrl = view.NewController("user", api.FetchUsers,
		func(u models.User) string { return u.ID }, p.log)
	return p
}

type Criteria struct {
	Search string
	Role   string
	Active string
}

func (c Criteria) predicates() []view.Predicate[models.User] {
	return []view.Predicate[models.User]{
		view.SearchPredicate(c.Search, func(u models.User) []string {
			return []string{u.Name, u.Email, u.Phone}
		}),
		view.EqualsPredicate(c.Role, func(u models.User) string { return string(u.Role) }),
		view.BoolPredicate(c.Active, func(u models.User) bool { return u.IsActive }),
	}
}

func (p *Page) List(ctx context.Context, c Criteria) ([]models.User, error) {
	err := p.ctrl.Load(ctx)
	return p.ctrl.View(c.predicates()...), err
}

func (p *Page) Items() []models.User {
	return p.ctrl.Items()
}

func (p *Page) Load(ctx context.Context) error {
	return p.ctrl.Load(ctx)
}
