package storefront

import (
	"context"

	"github.com/dmitrymomot/storefront/pkg/apiclient"
	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/session"
)

// API is the subset of the backend the service depends on.
// *apiclient.Client implements it.
type API interface {
	catalog.Source
	GetProduct(ctx context.Context, id int64) (catalog.Product, error)
	ListReviews(ctx context.Context, productID int64) ([]apiclient.Review, error)
	ListUsers(ctx context.Context) ([]session.User, error)
	CreateOrder(ctx context.Context, in apiclient.NewOrder) (apiclient.OrderReceipt, error)
	CreateReview(ctx context.Context, in apiclient.NewReview) (string, error)
	Login(ctx context.Context, in apiclient.Credentials) (apiclient.Token, error)
	Register(ctx context.Context, in apiclient.Registration) (apiclient.Token, error)
}

var _ API = (*apiclient.Client)(nil)
