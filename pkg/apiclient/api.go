package apiclient

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/session"
)

// Review as listed for a product. ID is absent in list responses.
type Review struct {
	ID        int64  `json:"id,omitempty" yaml:"id,omitempty"`
	UserID    int64  `json:"user_id" yaml:"user_id"`
	ProductID int64  `json:"game_id" yaml:"product_id"`
	Rating    int    `json:"rating" yaml:"rating"`
	Comment   string `json:"comment" yaml:"comment"`
}

type NewReview struct {
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"game_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type NewOrder struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"game_id"`
}

// OrderReceipt is returned after a successful purchase.
type OrderReceipt struct {
	Message      string  `json:"message" yaml:"message"`
	ProductTitle string  `json:"game_title" yaml:"product_title"`
	ProductPrice float64 `json:"game_price" yaml:"product_price"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is issued by login and register.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type message struct {
	Message string `json:"message"`
}

func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	out := []catalog.Product{}
	if err := c.get(ctx, "/games/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	var out catalog.Product
	err := c.get(ctx, fmt.Sprintf("/games/%d", id), &out)
	return out, err
}

func (c *Client) ListGenres(ctx context.Context) ([]catalog.Genre, error) {
	out := []catalog.Genre{}
	if err := c.get(ctx, "/genres/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPlatforms(ctx context.Context) ([]catalog.Platform, error) {
	out := []catalog.Platform{}
	if err := c.get(ctx, "/platforms/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListReviews returns the reviews of a product.
func (c *Client) ListReviews(ctx context.Context, productID int64) ([]Review, error) {
	out := []Review{}
	if err := c.get(ctx, fmt.Sprintf("/reviews/game/%d", productID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]session.User, error) {
	out := []session.User{}
	if err := c.get(ctx, "/users/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrder buys one product for a user.
func (c *Client) CreateOrder(ctx context.Context, in NewOrder) (OrderReceipt, error) {
	var out OrderReceipt
	err := c.post(ctx, "/orders", in, &out)
	return out, err
}

// CreateReview returns the backend's confirmation message.
func (c *Client) CreateReview(ctx context.Context, in NewReview) (string, error) {
	var out message
	err := c.post(ctx, "/reviews", in, &out)
	return out.Message, err
}

func (c *Client) Login(ctx context.Context, in Credentials) (Token, error) {
	var out Token
	err := c.post(ctx, "/users/login", in, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, in Registration) (Token, error) {
	var out Token
	err := c.post(ctx, "/users/register", in, &out)
	return out, err
}
