package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/storefront/pkg/apiclient"
	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/notifications"
	"github.com/dmitrymomot/storefront/pkg/sanitizer"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

// Service orchestrates the stores and the API.
type Service struct {
	api     API
	cart    *cart.Store
	session *session.Store
	notes   *notifications.Queue
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

func New(api API, carts *cart.Store, sessions *session.Store, notes *notifications.Queue, opts ...Option) *Service {
	s := &Service{
		api:     api,
		cart:    carts,
		session: sessions,
		notes:   notes,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Cart() *cart.Store                   { return s.cart }
func (s *Service) Session() *session.Store             { return s.session }
func (s *Service) Notifications() *notifications.Queue { return s.notes }

// Login checks the credentials with the API, then resolves the account by
// email and stores it in the session.
func (s *Service) Login(ctx context.Context, email, password string) (session.User, error) {
	email = sanitizer.Email(email)
	if err := validator.Apply(
		validator.Required("email", email),
		validator.ValidEmail("email", email),
		validator.Required("password", password),
	); err != nil {
		s.notes.Warning(err.Error(), titleAuthentication)
		return session.User{}, err
	}

	if _, err := s.api.Login(ctx, apiclient.Credentials{Email: email, Password: password}); err != nil {
		return session.User{}, s.fail(ctx, "login", titleAuthentication, err)
	}

	user, err := s.signIn(ctx, email)
	if err != nil {
		return session.User{}, err
	}
	s.notes.Success(fmt.Sprintf(msgSignedIn, user.Name), titleAuthentication)
	return user, nil
}

// Register creates an account and signs it in.
func (s *Service) Register(ctx context.Context, name, email, password string) (session.User, error) {
	name, email = sanitizer.DisplayName(name), sanitizer.Email(email)
	if err := validator.Apply(
		validator.Required("name", name),
		validator.MinRunes("name", name, 4),
		validator.Required("email", email),
		validator.ValidEmail("email", email),
		validator.Required("password", password),
	); err != nil {
		s.notes.Warning(err.Error(), titleAuthentication)
		return session.User{}, err
	}

	if _, err := s.api.Register(ctx, apiclient.Registration{Name: name, Email: email, Password: password}); err != nil {
		return session.User{}, s.fail(ctx, "register", titleAuthentication, err)
	}

	user, err := s.signIn(ctx, email)
	if err != nil {
		return session.User{}, err
	}
	s.notes.Success(fmt.Sprintf(msgRegistered, user.Name), titleAuthentication)
	return user, nil
}

func (s *Service) signIn(ctx context.Context, email string) (session.User, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return session.User{}, s.fail(ctx, "list users", titleAuthentication, err)
	}
	for _, u := range users {
		if u.Email == email {
			if err := s.session.SetUser(ctx, &u); err != nil {
				return session.User{}, s.fail(ctx, "store session", titleAuthentication, err)
			}
			s.logger.LogAttrs(ctx, slog.LevelInfo, "user signed in", logger.UserID(u.ID))
			return u, nil
		}
	}
	s.notes.Error(msgUserNotFound, titleAuthentication)
	return session.User{}, ErrUserNotFound
}

// Logout clears the session and then the cart, guest carts included.
func (s *Service) Logout(ctx context.Context) error {
	var errs []error
	if err := s.session.Clear(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.cart.Clear(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return s.fail(ctx, "logout", titleAuthentication, err)
	}
	return nil
}

// AddToCart fetches the product and adds one unit of it.
func (s *Service) AddToCart(ctx context.Context, productID int64) (cart.Entry, error) {
	p, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		return cart.Entry{}, s.fail(ctx, "get product", titleCart, err)
	}
	if err := s.cart.Add(ctx, p); err != nil {
		return cart.Entry{}, s.fail(ctx, "add to cart", titleCart, err)
	}
	e, _ := s.cart.Get(p.ID)
	return e, nil
}

// Checkout buys the single product in the cart. The login check comes
// first; neither rejection reaches the API.
func (s *Service) Checkout(ctx context.Context) (apiclient.OrderReceipt, error) {
	user := s.session.User()
	if user == nil {
		s.notes.Warning(msgLoginRequired, titleCheckout)
		return apiclient.OrderReceipt{}, ErrLoginRequired
	}

	items := s.cart.Items()
	if len(items) != 1 {
		s.notes.Warning(msgSingleItem, titleCheckout)
		return apiclient.OrderReceipt{}, ErrSingleItemCheckout
	}

	product := items[0].Product
	receipt, err := s.api.CreateOrder(ctx, apiclient.NewOrder{UserID: user.ID, ProductID: product.ID})
	if err != nil {
		return apiclient.OrderReceipt{}, s.fail(ctx, "create order", titleCheckout, err)
	}

	s.notes.Success(msgCheckoutSuccess, titleCheckout)
	if err := s.cart.Clear(ctx); err != nil {
		// The order exists; only the local cleanup failed.
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to clear cart after checkout",
			logger.UserID(user.ID),
			logger.ProductID(product.ID),
			logger.Error(err),
		)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "order placed",
		logger.UserID(user.ID),
		logger.ProductID(product.ID),
	)
	return receipt, nil
}

// SubmitReview posts a review by the current user. Callers reload the
// product detail afterwards to show it.
func (s *Service) SubmitReview(ctx context.Context, productID int64, rating int, comment string) error {
	user := s.session.User()
	if user == nil {
		s.notes.Warning(msgLoginRequired, titleReview)
		return ErrLoginRequired
	}

	comment = sanitizer.Comment(comment)
	if err := validator.Apply(
		validator.Between("rating", rating, 1, 5),
		validator.Required("comment", comment),
	); err != nil {
		s.notes.Warning(err.Error(), titleReview)
		return err
	}

	_, err := s.api.CreateReview(ctx, apiclient.NewReview{
		UserID:    user.ID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	})
	if err != nil {
		return s.fail(ctx, "create review", titleReview, err)
	}
	s.notes.Success(msgReviewSubmitted, titleReview)
	return nil
}

// fail reports err to the shopper and the log and returns it unchanged.
func (s *Service) fail(ctx context.Context, op, title string, err error) error {
	msg := err.Error()
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		msg = apiErr.Message
	}
	s.notes.Error(msg, title)
	s.logger.LogAttrs(ctx, slog.LevelError, "storefront operation failed",
		logger.Operation(op),
		logger.Error(err),
	)
	return err
}
