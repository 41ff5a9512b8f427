package storefront

// Texts shown to the shopper.
const (
	msgLoginRequired    = "Please sign in to continue"
	msgSingleItem       = "You can buy exactly one product at a time"
	msgCheckoutSuccess  = "Purchase complete, the product was added to your library"
	msgSignedIn         = "Welcome back, %s"
	msgRegistered       = "Account created, welcome %s"
	msgReviewSubmitted  = "Thanks for your review"
	msgUserNotFound     = "Account not found"
	titleCheckout       = "Checkout"
	titleAuthentication = "Sign in"
	titleReview         = "Review"
	titleCart           = "Cart"
	titleCatalog        = "Catalog"
)
