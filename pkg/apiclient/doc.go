// Package apiclient talks to the storefront backend over HTTP/JSON.
//
// Every failure is reported as *Error carrying the HTTP status (0 for
// transport failures) and a human-readable message taken from the
// backend's {"detail": ...} body when present. Read requests are retried
// with backoff on transport errors and 5xx responses; writes are sent
// exactly once.
//
//	api, err := apiclient.New("http://localhost:8000", apiclient.WithTimeout(5*time.Second))
//	if err != nil {
//		return err
//	}
//	products, err := api.ListProducts(ctx)
package apiclient
