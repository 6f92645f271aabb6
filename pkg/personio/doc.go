// Package personio defines the public API surface of the Personio client:
// resource types, query parameters, filters, the pagination iterator, and the
// error taxonomy. Construct clients with the personioclient package.
package personio
