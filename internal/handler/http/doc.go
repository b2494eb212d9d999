// Package http is the REST transport of the vault: route wiring, request
// handlers, and the middleware chain (trace ids, access logging, gzip,
// bearer-token auth) that runs before the service layer sees a request.
package http
