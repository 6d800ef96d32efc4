// Package api implements the HTTP handlers for the volcano API: credential
// endpoints, dataset reads, ratings, and profiles. Handlers validate input,
// resolve field visibility from the optional caller identity, and delegate
// persistence to the store interfaces.
package api
