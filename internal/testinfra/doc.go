// Package testinfra starts the containers used by integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/repository/...
//
// Tests are skipped when Docker is not available.
package testinfra
