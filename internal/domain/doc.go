// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, secrets, DID documents) and contracts
// (generators, constructors, resolvers, secret stores) only.
package domain
