// Package accessgate implements the authorization core of the askboard
// question/answer platform.
//
// Layering:
// - domain: session/account/content entities, ownership policy, failure kinds
// - application: token validation and the authorization gate use-cases
// - faults: per-endpoint remapping of failure kinds to public (code, message) pairs
// - ports: stable boundaries for session persistence
// - adapters: concrete memory and postgres implementations
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Do not import other context adapters into domain/application.
// - The gate is the only authorization entry point endpoint handlers call;
//   handlers never re-derive identity from request input.
package accessgate
