// Package boardservice implements question/answer content operations for
// askboard.
//
// Layering:
// - domain: question/answer entities and errors
// - application: mutation commands and list/lookup queries
// - ports: persistence, clock, and id-generation boundaries
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Handlers receive an already-authorized actor id from the HTTP layer;
//   authorization decisions live in identity-access/access-gate.
// - The mutation following an Allow decision is a separate store operation;
//   two concurrent Allows on one item may race. This matches the platform
//   contract and is not mitigated here.
package boardservice
