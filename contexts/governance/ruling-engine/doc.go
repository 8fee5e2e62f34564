// Package rulingengine implements the ruling and vote tally engine inside
// the governance context.
//
// The module owns ruling lifecycle orchestration (create/open/close), the
// vote submission pipeline (duplicate, eligibility, expiry, and open checks
// followed by an atomic counter-plus-record mutation), and the read-only
// result projection. Business rules live in the domain and application
// layers; persistence and the eligibility service sit behind ports and
// adapters.
package rulingengine
