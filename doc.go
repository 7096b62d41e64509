// Package finpulse is the logic core of the finpulse dashboard. It keeps the
// user's stock positions and derives every figure the dashboard shows about
// them.
//
// The core functionalities include:
//   - Position Ledger: recording user-entered positions (symbol, cost basis,
//     quantity) into a durable key-value store, as a single JSON array that is
//     always rewritten as a whole.
//   - Valuation: the current price of a position is produced by an injected
//     Pricer, and its sector by an injected Classifier, so a host can plug a
//     live feed or a deterministic stub instead of the random defaults.
//   - Analytics: a stateless computation over the positions that produces
//     the portfolio Summary (value, investment, profit and loss) and the
//     sector allocation.
//
// The financial query resolver lives in the finbot package, the storage
// backends in the store package.
package finpulse
