// Package logging provides a small leveled logger for vidshare.
//
// Levels, from most to least verbose:
//   - DEBUG: request and state tracing
//   - INFO: general operational messages
//   - WARN: recoverable failures (list fetch, rejected uploads)
//   - ERROR: failures the user cannot see, such as a player that did not start
//
// The level comes from the DEBUG or LOG_LEVEL environment variables.
package logging
