// Package log provides the leveled console logger used by every commons package.
//
// Package: log
// Title: commons Leveled Logging
// Description: Implements a per-context leveled logger that tags each line with a
//              short correlation ID (CID). Messages are built from a template whose
//              "{}" placeholders are replaced, in order, by the supplied arguments.
//              The default threshold lives in an injectable Settings value so tests
//              and independent subsystems do not share hidden global state.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with levels, CIDs and templating
// - 2026-10-12 v0.2.0: Injectable Settings, JSON formatter, trace-derived CIDs
//
// Output format (one line per accepted call):
//
//	2026-10-12T08:15:30.123Z INFO CacheManager (k3f9a0q) Added cache entry user.42
//
// The " (cid)" segment is omitted once the CID has been reset.
//
// Usage:
//
//	import cmnlog "github.com/msto63/commons/foundation/core/log"
//
//	logger := cmnlog.New("UserService")
//	logger.Info("User {} created in {}ms", userID, elapsed)
//
//	// Only warnings and errors for this instance
//	logger.SetLevel(cmnlog.LevelWarn)
//
//	// Raise the threshold for every logger bound to the default settings
//	cmnlog.SetDefaultLevel(cmnlog.LevelInfo)
//
// Concurrency: Logger and Settings are safe for concurrent use. Lines are written
// with a single Write call per message.
package log
