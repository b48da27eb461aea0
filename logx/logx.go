// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user log level and handler setup
// shared by the colorio commands.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through exec to the user's verbosity flags. It defaults to
// [slog.LevelInfo], or [slog.LevelDebug] and [slog.LevelWarn] for the
// debug and release build tags.
var UserLevel = defaultUserLevel

// SetUserLevel sets [UserLevel] from the given verbosity flags:
// debug wins over quiet, and neither leaves the build default.
func SetUserLevel(debug, quiet bool) {
	switch {
	case debug:
		UserLevel = slog.LevelDebug
	case quiet:
		UserLevel = slog.LevelWarn
	default:
		UserLevel = defaultUserLevel
	}
}

// NewHandler returns a text handler writing to w that
// filters records below [UserLevel].
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar{}})
}

// Init installs a [NewHandler] on stderr as the default slog logger.
func Init() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// levelVar reads [UserLevel] on every record, so later
// changes to it apply to handlers that were already built.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }
