// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/olymper/internal/adapters/cas"
	_ "go.trai.ch/olymper/internal/adapters/config"
	_ "go.trai.ch/olymper/internal/adapters/fs"
	_ "go.trai.ch/olymper/internal/adapters/ftp"
	_ "go.trai.ch/olymper/internal/adapters/logger"
	_ "go.trai.ch/olymper/internal/adapters/polygon"
	_ "go.trai.ch/olymper/internal/adapters/runlog"
	_ "go.trai.ch/olymper/internal/adapters/scaffold"
	_ "go.trai.ch/olymper/internal/adapters/shell"
	_ "go.trai.ch/olymper/internal/adapters/statement"
	// Register app and engine nodes.
	_ "go.trai.ch/olymper/internal/app"
	_ "go.trai.ch/olymper/internal/engine/compiler"
	_ "go.trai.ch/olymper/internal/engine/executable"
)
