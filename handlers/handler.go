package handlers

import (
	"github.com/andrewpaige1/galaxymap-api/board"
	"github.com/andrewpaige1/galaxymap-api/logger"
	"github.com/andrewpaige1/galaxymap-api/resources"
)

// Handler carries the engines behind the HTTP surface.
type Handler struct {
	Resources *resources.Engine
	Board     *board.Engine
	Log       *logger.Logger
}
