//go:build !ebiten

package app

import (
	"errors"

	"go.uber.org/zap"
)

// ErrNoGUI is returned when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("app: GUI support requires building with the 'ebiten' tag")

// Game is a placeholder for the ebiten front-end.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(*Config, *zap.Logger) (*Game, error) {
	return nil, ErrNoGUI
}
