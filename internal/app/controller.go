package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/example/pixelgrid/internal/export"
	"github.com/example/pixelgrid/internal/grid"
)

// Controller holds the single session State and routes commands through
// Reduce. It is driven from one event loop and does no locking.
type Controller struct {
	state     State
	log       *logrus.Entry
	listeners []func(State)
}

// NewController starts a session with the grid for cfg.
func NewController(cfg grid.Config, log *logrus.Entry) (*Controller, error) {
	s, err := NewState(cfg)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Controller{state: s, log: log.WithField("component", "controller")}, nil
}

// State returns the current state. The grid must be treated as read-only.
func (c *Controller) State() State {
	return c.state
}

// Subscribe registers fn to be called after every successful command.
func (c *Controller) Subscribe(fn func(State)) {
	c.listeners = append(c.listeners, fn)
}

// Dispatch applies cmd. On error the state is unchanged.
func (c *Controller) Dispatch(cmd Command) error {
	next, err := Reduce(c.state, cmd)
	if err != nil {
		c.log.WithError(err).WithField("command", cmd.String()).Warn("command rejected")
		return err
	}
	if next.Config != c.state.Config {
		c.log.WithFields(logrus.Fields{
			"dimension": next.Config.Dimension,
			"cell_size": next.Config.CellSize,
		}).Info("grid rebuilt")
	} else {
		c.log.WithField("command", cmd.String()).Debug("command applied")
	}
	c.state = next
	for _, fn := range c.listeners {
		fn(next)
	}
	return nil
}

// Export writes the current grid as PNG.
func (c *Controller) Export(w io.Writer) error {
	return export.EncodePNG(w, c.state.Grid)
}

// Save writes the current grid to path (a file or a directory) and returns
// the file written.
func (c *Controller) Save(path string) (string, error) {
	p, err := export.WriteFile(path, c.state.Grid)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Error("save failed")
		return "", err
	}
	c.log.WithField("path", p).Info("saved")
	return p, nil
}
