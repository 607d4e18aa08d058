// Package server exposes a drawing session over HTTP for a browser client.
package server

import (
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/pixelgrid/internal/app"
	"github.com/example/pixelgrid/internal/export"
	"github.com/example/pixelgrid/internal/grid"
	"github.com/example/pixelgrid/internal/palette"
	"github.com/example/pixelgrid/internal/preview"
)

// Server serializes every request onto one Controller, so commands run one
// at a time as they would on a UI event loop.
type Server struct {
	mu   sync.Mutex
	ctrl *app.Controller
	log  *logrus.Entry
}

func New(ctrl *app.Controller, log *logrus.Entry) *Server {
	return &Server{ctrl: ctrl, log: log.WithField("component", "http")}
}

// Router builds the gin engine with all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	api := r.Group("/api")
	api.GET("/palette", s.getPalette)
	api.GET("/grid", s.getGrid)
	api.PUT("/config", s.putConfig)
	api.POST("/color", s.postColor)
	api.POST("/cells/:ref", s.postCell)
	api.POST("/clear", s.postClear)
	api.POST("/grid-lines/toggle", s.postToggle)
	api.GET("/export.png", s.getExport)
	api.GET("/preview.png", s.getPreview)
	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}).Debug("request")
	}
}

type paletteResponse struct {
	Entries  []palette.Entry `json:"entries"`
	Selected string          `json:"selected"`
}

func (s *Server) getPalette(c *gin.Context) {
	s.mu.Lock()
	selected := s.ctrl.State().Selected.Name
	s.mu.Unlock()
	c.JSON(http.StatusOK, paletteResponse{Entries: palette.Entries(), Selected: selected})
}

type slotJSON struct {
	Kind   string `json:"kind"`
	Label  string `json:"label,omitempty"`
	Ref    string `json:"ref,omitempty"`
	Fill   string `json:"fill,omitempty"`
	Marker string `json:"marker,omitempty"`
}

type gridResponse struct {
	Config    grid.Config  `json:"config"`
	GridLines bool         `json:"grid_lines"`
	Selected  string       `json:"selected"`
	Rows      [][]slotJSON `json:"rows"`
}

func (s *Server) snapshot() gridResponse {
	st := s.ctrl.State()
	resp := gridResponse{Config: st.Config, GridLines: st.GridLines, Selected: st.Selected.Name}
	for _, row := range st.Grid.Table() {
		out := make([]slotJSON, 0, len(row))
		for _, slot := range row {
			switch slot.Kind {
			case grid.SlotCorner:
				out = append(out, slotJSON{Kind: "corner"})
			case grid.SlotColumnHeader:
				out = append(out, slotJSON{Kind: "column", Label: slot.Label})
			case grid.SlotRowHeader:
				out = append(out, slotJSON{Kind: "row", Label: slot.Label})
			default:
				j := slotJSON{Kind: "cell", Ref: slot.Cell.Ref(), Marker: slot.Label}
				if slot.Cell.Fill.Set {
					j.Fill = palette.Hex(slot.Cell.Fill.Color)
				}
				out = append(out, j)
			}
		}
		resp.Rows = append(resp.Rows, out)
	}
	return resp
}

func (s *Server) getGrid(c *gin.Context) {
	s.mu.Lock()
	resp := s.snapshot()
	s.mu.Unlock()
	c.JSON(http.StatusOK, resp)
}

// sizeInput accepts a JSON number or string, mirroring a form field.
type sizeInput string

func (v *sizeInput) UnmarshalJSON(b []byte) error {
	if u, err := strconv.Unquote(string(b)); err == nil {
		*v = sizeInput(u)
		return nil
	}
	*v = sizeInput(b)
	return nil
}

type configRequest struct {
	Dimension *sizeInput `json:"dimension"`
	CellSize  *sizeInput `json:"cell_size"`
}

// putConfig parses both fields before touching state, so a bad field
// rejects the whole request.
func (s *Server) putConfig(c *gin.Context) {
	var req configRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Dimension == nil && req.CellSize == nil {
		errorResponse(c, http.StatusBadRequest, "dimension or cell_size is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.ctrl.State().Config
	if req.Dimension != nil {
		n, err := grid.ParseDimension(string(*req.Dimension))
		if err != nil {
			s.handleError(c, fmt.Errorf("%w: %w", app.ErrInvalidInput, err))
			return
		}
		cfg.Dimension = n
	}
	if req.CellSize != nil {
		size, err := grid.ParseCellSize(string(*req.CellSize))
		if err != nil {
			s.handleError(c, fmt.Errorf("%w: %w", app.ErrInvalidInput, err))
			return
		}
		cfg.CellSize = size
	}
	s.apply(c, app.Resize{Config: cfg})
}

type colorRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) postColor(c *gin.Context) {
	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "name is required")
		return
	}
	s.dispatch(c, app.SelectColor{Name: req.Name})
}

func (s *Server) postCell(c *gin.Context) {
	row, col, err := grid.ParseRef(c.Param("ref"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.dispatch(c, app.PaintCell{Row: row, Col: col})
}

func (s *Server) postClear(c *gin.Context) {
	s.dispatch(c, app.ClearAll{})
}

func (s *Server) postToggle(c *gin.Context) {
	s.dispatch(c, app.ToggleGridLines{})
}

// dispatch applies cmd under the lock and answers with the grid.
func (s *Server) dispatch(c *gin.Context, cmd app.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(c, cmd)
}

// apply runs cmd and writes the response. The caller holds s.mu.
func (s *Server) apply(c *gin.Context, cmd app.Command) {
	if err := s.ctrl.Dispatch(cmd); err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.snapshot())
}

// currentGrid returns the committed grid. Grids are never changed in place,
// so it can be read after the lock is released.
func (s *Server) currentGrid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.State().Grid
}

func (s *Server) getExport(c *gin.Context) {
	b, err := export.PNG(s.currentGrid())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, "image/png", b)
}

func (s *Server) getPreview(c *gin.Context) {
	img, err := preview.Render(s.currentGrid())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := png.Encode(c.Writer, img); err != nil {
		s.log.WithError(err).Error("preview encode failed")
	}
}

func (s *Server) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput),
		errors.Is(err, grid.ErrBadReference),
		errors.Is(err, palette.ErrUnknownColor):
		errorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, grid.ErrOutOfRange):
		errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, grid.ErrImageTooLarge):
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		s.log.WithError(err).Error("unhandled error")
		errorResponse(c, http.StatusInternalServerError, "internal error")
	}
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
