// Package statsview serves live runtime statistics of the process.
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// DefaultAddress is the listen address of the statistics server.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// Server is a running statistics viewer.
type Server struct {
	manager *statsview.ViewManager
}

// Start launches the statistics viewer on addr in a new goroutine.
func Start(addr string, logger *log.Logger) *Server {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	manager := statsview.New()
	go manager.Start()

	logger.Info("Statistics available", log.String("url", "http://"+addr+path))
	return &Server{manager: manager}
}

// Stop shuts the viewer down.
func (s *Server) Stop() {
	s.manager.Stop()
}
