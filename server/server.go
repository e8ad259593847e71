// Package server wires the HTTP surface: the login redirect pair and the
// cookie-authenticated Graph/ARM proxy routes the dashboard consumes.
package server

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/cloudcostlabs/m365-gateway/azure"
	"github.com/cloudcostlabs/m365-gateway/graph"
	"github.com/cloudcostlabs/m365-gateway/internal/config"
	"github.com/cloudcostlabs/m365-gateway/msauth"
)

type Server struct {
	env     string
	mux     *http.ServeMux
	handler http.Handler
	routes  []string
	config  config.Config

	flow  *msauth.Flow
	graph *graph.Client
	azure *azure.Client
}

func New(cfg config.Config, flow *msauth.Flow, graphClient *graph.Client, azureClient *azure.Client) *Server {
	s := &Server{
		env:    cfg.GetEnv(),
		mux:    http.NewServeMux(),
		config: cfg,
		flow:   flow,
		graph:  graphClient,
		azure:  azureClient,
	}

	s.initRoutes()
	s.logRoutes()

	// The session cookie is credentialed, so CORS pins the dashboard
	// origin and enables credentials rather than echoing wildcards.
	s.handler = cors.New(cors.Options{
		AllowedOrigins:   cfg.GetAllowedOrigins(),
		AllowedMethods:   cfg.GetAllowedMethods(),
		AllowedHeaders:   cfg.GetAllowedHeaders(),
		AllowCredentials: true,
	}).Handler(s.mux)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Debug().Str("route", route).Msg("registered")
	}
}
