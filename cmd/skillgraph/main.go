// Command skillgraph runs the adaptive interview service: a REST API over a
// knowledge graph of interview questions with LLM-assisted scoring.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/skillsenselab/skillgraph/api"
	"github.com/skillsenselab/skillgraph/config"
	"github.com/skillsenselab/skillgraph/graph"
	"github.com/skillsenselab/skillgraph/interview"
	"github.com/skillsenselab/skillgraph/judge"
	"github.com/skillsenselab/skillgraph/logger"
	"github.com/skillsenselab/skillgraph/server"
	"github.com/skillsenselab/skillgraph/server/endpoint"
	"github.com/skillsenselab/skillgraph/version"
)

const serviceName = "skillgraph"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(serviceName)
	if err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()
	log.Info("Starting service", logger.Fields(
		"version", version.GetVersionInfo().String(),
		"environment", cfg.Service.Environment,
	))

	registry := graph.NewRegistry()
	if cfg.Graph.SeedFile != "" {
		if err := graph.LoadFile(cfg.Graph.SeedFile, registry); err != nil {
			return fmt.Errorf("loading graph seed: %w", err)
		}
		log.Info("Knowledge graph loaded", logger.Fields(
			"seed_file", cfg.Graph.SeedFile,
			"nodes", registry.Len(),
		))
	}

	scorer := judge.New(cfg.Judge, log)
	sessions := interview.NewManager(registry, scorer, cfg.Interview, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyDefaults(cfg.Service.Name, healthChecker(registry, scorer))
	api.New(registry, sessions, log).Register(srv.GinEngine())

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return srv.Stop(ctx)
}

// healthChecker reports the state of the service's dependencies. A judge
// running in dummy mode is degraded, not unhealthy: the service still works,
// answers just get fixed scores.
func healthChecker(reg *graph.Registry, scorer judge.Judge) endpoint.HealthChecker {
	return func(_ context.Context) []endpoint.Check {
		checks := []endpoint.Check{
			{Name: "graph", Status: "healthy", Detail: strconv.Itoa(reg.Len()) + " nodes"},
		}
		if scorer.Available() {
			checks = append(checks, endpoint.Check{Name: "judge", Status: "healthy"})
		} else {
			checks = append(checks, endpoint.Check{Name: "judge", Status: "degraded", Detail: "no API key, dummy scoring"})
		}
		return checks
	}
}
