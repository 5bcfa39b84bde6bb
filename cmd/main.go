package main

//
//  @title           pricediff API
//  @version         1.0
//  @description     Day-over-day price comparison view: filter, sort and reload.
//  @termsOfService  https://github.com/guttosm/pricediff
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/pricediff
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        view
//  @tag.description Stateful comparison view: filters, sort and reload
//
//  @tag.name        comparison
//  @tag.description Stateless queries over the loaded comparison
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"os"

	_ "github.com/guttosm/pricediff/docs" // swagger docs
	"github.com/guttosm/pricediff/internal/logger"
)

// main is the entry point of the pricediff application.
//
// Commands:
//   - serve: Starts the REST API over the comparison view.
//   - show:  Fetches the comparison once and prints it as a table.
func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.L().Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
