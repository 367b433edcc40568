package main

import (
	"os"
	"ratesvc/internal/app"

	"github.com/sirupsen/logrus"
)

// @title ratesvc API
// @version 1.0
// @description Exchange-rate aggregation service for the reports storefront
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application terminated with error")
		os.Exit(1)
	}
}
