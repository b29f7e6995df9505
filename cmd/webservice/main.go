package main

import (
	_ "time/tzdata"

	"github.com/Hamdhan7/design-fabric-backend/config"
	"github.com/Hamdhan7/design-fabric-backend/internal/app"
	"github.com/Hamdhan7/design-fabric-backend/internal/infrastructure/database/postgres"
	"github.com/Hamdhan7/design-fabric-backend/internal/infrastructure/imagestore"
)

func main() {
	config := config.CreateNewConfig()

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		panic(err)
	}

	store, err := imagestore.CreateDiskImageStore(config.ImageConfig.Dir)
	if err != nil {
		panic(err)
	}

	application := app.App{
		DB:         db,
		Config:     config,
		ImageStore: store,
	}

	application.Start()
}
