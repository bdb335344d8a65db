package main

import (
	"ridehub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.RiderModel{},
		model.DriverModel{},
		model.RevokedTokenModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
