package container

import (
	app "lens-finder/internal/application"
	"lens-finder/internal/domain/port"
)

// Container собирает сервисы приложения для всех точек входа.
type Container struct {
	UserService *app.UserService
	ScanService *app.ScanService
}

func New(userRepo port.UserRepository, detector port.LensDetector, describer port.ScanDescriber) *Container {
	userService := app.NewUserService(userRepo)
	scanService := app.NewScanService(userService, detector, describer)

	return &Container{
		UserService: userService,
		ScanService: scanService,
	}
}
