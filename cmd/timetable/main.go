package main

import (
	bookinghandler "gymgrid/internal/bookings/handler"
	bookingrepo "gymgrid/internal/bookings/repository"
	bookingservice "gymgrid/internal/bookings/service"
	"gymgrid/internal/bookings/validator"
	timetablehandler "gymgrid/internal/timetable/handler"
	timetablerepo "gymgrid/internal/timetable/repository"
	timetableservice "gymgrid/internal/timetable/service"
	"gymgrid/pkg/app"
	"gymgrid/pkg/client"
	"gymgrid/pkg/config"
)

const ServiceName = "timetable"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Timetable service")

	gymClient := client.NewGymClient(cfg.GymAPIBaseURL, cfg.UpstreamTimeout)
	classSource := timetablerepo.NewGymClassSource(gymClient)
	bookingSource := bookingrepo.NewGymBookingSource(gymClient)

	bookingValidator := validator.NewBookingValidator(cfg.Log)
	reconciler := bookingservice.NewBookingReconciler(classSource, bookingSource, bookingValidator, cfg)
	timetableService := timetableservice.NewTimetableService(reconciler, cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		timetablehandler.NewHealthHandler(classSource, cfg.Log),
		timetablehandler.NewTimetableHandler(timetableService, cfg.Log),
		bookinghandler.NewBookingHandler(reconciler, cfg.Log),
	)
	serverApp.Run()
}
