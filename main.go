package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/LubenZA/ViewCompass/config"
	"github.com/LubenZA/ViewCompass/sensors"
	"github.com/LubenZA/ViewCompass/state"
	"github.com/LubenZA/ViewCompass/telemetry"
	"github.com/LubenZA/ViewCompass/view"
	"github.com/LubenZA/ViewCompass/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	store := state.NewStore()

	var influx *telemetry.InfluxWriter
	if cfg.InfluxURL != "" {
		influx = telemetry.NewInfluxWriter(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket)
		defer influx.Close()
	}

	var headingSvc sensors.HeadingService
	switch cfg.HeadingSource {
	case "qmc5883":
		headingSvc = sensors.NewQMC5883Heading(cfg.I2CBus, cfg.HeadingInterval)
	default:
		headingSvc = sensors.NewSimulatedHeading(cfg.HeadingInterval)
	}
	log.Printf("Heading source: %s", cfg.HeadingSource)

	var pedometerSvc sensors.PedometerService
	switch cfg.PedometerSource {
	case "off":
		pedometerSvc = sensors.DisabledPedometer{}
	default:
		pedometerSvc = sensors.NewSimulatedPedometer()
	}
	log.Printf("Pedometer source: %s", cfg.PedometerSource)

	tracker := sensors.NewHeadingTracker(headingSvc, store)
	tracker.Start()
	defer tracker.Stop()

	reader := sensors.NewPedometerReader(pedometerSvc, store)
	go reader.Initialize(context.Background())

	hub := web.NewHub()
	go pump(store.Subscribe(), hub, influx)

	server := web.NewServer(store, hub, cfg.StaticDir)
	log.Println("Server starting on", cfg.Addr)
	if err := server.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// pump re-renders on every state change, fans the screen out to websocket
// clients and forwards readings to the InfluxDB sink.
func pump(updates <-chan state.Snapshot, hub *web.Hub, influx *telemetry.InfluxWriter) {
	stepsRecorded := false
	for snap := range updates {
		hub.Broadcast(view.Render(snap))
		influx.RecordHeading(snap.Heading.Degrees, snap.Heading.Cardinal)
		if snap.Steps != nil && !stepsRecorded {
			stepsRecorded = true
			influx.RecordSteps(snap.Steps.Steps, snap.Steps.Miles)
		}
	}
}
