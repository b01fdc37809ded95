package telemetry

import (
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// InfluxWriter writes sensor readings to an InfluxDB bucket through the
// non-blocking write API. A nil writer is a valid disabled sink: every method
// is a no-op.
type InfluxWriter struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
}

func NewInfluxWriter(url, token, org, bucket string) *InfluxWriter {
	client := influxdb2.NewClient(url, token)
	return &InfluxWriter{
		client:   client,
		writeAPI: client.WriteAPI(org, bucket),
	}
}

// RecordHeading writes one heading point.
func (w *InfluxWriter) RecordHeading(degrees float64, cardinal string) {
	if w == nil {
		return
	}
	p := influxdb2.NewPointWithMeasurement("heading").
		AddTag("cardinal", cardinal).
		AddField("degrees", degrees).
		SetTime(time.Now())
	w.writeAPI.WritePoint(p)
}

// RecordSteps writes the trailing-week pedometer summary.
func (w *InfluxWriter) RecordSteps(steps int64, miles float64) {
	if w == nil {
		return
	}
	p := influxdb2.NewPointWithMeasurement("pedometer").
		AddField("steps", steps).
		AddField("miles", miles).
		SetTime(time.Now())
	w.writeAPI.WritePoint(p)
}

// Close flushes pending writes and shuts the client down.
func (w *InfluxWriter) Close() {
	if w == nil {
		return
	}
	w.writeAPI.Flush()
	w.client.Close()
}
