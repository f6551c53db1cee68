// Command orbitalsim runs a perturbed LEO propagation at a configurable time
// compression and exposes the orbit state as prometheus metrics, so a host visualizer
// (or just a scrape-and-plot setup) can watch the elements drift.
package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	orbitalsim "github.com/yamansaran/orbitalsim"
)

var (
	semiMajorAxisGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_semi_major_axis_meters"})
	eccentricityGauge  = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_eccentricity"})
	inclinationGauge   = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_inclination_degrees"})
	velocityGauge      = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_velocity_mps"})
	dragGauge          = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_drag_acceleration_mps2"})
	srpGauge           = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_srp_acceleration_mps2"})
	shadowGauge        = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_shadow_state"})
	ticksCounter       = prometheus.NewCounter(prometheus.CounterOpts{Name: "orbit_host_ticks_total"})
)

func main() {
	var (
		addr        = flag.String("addr", ":8086", "metrics listen address")
		compression = flag.Float64("compression", 1000, "simulated seconds per wall second (up to 100000)")
		tick        = flag.Duration("tick", 100*time.Millisecond, "host tick interval")
		csvOut      = flag.String("csv", "", "CSV trail filename (empty disables)")
	)
	flag.Parse()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "subsys", "demo")

	prometheus.MustRegister(semiMajorAxisGauge, eccentricityGauge, inclinationGauge,
		velocityGauge, dragGauge, srpGauge, shadowGauge, ticksCounter)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		logger.Log("level", "info", "status", "listening", "addr", *addr)
		if err := http.ListenAndServe(*addr, nil); err != nil {
			logger.Log("level", "critical", "err", err)
			os.Exit(1)
		}
	}()

	epoch := time.Now().UTC()
	env := orbitalsim.NewEnvironmentFromConfig(epoch)
	sat := orbitalsim.NewSatellite(6.871e6, 0.01, 51.6, 0, 0, 0,
		orbitalsim.GravitationalConstant, orbitalsim.Earth.Mass,
		orbitalsim.Toggles{
			LunarGravity:      true,
			SolarGravity:      true,
			J2Oblateness:      true,
			AtmosphericDrag:   true,
			RadiationPressure: true,
		}, env)
	logger.Log("level", "info", "status", "start", "orbit", sat, "models", len(sat.EnabledModels()))

	var histChan chan orbitalsim.PropagationState
	exportDone := make(chan struct{})
	conf := orbitalsim.ExportConfig{Filename: *csvOut, AsCSV: *csvOut != "", Timestamp: true}
	if !conf.IsUseless() {
		histChan = make(chan orbitalsim.PropagationState, 1000)
		go func() {
			orbitalsim.StreamStates(conf, histChan)
			close(exportDone)
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	ticker := time.NewTicker(*tick)
	defer ticker.Stop()

	simTime := epoch
	for {
		select {
		case <-sigChan:
			// Finish the CSV trail before going down.
			if histChan != nil {
				close(histChan)
				<-exportDone
			}
			logger.Log("level", "notice", "status", "stopped", "orbit", sat)
			return
		case <-ticker.C:
			deltaTime := tick.Seconds() * *compression
			sat.Propagate(deltaTime)
			simTime = simTime.Add(time.Duration(deltaTime * float64(time.Second)))
			if meeus, ok := env.(*orbitalsim.MeeusEnvironment); ok {
				meeus.Advance(deltaTime)
			}

			a, e, i, _, _, _ := sat.ElementsDeg()
			semiMajorAxisGauge.Set(a)
			eccentricityGauge.Set(e)
			inclinationGauge.Set(i)
			velocityGauge.Set(sat.Velocity())
			dragGauge.Set(sat.DragAcceleration())
			srpGauge.Set(sat.RadiationPressureAcceleration())
			shadowGauge.Set(float64(sat.ShadowCondition()))
			ticksCounter.Inc()
			if histChan != nil {
				histChan <- orbitalsim.PropagationState{DT: simTime, Sat: *sat}
			}
		}
	}
}
