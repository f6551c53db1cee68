package orbitalsim

import (
	"fmt"
	"os"
	"time"
)

// PropagationState stores one propagated state for trail recording.
type PropagationState struct {
	DT  time.Time
	Sat Satellite
}

// ExportConfig configures the state-history CSV streaming.
type ExportConfig struct {
	Filename     string
	AsCSV        bool
	Timestamp    bool
	CSVAppend    func(st PropagationState) string // Custom export (do not include leading comma)
	CSVAppendHdr func() string                    // Header for the custom export
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV
}

func createCSVFile(filename string, conf ExportConfig, stateDT time.Time) *os.File {
	cfg := simConfig()
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/orbital-elements-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", cfg.outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/orbital-elements-%s.csv", cfg.outputDir, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are a, e, i, Omega, omega, nu. All angles are in degrees.
#   Simulation time start (UTC): %s
time,a,e,i,Omega,omega,nu,driftOmega,driftomega,drifti,`, time.Now(), stateDT.UTC()))
	if conf.CSVAppendHdr != nil {
		// Append the headers for the appended columns.
		f.WriteString(conf.CSVAppendHdr())
	}
	f.WriteString("\n")
	return f
}

// StreamStates streams the propagated states of the channel to the configured CSV file.
// Close the channel to finish the file. Run it in its own goroutine; the producer must
// only send between complete Propagate calls.
func StreamStates(conf ExportConfig, stateChan <-chan PropagationState) {
	if conf.IsUseless() {
		for range stateChan {
			// Drain so the producer never blocks.
		}
		return
	}
	var f *os.File
	for state := range stateChan {
		if f == nil {
			f = createCSVFile(conf.Filename, conf, state.DT)
			defer f.Close()
		}
		a, e, i, ω, Ω, ν := state.Sat.ElementsDeg()
		drift := state.Sat.Drift()
		f.WriteString(fmt.Sprintf("%s,%f,%f,%f,%f,%f,%f,%e,%e,%e,", state.DT.UTC().Format(time.RFC3339), a, e, i, Ω, ω, ν,
			drift.AscendingNode, drift.ArgOfPeriapsis, drift.Inclination))
		if conf.CSVAppend != nil {
			f.WriteString(conf.CSVAppend(state))
		}
		f.WriteString("\n")
	}
}
