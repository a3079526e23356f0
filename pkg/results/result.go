package result

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cloud-bulldozer/timecost/pkg/config"
	"github.com/cloud-bulldozer/timecost/pkg/logging"
	"github.com/cloud-bulldozer/timecost/pkg/measurement"
	"github.com/cloud-bulldozer/timecost/pkg/metrics"
	stats "github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	math "github.com/aclements/go-moremath/stats"
)

// Specify Language specific case wrapper as global variable
var caser = cases.Title(language.English)

// Data describes the result data
type Data struct {
	config.Config
	Driver      string
	Metric      string
	NodeInfo    metrics.NodeInfo
	StartTime   time.Time
	EndTime     time.Time
	TimeSummary []float64
}

// ScenarioResults each scenario could have multiple results
type ScenarioResults struct {
	Results []Data
	Metadata
}

// Metadata for the run
type Metadata struct {
	Version   string           `json:"toolVersion"`
	GitCommit string           `json:"toolGitCommit"`
	Node      metrics.NodeInfo `json:"node"`
}

// Average accepts array of floats to calculate average
func Average(vals []float64) (float64, error) {
	return stats.Mean(vals)
}

// Median accepts array of floats to calculate the median, which picks the
// display magnitude for a whole sample batch
func Median(vals []float64) (float64, error) {
	return stats.Median(vals)
}

// Percentile accepts array of floats and the desired %tile to calculate
func Percentile(vals []float64, ptile float64) (float64, error) {
	return stats.Percentile(vals, ptile)
}

// ConfidenceInterval accepts array of floats and the desired interval
func ConfidenceInterval(vals []float64, ci float64) (float64, float64, float64) {
	return math.MeanCI(vals, ci)
}

// Method to init common table structure.
func initTable(header []string) *tablewriter.Table {
	// Create a new table writer with the appropriate header and alignment options
	table := tablewriter.NewWriter(os.Stdout)
	// Add a header to the table
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}

// scaled returns a copy of the raw nanosecond batch rescaled by fn, along
// with the unit label fn picked. The originals stay raw so each table runs
// its own scaling pass.
func scaled(raw []float64, fn func(typical float64, values []float64) string) ([]float64, string, error) {
	typical, err := Median(raw)
	if err != nil {
		return nil, "", err
	}
	values := append([]float64(nil), raw...)
	unit := fn(typical, values)
	return values, unit, nil
}

// Abstracts out the common code for results
func renderResults(s ScenarioResults, title string, fn func(r Data, raw []float64) ([]float64, string, error)) {
	table := initTable([]string{"Result Type", "Driver", "Scenario", "Size", "Unit", "Iterations", "Samples", "Avg value", "95% Confidence Interval"})
	for _, r := range s.Results {
		if len(r.Driver) < 1 {
			continue
		}
		values, unit, err := fn(r, r.TimeSummary)
		if err != nil {
			logging.Warnf("Unable to scale %s results for %s: %v", title, r.Profile, err)
			continue
		}
		avg, _ := Average(values)
		var lo, hi float64
		if r.Samples > 1 {
			_, lo, hi = ConfidenceInterval(values, 0.95)
		}
		table.Append([]string{fmt.Sprintf("📊 %s Results", caser.String(title)), r.Driver, r.Profile, strconv.FormatUint(r.Size, 10), r.Unit, strconv.FormatUint(r.Iterations, 10), strconv.Itoa(r.Samples), fmt.Sprintf("%f (%s)", avg, unit), fmt.Sprintf("%f-%f (%s)", lo, hi, unit)})
	}
	table.Render()
}

// ShowTimeResult will display the per-iteration wall time results
func ShowTimeResult(s ScenarioResults, f measurement.ValueFormatter) {
	logging.Debug("Rendering time results")
	renderResults(s, "time", func(r Data, raw []float64) ([]float64, string, error) {
		return scaled(raw, f.ScaleValues)
	})
}

// ShowThroughputResult will display the units-per-second throughput results
func ShowThroughputResult(s ScenarioResults, f measurement.ValueFormatter) {
	logging.Debug("Rendering throughput results")
	renderResults(s, "throughput", func(r Data, raw []float64) ([]float64, string, error) {
		return scaled(raw, func(typical float64, values []float64) string {
			return f.ScaleThroughputs(typical, r.Throughput(), values)
		})
	})
}

// ShowTimePerUnitResult will display the inverted throughput results, the
// time spent per element or byte. The formatter decides the actual
// convention, so pass the inverted backend's formatter here.
func ShowTimePerUnitResult(s ScenarioResults, f measurement.ValueFormatter) {
	logging.Debug("Rendering time per unit results")
	renderResults(s, "time per unit", func(r Data, raw []float64) ([]float64, string, error) {
		return scaled(raw, func(typical float64, values []float64) string {
			return f.ScaleThroughputs(typical, r.Throughput(), values)
		})
	})
}
