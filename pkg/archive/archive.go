package archive

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cloud-bulldozer/go-commons/indexers"
	"github.com/cloud-bulldozer/timecost/pkg/inverted"
	"github.com/cloud-bulldozer/timecost/pkg/logging"
	"github.com/cloud-bulldozer/timecost/pkg/measurement"
	"github.com/cloud-bulldozer/timecost/pkg/metrics"
	result "github.com/cloud-bulldozer/timecost/pkg/results"
)

// Doc struct of the JSON document to be indexed
type Doc struct {
	UUID              string           `json:"uuid"`
	Timestamp         time.Time        `json:"timestamp"`
	Driver            string           `json:"driver"`
	Profile           string           `json:"profile"`
	Samples           int              `json:"samples"`
	Iterations        uint64           `json:"iterations"`
	Size              uint64           `json:"size"`
	Unit              string           `json:"unit"`
	Time              float64          `json:"time"`
	TimeMetric        string           `json:"timeMetric"`
	Throughput        float64          `json:"throughput"`
	TputMetric        string           `json:"tputMetric"`
	TimePerUnit       float64          `json:"timePerUnit"`
	TimePerUnitMetric string           `json:"timePerUnitMetric"`
	ToolVersion       string           `json:"toolVersion"`
	ToolGitCommit     string           `json:"toolGitCommit"`
	Metadata          result.Metadata  `json:"metadata"`
	NodeInfo          metrics.NodeInfo `json:"nodeInfo"`
	Confidence        []float64        `json:"confidence"`
}

// Connect returns a client connected to the desired cluster.
func Connect(url, index string, skip bool) (*indexers.Indexer, error) {
	var err error
	var indexer *indexers.Indexer
	indexerConfig := indexers.IndexerConfig{
		Type:               "opensearch",
		Servers:            []string{url},
		Index:              index,
		InsecureSkipVerify: skip,
	}
	logging.Infof("📁 Creating indexer: %s", indexerConfig.Type)
	indexer, err = indexers.NewIndexer(indexerConfig)
	if err != nil {
		logging.Errorf("%v indexer: %v", indexerConfig.Type, err.Error())
		return nil, fmt.Errorf("failure while connecting to Opensearch")
	}
	logging.Infof("Connected to : %s ", url)
	return indexer, nil
}

// summarize rescales a copy of the raw batch with fn and averages it.
func summarize(raw []float64, fn func(typical float64, values []float64) string) (float64, string, error) {
	typical, err := result.Median(raw)
	if err != nil {
		return 0, "", err
	}
	values := append([]float64(nil), raw...)
	unit := fn(typical, values)
	avg, err := result.Average(values)
	if err != nil {
		return 0, "", err
	}
	return avg, unit, nil
}

// BuildDocs returns the documents that need to be indexed or an error.
func BuildDocs(sr result.ScenarioResults, uuid string) ([]interface{}, error) {
	now := time.Now().UTC()
	base := measurement.WallTime{}.Formatter()
	inv := inverted.New().Formatter()

	var docs []interface{}
	if len(sr.Results) < 1 {
		return nil, fmt.Errorf("no result documents")
	}
	for _, r := range sr.Results {
		if len(r.Driver) < 1 {
			continue
		}
		d := Doc{
			UUID:          uuid,
			Timestamp:     now,
			ToolVersion:   sr.Version,
			ToolGitCommit: sr.GitCommit,
			Driver:        r.Driver,
			Profile:       r.Profile,
			Samples:       r.Samples,
			Iterations:    r.Iterations,
			Size:          r.Size,
			Unit:          r.Unit,
			Metadata:      sr.Metadata,
			NodeInfo:      r.NodeInfo,
		}
		typical, err := result.Median(r.TimeSummary)
		if err != nil {
			logging.Warnf("Unable to process time summary for %s: %v", r.Profile, err)
			continue
		}
		scaledTimes := append([]float64(nil), r.TimeSummary...)
		d.TimeMetric = base.ScaleValues(typical, scaledTimes)
		d.Time, _ = result.Average(scaledTimes)
		if r.Samples > 1 {
			_, lo, hi := result.ConfidenceInterval(scaledTimes, 0.95)
			d.Confidence = []float64{lo, hi}
		}
		tput := r.Throughput()
		avg, unit, err := summarize(r.TimeSummary, func(typical float64, values []float64) string {
			return base.ScaleThroughputs(typical, tput, values)
		})
		if err == nil {
			d.Throughput = avg
			d.TputMetric = unit
		}
		avg, unit, err = summarize(r.TimeSummary, func(typical float64, values []float64) string {
			return inv.ScaleThroughputs(typical, tput, values)
		})
		if err == nil {
			d.TimePerUnit = avg
			d.TimePerUnitMetric = unit
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Common csv header fields.
func commonCsvHeaderFields() []string {
	return []string{
		"Driver",
		"Profile",
		"Samples",
		"Iterations",
		"Size",
		"Unit",
	}
}

// Common csv data fields.
func commonCsvDataFields(row result.Data) []string {
	return []string{
		fmt.Sprint(row.Driver),
		fmt.Sprint(row.Profile),
		strconv.Itoa(row.Samples),
		strconv.FormatUint(row.Iterations, 10),
		strconv.FormatUint(row.Size, 10),
		fmt.Sprint(row.Unit),
	}
}

// WriteJSONResult sends the results as JSON to stdout
func WriteJSONResult(r result.ScenarioResults, uuid string) error {
	docs, err := BuildDocs(r, uuid)
	if err != nil {
		return err
	}
	p, err := json.MarshalIndent(docs, " ", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(p))
	return nil
}

// WriteCSVResult will write the benchmark summaries to the local filesystem
func WriteCSVResult(r result.ScenarioResults) error {
	d := time.Now().Unix()
	fp, err := os.Create(fmt.Sprintf("result-%d.csv", d))
	if err != nil {
		return fmt.Errorf("failed to open archive file")
	}
	defer fp.Close()
	archive := csv.NewWriter(fp)
	defer archive.Flush()

	base := measurement.WallTime{}.Formatter()
	inv := inverted.New().Formatter()

	data := append(commonCsvHeaderFields(),
		"Avg Time",
		"Time Metric",
		"Avg Throughput",
		"Throughput Metric",
		"Avg Time Per Unit",
		"Time Per Unit Metric",
	)

	if err := archive.Write(data); err != nil {
		return fmt.Errorf("failed to write result archive to file")
	}
	for _, row := range r.Results {
		if len(row.Driver) < 1 {
			continue
		}
		avgTime, timeUnit, err := summarize(row.TimeSummary, base.ScaleValues)
		if err != nil {
			return fmt.Errorf("failed to summarize %s: %v", row.Profile, err)
		}
		tput := row.Throughput()
		avgTput, tputUnit, _ := summarize(row.TimeSummary, func(typical float64, values []float64) string {
			return base.ScaleThroughputs(typical, tput, values)
		})
		avgInv, invUnit, _ := summarize(row.TimeSummary, func(typical float64, values []float64) string {
			return inv.ScaleThroughputs(typical, tput, values)
		})
		data := append(commonCsvDataFields(row),
			fmt.Sprintf("%f", avgTime),
			timeUnit,
			fmt.Sprintf("%f", avgTput),
			tputUnit,
			fmt.Sprintf("%f", avgInv),
			invUnit,
		)
		if err := archive.Write(data); err != nil {
			return fmt.Errorf("failed to write archive to file")
		}
	}
	return nil
}
