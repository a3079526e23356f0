package metrics

import (
	"os"
	"runtime"

	"github.com/cloud-bulldozer/timecost/pkg/logging"
)

// NodeInfo stores the metadata of the machine the benchmarks ran on
type NodeInfo struct {
	NodeName  string `json:"nodeName"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPUs      int    `json:"cpus"`
	GoVersion string `json:"goVersion"`
}

// GatherNodeInfo collects the local host metadata for result documents
func GatherNodeInfo() NodeInfo {
	name, err := os.Hostname()
	if err != nil {
		logging.Warn("Unable to determine hostname, leaving node name empty")
		name = ""
	}
	return NodeInfo{
		NodeName:  name,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}
}
