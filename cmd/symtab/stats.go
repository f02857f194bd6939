package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/shirou/gopsutil/process"
)

// logRSS logs the resident set size of this process.
func logRSS() {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		glog.Errorf("stats: cannot find our own process: %s", err)
		return
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		glog.Errorf("stats: cannot read memory info: %s", err)
		return
	}
	glog.Infof("stats: RSS %d KiB", mem.RSS/1024)
}
