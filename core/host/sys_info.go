// Copyright (C) INFINI Labs & INFINI LIMITED.
//
// The INFINI Framework is offered under the GNU Affero General Public License v3.0
// and as commercial software.
//
// For commercial licensing, contact us at:
//   - Website: infinilabs.com
//   - Email: hello@infini.ltd
//
// Open Source licensed under AGPL V3:
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package host

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/cihub/seelog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/event"
)

func GetCPUInfo() (physicalCnt int, logicalCnt int, modelName string, err error) {
	physicalCnt, err = cpu.Counts(false)
	if err != nil {
		return 0, 0, "", err
	}
	logicalCnt, err = cpu.Counts(true)
	if err != nil {
		return 0, 0, "", err
	}
	cpuInfos, _ := cpu.Info()
	for _, info := range cpuInfos {
		modelName = info.ModelName
	}
	return physicalCnt, logicalCnt, modelName, nil
}

func GetDiskInfo() (total uint64, free uint64, used uint64, usedPercent float64, err error) {

	if runtime.GOOS == "darwin" {
		statMac, err := diskUsage("/")
		if err != nil {
			return 0, 0, 0, 0, err
		}
		return statMac.Total, statMac.Free, statMac.Total - statMac.Free, float64(statMac.Total-statMac.Free) / float64(statMac.Total) * 100.00, nil
	}

	partitions, err := disk.Partitions(false)
	if err != nil || len(partitions) == 0 {
		return 0, 0, 0, 0, err
	}

	var stat *disk.UsageStat
	for _, disk := range partitions {
		if disk.Device == "" {
			log.Errorf("Could not get device info %v", disk)
			continue
		}
		stat, err = diskUsage(disk.Mountpoint)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		total += stat.Total
		free += stat.Free
		used += stat.Used
	}
	usedPercent = float64(total-free) / float64(total) * 100.00
	return total, free, used, usedPercent, nil
}

func diskUsage(mountPoint string) (*disk.UsageStat, error) {
	path := mountPoint
	v, err := disk.Usage(path)
	if err != nil {
		return nil, err
	}
	if v.Path != path {
		return nil, errors.New(fmt.Sprintf("get disk usage, target path: %s, result path: %s", path, v.Path))
	}
	return v, nil
}

func GetOSInfo() (hostName string, bootTime uint64, platform string, platformVersion string, kernelVersion string, kernelArch string, err error) {
	v, err := host.Info()
	if err != nil {
		return "", 0, "", "", "", "", err
	}
	empty := &host.InfoStat{}
	if v == empty {
		return "", 0, "", "", "", "", errors.New(fmt.Sprintf("Could not get hostinfo %v", v))
	}
	hostName = v.Hostname
	bootTime = v.BootTime
	platform = v.Platform
	platformVersion = v.PlatformVersion
	kernelVersion = v.KernelVersion
	kernelArch = v.KernelArch
	return hostName, bootTime, platform, platformVersion, kernelVersion, kernelArch, nil
}

func GetMemoryInfo() (total uint64, available uint64, used uint64, usedPercent float64, err error) {
	if runtime.GOOS == "solaris" {
		return 0, 0, 0, 0, errors.New("Only .Total is supported on Solaris")
	}

	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	empty := &mem.VirtualMemoryStat{}
	if v == empty {
		return 0, 0, 0, 0, errors.New("computer.memoryInfo: mem.VirtualMemoryStat is empty")
	}

	total = v.Used + v.Free + v.Buffers + v.Cached
	available = v.Available
	used = v.Used
	usedPercent = v.UsedPercent
	return total, available, used, usedPercent, nil
}

// GetHostInfo collects a one-shot snapshot of the local machine.
func GetHostInfo() (*HostInfo, error) {
	info := &HostInfo{}

	physicalCnt, logicalCnt, modelName, err := GetCPUInfo()
	if err != nil {
		return nil, errors.Wrap(err, "get cpu info err")
	}
	info.CPUInfo = CPU{Model: modelName, PhysicalCPU: physicalCnt, LogicalCPU: logicalCnt}

	hostName, _, platform, platformVersion, kernelVersion, kernelArch, err := GetOSInfo()
	if err != nil {
		return nil, errors.Wrap(err, "get os info err")
	}
	info.Name = hostName
	info.OSInfo = OS{Platform: platform, PlatformVersion: platformVersion, KernelVersion: kernelVersion, KernelArch: kernelArch}

	total, _, _, _, err := GetMemoryInfo()
	if err != nil {
		return nil, errors.Wrap(err, "get memory info err")
	}
	info.MemorySize = total

	diskTotal, _, _, _, err := GetDiskInfo()
	if err != nil {
		log.Debugf("get disk info err: %v", err)
	} else {
		info.DiskSize = diskTotal
	}

	return info, nil
}

// BuildNodeMeta describes this node for event records. Fields that can't be
// collected fall back to what the runtime knows.
func BuildNodeMeta(nodeID string) *event.NodeMeta {
	m := &event.NodeMeta{
		NodeID: nodeID,
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
	}
	m.Hostname, _ = os.Hostname()

	hostName, _, platform, _, _, kernelArch, err := GetOSInfo()
	if err != nil {
		log.Debugf("get os info err: %v", err)
		return m
	}
	if hostName != "" {
		m.Hostname = hostName
	}
	if platform != "" {
		m.OS = platform
	}
	if kernelArch != "" {
		m.Arch = kernelArch
	}
	return m
}
