/* Copyright © INFINI LTD. All rights reserved.
 * Web: https://infinilabs.com
 * Email: hello#infini.ltd */

package host

type HostInfo struct {
	Name       string `json:"name,omitempty"`        //eg: zhangsandeMacBook-Pro.local
	MemorySize uint64 `json:"memory_size,omitempty"` //byte, eg: 17179869184
	DiskSize   uint64 `json:"disk_size,omitempty"`   //byte, eg: 494384795648
	CPUInfo    CPU    `json:"cpu_info,omitempty"`
	OSInfo     OS     `json:"os_info,omitempty"`
}

type CPU struct {
	Model       string `json:"model,omitempty"` //eg: Apple M1 Pro
	PhysicalCPU int    `json:"physical_cpu,omitempty"`
	LogicalCPU  int    `json:"logical_cpu,omitempty"`
}

type OS struct {
	Platform        string `json:"platform,omitempty"`         //eg: darwin
	PlatformVersion string `json:"platform_version,omitempty"` //eg: 12.5
	KernelVersion   string `json:"kernel_version,omitempty"`   //eg: 21.6.0
	KernelArch      string `json:"kernel_arch,omitempty"`      //eg: arm64
}

type MemoryUsageInfo struct {
	Total       uint64  `json:"total"`     //byte
	Available   uint64  `json:"available"` //byte
	Used        uint64  `json:"used"`      //byte
	UsedPercent float64 `json:"used_percent"`
}

type DiskUsageInfo struct {
	Total       uint64  `json:"total"` //byte
	Free        uint64  `json:"free"`  //byte
	Used        uint64  `json:"used"`  //byte
	UsedPercent float64 `json:"used_percent"`
}
