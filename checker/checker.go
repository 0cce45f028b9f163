package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// HostStatus is the content the demo page loads while the skeleton is shown.
type HostStatus struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	Arch            string `json:"arch"`
	Procs           uint64 `json:"procs"`
	Uptime          uint64 `json:"uptime_seconds"`
	UptimeString    string `json:"uptime_string"`
}

// InfoFunc reads host information. It is swapped in tests.
type InfoFunc func(ctx context.Context) (*host.InfoStat, error)

// Checker collects host status.
type Checker struct {
	info InfoFunc
}

// New returns a Checker backed by gopsutil.
func New() *Checker {
	return &Checker{info: host.InfoWithContext}
}

// NewWithInfo returns a Checker reading host information from fn.
func NewWithInfo(fn InfoFunc) *Checker {
	return &Checker{info: fn}
}

// CheckHost reads the current host status.
func (c *Checker) CheckHost(ctx context.Context) (HostStatus, error) {
	info, err := c.info(ctx)
	if err != nil {
		return HostStatus{}, fmt.Errorf("reading host info: %w", err)
	}

	return HostStatus{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		Arch:            info.KernelArch,
		Procs:           info.Procs,
		Uptime:          info.Uptime,
		UptimeString:    FormatUptime(info.Uptime),
	}, nil
}

// FormatUptime renders seconds of uptime as days, hours and minutes.
func FormatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
