package capture

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// maxProbeDevices bounds the /dev/videoN scan.
const maxProbeDevices = 10

// sysfsVideoRoot is where the kernel exposes video device metadata. A
// variable so tests can point it at a fixture tree.
var sysfsVideoRoot = "/sys/class/video4linux"

// DeviceInfo describes a probed capture device.
type DeviceInfo struct {
	Path   string
	Name   string
	Driver string
	Bus    string
	Serial string
}

// Identity returns the stable key used to recognize the device across
// reboots and port changes: the USB serial when the hardware reports one,
// the bus position otherwise.
func (d DeviceInfo) Identity() string {
	if d.Serial != "" {
		return d.Serial
	}
	return d.Bus
}

var (
	cardTypeRe = regexp.MustCompile(`Card type\s*:\s*(.+)`)
	driverRe   = regexp.MustCompile(`Driver name\s*:\s*(.+)`)
	busInfoRe  = regexp.MustCompile(`Bus info\s*:\s*(.+)`)
)

// Probe scans /dev/video0 through /dev/video9 and describes every device
// present. Devices v4l2-ctl cannot describe are still listed by path, so a
// system without the tool degrades to plain path selection.
func Probe() []DeviceInfo {
	var devices []DeviceInfo
	for i := 0; i < maxProbeDevices; i++ {
		path := fmt.Sprintf("/dev/video%d", i)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		info, err := probeDevice(path)
		if err != nil {
			devices = append(devices, DeviceInfo{Path: path})
			continue
		}
		devices = append(devices, info)
	}
	return devices
}

func probeDevice(path string) (DeviceInfo, error) {
	out, err := exec.Command("v4l2-ctl", "--device", path, "--info").CombinedOutput()
	if err != nil {
		return DeviceInfo{}, fmt.Errorf("v4l2-ctl %s: %w", path, err)
	}

	info := parseDriverInfo(path, string(out))
	info.Serial = readSerial(path)
	return info, nil
}

// parseDriverInfo extracts the card name, driver and bus position from
// v4l2-ctl --info output.
func parseDriverInfo(path, output string) DeviceInfo {
	info := DeviceInfo{Path: path}

	if m := cardTypeRe.FindStringSubmatch(output); m != nil {
		info.Name = strings.TrimSpace(m[1])
	}
	if m := driverRe.FindStringSubmatch(output); m != nil {
		info.Driver = strings.TrimSpace(m[1])
	}
	if m := busInfoRe.FindStringSubmatch(output); m != nil {
		info.Bus = strings.TrimSpace(m[1])
	}
	return info
}

// readSerial pulls the USB serial number out of sysfs. Two levels up from
// the video device node is the USB device directory holding it. Not every
// camera reports one; missing is fine.
func readSerial(devicePath string) string {
	name := filepath.Base(devicePath)
	raw, err := os.ReadFile(filepath.Join(sysfsVideoRoot, name, "device", "..", "..", "serial"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
