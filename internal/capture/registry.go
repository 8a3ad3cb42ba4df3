package capture

import "time"

// KnownCamera is a camera sighting remembered from a previous run. The
// store keeps these so the game reattaches to the same physical camera even
// when the kernel hands it a different /dev/videoN node.
type KnownCamera struct {
	Identity string
	Name     string
	Path     string
	LastSeen time.Time
}

// ChooseDevice picks the capture device path. An explicit preference always
// wins. Otherwise the probed devices are matched against remembered cameras
// by identity and the most recently seen match is chosen, at its current
// path. With no match the first probed device is used, and with nothing
// probed at all the default path is returned as a last resort.
func ChooseDevice(preferred string, probed []DeviceInfo, known []KnownCamera) string {
	if preferred != "" {
		return preferred
	}

	var (
		bestPath string
		bestSeen time.Time
	)
	for _, dev := range probed {
		id := dev.Identity()
		if id == "" {
			continue
		}
		for _, k := range known {
			if k.Identity != id {
				continue
			}
			if bestPath == "" || k.LastSeen.After(bestSeen) {
				bestPath = dev.Path
				bestSeen = k.LastSeen
			}
		}
	}
	if bestPath != "" {
		return bestPath
	}

	if len(probed) > 0 {
		return probed[0].Path
	}

	return DefaultDevice
}
