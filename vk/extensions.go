package vk

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/diligent"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v2/khr_portability_subset"
	"golang.org/x/exp/slices"
)

// InstanceExtensions returns the instance extensions from available that the engine
// needs for validation output and for enumerating portability drivers such as
// MoltenVK, along with the instance flags they require.
func InstanceExtensions(available map[string]*core1_0.ExtensionProperties, validation bool) ([]string, core1_0.InstanceCreateFlags) {
	var names []string
	var flags core1_0.InstanceCreateFlags

	if _, ok := available[ext_debug_utils.ExtensionName]; ok && validation {
		names = append(names, ext_debug_utils.ExtensionName)
	}

	if _, ok := available[khr_portability_enumeration.ExtensionName]; ok {
		names = append(names, khr_portability_enumeration.ExtensionName)
		flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	return names, flags
}

// DeviceExtensions returns the device extensions from available that a device on a
// portability driver must enable.
func DeviceExtensions(available map[string]*core1_0.ExtensionProperties) []string {
	if _, ok := available[khr_portability_subset.ExtensionName]; ok {
		return []string{khr_portability_subset.ExtensionName}
	}
	return nil
}

// AddExtensions adds the extensions InstanceExtensions and DeviceExtensions select to
// ci, skipping any it already lists. Validation output is requested when
// ci.EnableValidation is set.
func AddExtensions(ci *diligent.EngineVkCreateInfo, instanceExtensions, deviceExtensions map[string]*core1_0.ExtensionProperties) {
	instanceNames, _ := InstanceExtensions(instanceExtensions, ci.EnableValidation)
	ci.InstanceExtensionNames = appendMissing(ci.InstanceExtensionNames, instanceNames...)
	ci.DeviceExtensionNames = appendMissing(ci.DeviceExtensionNames, DeviceExtensions(deviceExtensions)...)
}

func appendMissing(names []string, add ...string) []string {
	for _, name := range add {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}
