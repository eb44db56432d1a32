package diligent

import (
	"reflect"
	"sort"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/diligent/internal/registry"
)

// WriteJSON writes the stats as a JSON object. Only topologies that were drawn and
// commands that were recorded are included.
func (s *DeviceContextStats) WriteJSON(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	topologies := make([]PrimitiveTopology, 0, len(s.PrimitiveCounts))
	for topology := range s.PrimitiveCounts {
		topologies = append(topologies, topology)
	}
	sort.Slice(topologies, func(i, j int) bool { return topologies[i] < topologies[j] })

	primitives := obj.Name("PrimitiveCounts").Object()
	for _, topology := range topologies {
		primitives.Name(topology.String()).Int(int(s.PrimitiveCounts[topology]))
	}
	primitives.End()

	commands := obj.Name("CommandCounters").Object()
	counters := reflect.ValueOf(s.CommandCounters)
	for _, field := range reflect.VisibleFields(counters.Type()) {
		count := counters.FieldByIndex(field.Index).Uint()
		if count > 0 {
			commands.Name(field.Name).Int(int(count))
		}
	}
	commands.End()
}

// StatsJSON returns the context's stats as JSON.
func (c *DeviceContext) StatsJSON() string {
	stats := c.Stats()

	writer := jwriter.NewWriter()
	stats.WriteJSON(&writer)
	return string(writer.Bytes())
}

func (i *GraphicsAdapterInfo) WriteJSON(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	i.writeFields(&obj)
}

func (i *GraphicsAdapterInfo) writeFields(obj *jwriter.ObjectState) {
	obj.Name("Description").String(i.Description)
	obj.Name("Type").String(i.Type.String())
	obj.Name("Vendor").String(i.Vendor.String())
	obj.Name("VendorID").Int(int(i.VendorID))
	obj.Name("DeviceID").Int(int(i.DeviceID))
	obj.Name("NumOutputs").Int(int(i.NumOutputs))

	memory := obj.Name("Memory").Object()
	memory.Name("LocalMemory").Int(int(i.Memory.LocalMemory))
	memory.Name("HostVisibleMemory").Int(int(i.Memory.HostVisibleMemory))
	memory.Name("UnifiedMemory").Int(int(i.Memory.UnifiedMemory))
	memory.Name("MaxMemoryAllocation").Int(int(i.Memory.MaxMemoryAllocation))
	memory.End()

	queues := obj.Name("Queues").Array()
	for _, queue := range i.Queues {
		q := queues.Object()
		q.Name("QueueType").String(queue.QueueType.String())
		q.Name("MaxDeviceContexts").Int(int(queue.MaxDeviceContexts))
		q.End()
	}
	queues.End()

	writeFeatures(obj, &i.Features)
}

func writeFeatures(obj *jwriter.ObjectState, features *DeviceFeatures) {
	featuresObj := obj.Name("Features").Object()
	features.Each(func(name string, state DeviceFeatureState) {
		featuresObj.Name(name).String(state.String())
	})
	featuresObj.End()
}

// BuildStatsString describes the device, its adapter and the engine objects currently
// held by wrappers as JSON.
func (d *RenderDevice) BuildStatsString() string {
	d.logger.Debug("RenderDevice::BuildStatsString")

	writer := jwriter.NewWriter()
	obj := writer.Object()

	info := d.DeviceInfo()
	device := obj.Name("Device").Object()
	device.Name("Type").String(info.Type.String())
	device.Name("APIVersion").String(info.APIVersion.String())
	writeFeatures(&device, &info.Features)
	device.End()

	adapter := d.AdapterInfo()
	adapterObj := obj.Name("Adapter").Object()
	adapter.writeFields(&adapterObj)
	adapterObj.End()

	writeObjectStatistics(&obj, registry.Default)

	obj.End()
	return string(writer.Bytes())
}

func writeObjectStatistics(obj *jwriter.ObjectState, reg *registry.Registry) {
	stats := reg.Statistics()
	total := reg.Total()

	totalObj := obj.Name("Total").Object()
	writeStatistics(&totalObj, &total)
	totalObj.End()

	kinds := obj.Name("Objects").Object()
	for _, kind := range reg.Kinds() {
		kindStats := stats[kind]
		kindObj := kinds.Name(kind).Object()
		writeStatistics(&kindObj, &kindStats)
		kindObj.End()
	}
	kinds.End()
}

func writeStatistics(obj *jwriter.ObjectState, stats *registry.Statistics) {
	obj.Name("Live").Int(stats.Live)
	obj.Name("Acquired").Int(stats.Acquired)
	obj.Name("Released").Int(stats.Released)
}
