package domain

// Interpretation is the positive outcome of interpreting one utterance.
type Interpretation struct {
	Command      DeviceCommand   `json:"command"`
	Confidence   float64         `json:"confidence"`
	RawCommand   string          `json:"raw_command"`
	Interpreted  []DeviceCommand `json:"interpreted_commands"`
	Alternatives []string        `json:"alternatives"`
}

// InterpretationContext accumulates state for a single interpretation
// call. It is owned by exactly one call and discarded with the response;
// it is not safe for concurrent use and never needs to be.
type InterpretationContext struct {
	availableDevices map[string]struct{}
	rawCommand       string
	confidence       float64
	interpreted      []DeviceCommand
}

func NewInterpretationContext(rawCommand string, devices []string) *InterpretationContext {
	ctx := &InterpretationContext{
		availableDevices: make(map[string]struct{}, len(devices)),
		rawCommand:       rawCommand,
	}
	for _, d := range devices {
		ctx.AddAvailableDevice(d)
	}
	return ctx
}

func (c *InterpretationContext) AddAvailableDevice(device string) {
	if device == "" {
		return
	}
	c.availableDevices[device] = struct{}{}
}

// RecordCommand appends an interpreted leaf and keeps the running maximum
// confidence across all leaves.
func (c *InterpretationContext) RecordCommand(cmd DeviceCommand) {
	c.interpreted = append(c.interpreted, cmd)
	if cmd.Confidence > c.confidence {
		c.confidence = clamp01(cmd.Confidence)
	}
}

func (c *InterpretationContext) Confidence() float64 {
	return c.confidence
}

func (c *InterpretationContext) RawCommand() string {
	return c.rawCommand
}

// AvailableDevices returns the known-device set. Callers must not mutate
// it; the context stays private to one interpretation call.
func (c *InterpretationContext) AvailableDevices() map[string]struct{} {
	return c.availableDevices
}

// Interpreted returns a copy of the interpreted leaves in insertion
// order.
func (c *InterpretationContext) Interpreted() []DeviceCommand {
	out := make([]DeviceCommand, len(c.interpreted))
	copy(out, c.interpreted)
	return out
}
