package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form text parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values the preview currently displays.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer parameter.
func IntParam(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

// StringParam builds a text parameter.
func StringParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: v}
}

// Lines flattens the snapshot into "Label: value" rows, one group header per
// group.
func (s ParameterSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		if g.Name != "" {
			lines = append(lines, g.Name)
		}
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}
