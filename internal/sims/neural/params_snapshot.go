package neural

import (
	"fmt"
	"strconv"

	"simple-nca/internal/core"
)

const (
	kernelWeightStep = 0.01
	kernelWeightMax  = 2.0
	maxWorkers       = 64
)

// Parameters reports the profile, world and kernel values for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	k := w.engine.Kernel()
	weights := make([]core.Parameter, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			weights = append(weights, weightParam(weightKey(row, col), weightLabel(row, col), k.At(row, col)))
		}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Profile",
			Params: []core.Parameter{
				textParam("profile", "Profile", w.cfg.Profile.Name),
				textParam("activation", "Activation", w.engine.Activation().Name()),
				uintParam("generation", "Generation", w.engine.Generation()),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.engine.Rows()),
				intParam("h", "Height", w.engine.Cols()),
				int64Param("seed", "Seed", w.seed),
				intParam("workers", "Workers", w.engine.Workers()),
			},
		},
		{Name: "Kernel", Params: weights},
	}}
}

// ParameterControls exposes the nine kernel weights and the worker bound.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, 10)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			controls = append(controls, core.ParameterControl{
				Key:    weightKey(row, col),
				Label:  weightLabel(row, col),
				Type:   core.ParamTypeFloat,
				Step:   kernelWeightStep,
				Min:    -kernelWeightMax,
				Max:    kernelWeightMax,
				HasMin: true,
				HasMax: true,
			})
		}
	}
	controls = append(controls, core.ParameterControl{
		Key:    "workers",
		Label:  "Workers (0=auto)",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    0,
		Max:    maxWorkers,
		HasMin: true,
		HasMax: true,
	})
	return controls
}

// SetFloatParameter replaces one kernel weight, clamped to +/-2.
func (w *World) SetFloatParameter(key string, value float64) bool {
	row, col, ok := parseWeightKey(key)
	if !ok {
		return false
	}
	if value > kernelWeightMax {
		value = kernelWeightMax
	}
	if value < -kernelWeightMax {
		value = -kernelWeightMax
	}
	k := w.engine.Kernel().With(row, col, float32(value))
	w.engine.Configure(k, w.engine.Activation())
	return true
}

// SetIntParameter updates the worker bound.
func (w *World) SetIntParameter(key string, value int) bool {
	if key != "workers" {
		return false
	}
	value = max(0, min(value, maxWorkers))
	w.engine.SetWorkers(value)
	return true
}

func weightKey(row, col int) string { return fmt.Sprintf("k%d%d", row, col) }

func weightLabel(row, col int) string {
	return fmt.Sprintf("Weight %+d,%+d", row-1, col-1)
}

func parseWeightKey(key string) (row, col int, ok bool) {
	if len(key) != 3 || key[0] != 'k' {
		return 0, 0, false
	}
	row, col = int(key[1]-'0'), int(key[2]-'0')
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, 0, false
	}
	return row, col, true
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatUint(value, 10)}
}

// weightParam formats at float32 precision so 0.68 reads as 0.68.
func weightParam(key, label string, value float32) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(float64(value), 'f', -1, 32),
	}
}
