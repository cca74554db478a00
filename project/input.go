package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NOT-REAL-GAMES/anvil/input"
)

// inputActionJSON mirrors one entry of input.json's input_actions array,
// spec.md §6.3.
type inputActionJSON struct {
	Name          string   `json:"name"`
	InputValue    string   `json:"INPUT_VALUE"`
	InputBinding  string   `json:"INPUT_BINDING"`
	InputSource   string   `json:"INPUT_SOURCE"`
	Keys          []string `json:"KEYS"`
}

type inputJSON struct {
	Actions []inputActionJSON `json:"input_actions"`
}

// LoadInputJSON decodes path (spec.md §6.3) and registers every action
// it describes into channel.
func LoadInputJSON(path string, channel *input.Channel) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("project: read %s: %w", path, err)
	}

	var doc inputJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("project: parse %s: %w", path, err)
	}

	for _, a := range doc.Actions {
		info, err := decodeActionInfo(a)
		if err != nil {
			return fmt.Errorf("project: action %q in %s: %w", a.Name, path, err)
		}
		if _, err := channel.CreateAction(a.Name, info); err != nil {
			return fmt.Errorf("project: action %q in %s: %w", a.Name, path, err)
		}
	}
	return nil
}

func decodeActionInfo(a inputActionJSON) (input.CreateInfo, error) {
	var info input.CreateInfo

	switch a.InputValue {
	case "BOOL":
		info.ValueType = input.ValueBool
	case "FLOAT":
		info.ValueType = input.ValueFloat
	case "FLOAT_2":
		info.ValueType = input.ValueFloat2
	default:
		return info, fmt.Errorf("unknown INPUT_VALUE %q", a.InputValue)
	}

	switch a.InputBinding {
	case "BINDING":
		info.BindingType = input.BindingSingle
	case "COMPOSITE_UP_DOWN_RIGHT_LEFT":
		info.BindingType = input.BindingCompositeUpDownRightLeft
	default:
		return info, fmt.Errorf("unknown INPUT_BINDING %q", a.InputBinding)
	}

	switch a.InputSource {
	case "KEYBOARD":
		info.Source = input.SourceKeyboard
	case "MOUSE":
		info.Source = input.SourceMouse
	default:
		return info, fmt.Errorf("unknown INPUT_SOURCE %q", a.InputSource)
	}

	if a.InputValue == "BOOL" && a.InputBinding == "BINDING" {
		info.ActionType = input.ActionButton
	} else {
		info.ActionType = input.ActionValue
	}

	for i, name := range a.Keys {
		if i >= len(info.Keys) {
			break
		}
		k, ok := input.KeyByName(name)
		if !ok {
			return info, fmt.Errorf("unknown key %q", name)
		}
		info.Keys[i] = k
	}
	return info, nil
}
