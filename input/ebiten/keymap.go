package ebiten

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/strider/input"
)

var mouseButtons = map[string]ebiten.MouseButton{
	"mouseleft":   ebiten.MouseButtonLeft,
	"mouseright":  ebiten.MouseButtonRight,
	"mousemiddle": ebiten.MouseButtonMiddle,
}

// ParseKeyMap builds a KeyMap from action names to control names, e.g.
// {"jump": ["Space"], "punch": ["MouseLeft"]}. Actions missing from bindings
// keep their default controls.
func ParseKeyMap(bindings map[string][]string) (KeyMap, error) {
	keys := DefaultKeyMap()
	for actionName, controls := range bindings {
		action, ok := input.ParseAction(actionName)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", actionName)
		}
		var binding Binding
		for _, control := range controls {
			if btn, ok := mouseButtons[strings.ToLower(control)]; ok {
				binding.Buttons = append(binding.Buttons, btn)
				continue
			}
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(control)); err != nil {
				return nil, fmt.Errorf("action %q: unknown control %q: %w", actionName, control, err)
			}
			binding.Keys = append(binding.Keys, k)
		}
		keys[action] = binding
	}
	return keys, nil
}
