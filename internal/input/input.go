package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionOrbitLeft
	ActionOrbitRight
	ActionMoveUp
	ActionMoveDown
	ActionToggleSort
	ActionRegenerate
	ActionToggleProfiling
	ActionBreakBlock
	ActionPlaceBlock
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and tracks per-frame edges.
type InputManager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions   map[glfw.Key][]Action
	mouseToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with the default viewer bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:   make(map[glfw.Key][]Action),
		mouseToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionOrbitLeft)
	im.BindKey(glfw.KeyLeft, ActionOrbitLeft)
	im.BindKey(glfw.KeyD, ActionOrbitRight)
	im.BindKey(glfw.KeyRight, ActionOrbitRight)
	im.BindKey(glfw.KeySpace, ActionMoveUp)
	im.BindKey(glfw.KeyLeftShift, ActionMoveDown)
	im.BindKey(glfw.KeyO, ActionToggleSort)
	im.BindKey(glfw.KeyR, ActionRegenerate)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindMouseButton(glfw.MouseButtonLeft, ActionBreakBlock)
	im.BindMouseButton(glfw.MouseButtonRight, ActionPlaceBlock)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseToActions[button] = append(im.mouseToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	isPressed := action == glfw.Press || action == glfw.Repeat

	im.mu.Lock()
	defer im.mu.Unlock()

	im.applyLocked(im.keyToActions[key], isPressed)
}

// HandleMouseButtonEvent processes a mouse button event
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	isPressed := action == glfw.Press

	im.mu.Lock()
	defer im.mu.Unlock()

	im.applyLocked(im.mouseToActions[button], isPressed)
}

func (im *InputManager) applyLocked(actions []Action, isPressed bool) {
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// Attach routes the window's key and mouse button events into the manager.
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
}

// PostUpdate clears edge flags; call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true while the action is held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed returns true only in the frame the action was pressed
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased returns true only in the frame the action was released
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}
