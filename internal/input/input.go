// Package input maps GLFW keys to logical actions and tracks held state and
// per-frame press/release edges.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	// Player velocity, one action per axis direction.
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveDown
	ActionMoveUp
	ActionMoveForward
	ActionMoveBackward

	// Camera rotation while held.
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown

	// Camera translation while held.
	ActionCameraForward
	ActionCameraBackward
	ActionCameraLeft
	ActionCameraRight
	ActionCameraUp
	ActionCameraDown

	ActionToggleSpin
	ActionToggleOverlay
	ActionQuit

	ActionCount // Sentinel value for array sizing
)

// Manager holds keyboard state. GLFW delivers key events from PollEvents,
// which the game loop calls on the main thread; the lock keeps the manager
// safe if a caller feeds events from elsewhere.
type Manager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool

	// reset by PostUpdate
	justPressed [ActionCount]bool
}

// NewManager creates a Manager with the default key bindings.
func NewManager() *Manager {
	im := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyF, ActionMoveDown)
	im.BindKey(glfw.KeyR, ActionMoveUp)
	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)

	im.BindKey(glfw.KeyLeft, ActionYawLeft)
	im.BindKey(glfw.KeyRight, ActionYawRight)
	im.BindKey(glfw.KeyUp, ActionPitchUp)
	im.BindKey(glfw.KeyDown, ActionPitchDown)

	im.BindKey(glfw.KeyI, ActionCameraForward)
	im.BindKey(glfw.KeyK, ActionCameraBackward)
	im.BindKey(glfw.KeyJ, ActionCameraLeft)
	im.BindKey(glfw.KeyL, ActionCameraRight)
	im.BindKey(glfw.KeyU, ActionCameraUp)
	im.BindKey(glfw.KeyO, ActionCameraDown)

	im.BindKey(glfw.KeySpace, ActionToggleSpin)
	im.BindKey(glfw.KeyF3, ActionToggleOverlay)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action
func (im *Manager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent records a key transition. Repeat events count as held.
func (im *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, ok := im.keyToActions[key]
	if !ok {
		return
	}

	pressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if pressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = pressed
	}
}

// SetKeyCallback installs a GLFW key callback feeding this manager.
func (im *Manager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears the press edges; call once at the end of a frame.
func (im *Manager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.justPressed = [ActionCount]bool{}
}

// IsActive returns true if the action is currently being held down
func (im *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// Axis returns -1, 0 or 1 from a pair of opposing held actions.
func (im *Manager) Axis(negative, positive Action) float32 {
	var v float32
	if im.IsActive(negative) {
		v--
	}
	if im.IsActive(positive) {
		v++
	}
	return v
}
