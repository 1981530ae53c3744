package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a viewer action produced by keyboard input
type Command int

const (
	CommandStep Command = iota
	CommandTogglePause
	CommandFaster
	CommandSlower
	CommandQuit
)

var keyCommands = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeySpace, CommandStep},
	{ebiten.KeyN, CommandStep},
	{ebiten.KeyP, CommandTogglePause},
	{ebiten.KeyEqual, CommandFaster},
	{ebiten.KeyMinus, CommandSlower},
	{ebiten.KeyQ, CommandQuit},
}

// Handler tracks the mouse and the tile selected for inspection
type Handler struct {
	mouseX, mouseY int

	tileSize     int
	boardOffsetX int
	boardOffsetY int

	selectedX, selectedY int
	hasSelection         bool

	// tileValidator rejects clicks on tiles that cannot be selected
	tileValidator         func(x, y int) (bool, string)
	lastValidationMessage string
}

func NewHandler(tileSize int) *Handler {
	return &Handler{tileSize: tileSize}
}

// Update polls ebiten input and returns the commands issued this frame
func (h *Handler) Update() []Command {
	h.mouseX, h.mouseY = ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.Click(h.mouseX, h.mouseY)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.ClearSelection()
	}

	var cmds []Command
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}
	return cmds
}

// Click selects the tile under screen point (x, y), or deselects it when it
// is already selected
func (h *Handler) Click(x, y int) {
	tileX, tileY := h.ScreenToTile(x, y)

	if h.hasSelection && tileX == h.selectedX && tileY == h.selectedY {
		h.hasSelection = false
		return
	}
	if h.tileValidator != nil {
		if valid, msg := h.tileValidator(tileX, tileY); !valid {
			h.lastValidationMessage = msg
			return
		}
	}
	h.selectedX, h.selectedY = tileX, tileY
	h.hasSelection = true
	h.lastValidationMessage = ""
}

func (h *Handler) ClearSelection() {
	h.hasSelection = false
}

func (h *Handler) ScreenToTile(x, y int) (int, int) {
	// Floor division so points left of or above the board map to negative tiles
	fx, fy := x-h.boardOffsetX, y-h.boardOffsetY
	tileX, tileY := fx/h.tileSize, fy/h.tileSize
	if fx < 0 && fx%h.tileSize != 0 {
		tileX--
	}
	if fy < 0 && fy%h.tileSize != 0 {
		tileY--
	}
	return tileX, tileY
}

func (h *Handler) SetBoardOffset(x, y int) {
	h.boardOffsetX = x
	h.boardOffsetY = y
}

func (h *Handler) GetSelectedTile() (int, int, bool) {
	return h.selectedX, h.selectedY, h.hasSelection
}

func (h *Handler) GetHoveredTile() (int, int) {
	return h.ScreenToTile(h.mouseX, h.mouseY)
}

func (h *Handler) SetTileValidator(validator func(x, y int) (bool, string)) {
	h.tileValidator = validator
}

// GetLastValidationMessage returns and clears the last rejection message
func (h *Handler) GetLastValidationMessage() string {
	msg := h.lastValidationMessage
	h.lastValidationMessage = ""
	return msg
}
