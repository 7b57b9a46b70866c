package editor

import "fmt"

// Mode represents what the editor is waiting for
type Mode int

const (
	ModeMain      Mode = iota // Main menu
	ModeDraw                  // Drawing tools menu
	ModeAnimation             // Clip menu
	ModeEdit                  // Typing straight onto the canvas
	ModePrompt                // Reading a line or a single character
	ModePick                  // Choosing a canvas cell with the arrow keys
	ModePlay                  // Playing clips
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeMain:
		return "MAIN"
	case ModeDraw:
		return "DRAW"
	case ModeAnimation:
		return "ANIMATION"
	case ModeEdit:
		return "EDIT"
	case ModePrompt:
		return "PROMPT"
	case ModePick:
		return "PICK"
	case ModePlay:
		return "PLAY"
	default:
		return "UNKNOWN"
	}
}

// Menu lines and prompts.
const (
	mainMenu = "<E>dit / <M>ove / <R>eplace / <D>raw / <C>lear / <U>ndo / Red<O> / <L>oad / <S>ave / <A>nimation / <Q>uit: "

	promptEdit     = "Press <ESC> to stop editing "
	promptMoveCols = "Enter the column units to move: "
	promptMoveRows = "Enter the row units to move: "
	promptOldChar  = "Enter the character to be replaced: "
	promptNewChar  = "Enter the character to replace with: "
	promptSave     = "Enter the filename (don't enter 'txt'): "
	promptLoad     = "Enter filename to load (don't enter 'txt'): "

	promptBoxSize    = "Enter size: "
	promptNestedSize = "Enter size of largest box: "
	promptBoxCenter  = "Type any letter to choose box center, or <C> for screen center / <ESC> to cancel "
	promptLineStart  = "Type any letter to choose start point / <ESC> to cancel "
	promptLineEnd    = "Type any letter to choose end point / <ESC> to cancel "
	promptTreeHeight = "Enter approximate tree height: "
	promptTreeAngle  = "Enter branch angle: "
	promptTreeStart  = "Type any letter to choose start point, or <C> for bottom center / <ESC> to cancel "
	promptFill       = "Enter character to fill with from current location / <ESC> to cancel "

	promptClipSave = "Save clips as (don't enter 'txt'): "
	promptClipLoad = "Load clips named (don't enter 'txt'): "
	promptPlaying  = "Playing clips, press <ESC> to stop "
)

func drawMenu(animate bool) string {
	flag := 'N'
	if animate {
		flag = 'Y'
	}
	return fmt.Sprintf("<A>nimate: %c / <F>ill / <L>ine / <B>ox / <N>ested Boxes / <T>ree / <M>ain Menu: ", flag)
}

func animationMenu(clips int) string {
	return fmt.Sprintf("Clips: %d / <A>dd / <P>lay / <S>ave / <L>oad / <X> Clear / <M>ain Menu: ", clips)
}
