package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type PromptAction int

const (
	PromptActionNone PromptAction = iota
	PromptActionSubmitted
	PromptActionCancelled
)

type PromptResult struct {
	Action PromptAction
	Name   string
	Args   []string
}

// PromptScreen reads one command line aimed at a target widget.
type PromptScreen struct {
	target  string
	input   textinput.Model
	history []string
	recall  int
}

func NewPromptScreen(target string, history []string) *PromptScreen {
	inp := textinput.New()
	inp.Placeholder = "select text Blue | enable false | isDisabled | source sizes"
	inp.Prompt = ": "
	inp.CharLimit = 256
	inp.Focus()
	return &PromptScreen{target: target, input: inp, history: history, recall: len(history)}
}

func (s *PromptScreen) Target() string { return s.target }

func (s *PromptScreen) Update(msg tea.Msg) (PromptResult, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			return PromptResult{Action: PromptActionCancelled}, nil
		case "enter":
			return parseLine(s.input.Value()), nil
		case "up":
			if s.recall > 0 {
				s.recall--
				s.input.SetValue(s.history[s.recall])
				s.input.CursorEnd()
			}
			return PromptResult{}, nil
		case "down":
			if s.recall < len(s.history)-1 {
				s.recall++
				s.input.SetValue(s.history[s.recall])
				s.input.CursorEnd()
			} else {
				s.recall = len(s.history)
				s.input.SetValue("")
			}
			return PromptResult{}, nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return PromptResult{}, cmd
}

func (s *PromptScreen) View(width int) string {
	s.input.Width = max(10, width-6)
	return "Command (target: " + s.target + ")\n" + s.input.View()
}

// parseLine splits a command line into a name and arguments. A blank line
// cancels.
func parseLine(line string) PromptResult {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return PromptResult{Action: PromptActionCancelled}
	}
	return PromptResult{Action: PromptActionSubmitted, Name: fields[0], Args: fields[1:]}
}
