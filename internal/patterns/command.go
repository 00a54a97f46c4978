package patterns

import (
	"fmt"
	"io"
)

// Command is an action bound to its receiver.
type Command interface {
	Execute()
}

// CommandFunc adapts a plain function to Command.
type CommandFunc func()

// Execute calls f.
func (f CommandFunc) Execute() { f() }

// Light is a receiver that reports its state changes.
type Light struct {
	w io.Writer
}

// NewLight creates a light reporting to w.
func NewLight(w io.Writer) *Light { return &Light{w: w} }

func (l *Light) On()  { fmt.Fprintln(l.w, "The light is ON") }
func (l *Light) Off() { fmt.Fprintln(l.w, "The light is OFF") }

// Fan is a receiver that reports its state changes.
type Fan struct {
	w io.Writer
}

// NewFan creates a fan reporting to w.
func NewFan(w io.Writer) *Fan { return &Fan{w: w} }

func (f *Fan) On()  { fmt.Fprintln(f.w, "The fan is ON") }
func (f *Fan) Off() { fmt.Fprintln(f.w, "The fan is OFF") }

// LightOnCommand switches a light on.
type LightOnCommand struct {
	Light *Light
}

func (c LightOnCommand) Execute() { c.Light.On() }

// FanOffCommand switches a fan off.
type FanOffCommand struct {
	Fan *Fan
}

func (c FanOffCommand) Execute() { c.Fan.Off() }

// RemoteControl is the invoker: it runs whichever command is loaded.
type RemoteControl struct {
	command Command
}

// SetCommand loads the command run by the next button press.
func (r *RemoteControl) SetCommand(c Command) {
	r.command = c
}

// PressButton runs the loaded command.
func (r *RemoteControl) PressButton() error {
	if r.command == nil {
		return fmt.Errorf("no command set")
	}
	r.command.Execute()
	return nil
}

// RunCommandDemo turns the living room light on and the ceiling fan off.
func RunCommandDemo(w io.Writer) error {
	livingRoomLight := NewLight(w)
	ceilingFan := NewFan(w)

	remote := &RemoteControl{}

	remote.SetCommand(LightOnCommand{Light: livingRoomLight})
	if err := remote.PressButton(); err != nil {
		return err
	}

	remote.SetCommand(FanOffCommand{Fan: ceilingFan})
	return remote.PressButton()
}
