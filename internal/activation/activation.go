// Package activation turns an environment path into human-readable
// activation instructions. The host OS family is resolved once by the caller
// and passed in; nothing here inspects the running system.
package activation

import (
	"fmt"
	"io"
	"strings"
)

// Family is the OS family instructions are written for.
type Family int

const (
	POSIX Family = iota
	Windows
)

func (f Family) String() string {
	if f == Windows {
		return "windows"
	}
	return "posix"
}

// FamilyFor maps a GOOS value to a Family.
func FamilyFor(goos string) Family {
	if goos == "windows" {
		return Windows
	}
	return POSIX
}

// Instructions holds everything needed to activate one environment.
type Instructions struct {
	Family      Family
	EnvPath     string
	ScriptsDir  string // bin/ or Scripts/ inside the environment
	Activate    string // command that activates the environment
	Interpreter string // python executable inside the environment
}

// For computes the instructions for envPath. Paths are joined with the
// family's separator, not the host's. ScriptsDir and Interpreter are raw
// paths; Activate is a ready-to-paste command.
func For(envPath string, f Family) Instructions {
	inst := Instructions{Family: f, EnvPath: envPath}
	switch f {
	case Windows:
		inst.ScriptsDir = envPath + `\Scripts`
		inst.Activate = Quote(inst.ScriptsDir + `\activate`)
		inst.Interpreter = inst.ScriptsDir + `\python.exe`
	default:
		inst.ScriptsDir = envPath + "/bin"
		inst.Activate = "source " + Quote(inst.ScriptsDir+"/activate")
		inst.Interpreter = inst.ScriptsDir + "/python3"
	}
	return inst
}

// Quote wraps p in double quotes when it contains whitespace.
func Quote(p string) string {
	if !strings.ContainsAny(p, " \t") {
		return p
	}
	return `"` + p + `"`
}

// ManualCommand is the command a user can run to build the environment
// themselves.
func ManualCommand(python, envPath string) string {
	return python + " -m venv " + Quote(envPath)
}

// WriteBrief writes the short form shown after an environment is created or
// found to exist.
func WriteBrief(w io.Writer, inst Instructions) error {
	var b strings.Builder
	b.WriteString("\nTo activate the virtual environment, use the following command:\n")
	fmt.Fprintf(&b, "%s\n", inst.Activate)

	b.WriteString("\nIf you are using VS Code:\n")
	b.WriteString("1. Open VS Code.\n")
	b.WriteString("2. Press Ctrl+Shift+P (or Cmd+Shift+P on macOS) to open the command palette.\n")
	b.WriteString("3. Search for 'Python: Select Interpreter' and select it.\n")
	b.WriteString("4. Choose the interpreter located at:\n")
	fmt.Fprintf(&b, "%s\n", Quote(inst.Interpreter))
	b.WriteString("\nYour virtual environment is now ready to use!\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteDetailed writes the long form used when picking an environment to
// activate.
func WriteDetailed(w io.Writer, inst Instructions) error {
	var b strings.Builder
	b.WriteString("\nTo activate the virtual environment, use one of the following commands:\n")

	if inst.Family == Windows {
		b.WriteString("1. Navigate to the environment's 'Scripts' directory and run:\n")
		fmt.Fprintf(&b, "   cd %s\n", Quote(inst.ScriptsDir))
		b.WriteString("   activate\n")
		b.WriteString("\n   OR\n\n")
		b.WriteString("2. Use the direct path in Command Prompt:\n")
		bat := inst.ScriptsDir + `\activate.bat`
		fmt.Fprintf(&b, "   %s\n", Quote(bat))
		b.WriteString("\n**If you encounter an execution policy error, run one of the following commands in PowerShell:**\n")
		b.WriteString("   Set-ExecutionPolicy -ExecutionPolicy Bypass -Scope Process\n")
		b.WriteString("   OR\n")
		b.WriteString("   Set-ExecutionPolicy -ExecutionPolicy RemoteSigned -Scope CurrentUser\n")
	} else {
		fmt.Fprintf(&b, "%s\n", inst.Activate)
	}

	b.WriteString("\n**Note:** If you are running this inside a VS Code terminal,\n")
	b.WriteString("you may need to close the current terminal and reopen it before running the activation command.\n")
	b.WriteString("This ensures VS Code correctly applies the environment settings.\n")
	b.WriteString("\n**Additional Note:** If you are using VS Code, you should also select the correct Python interpreter.\n")
	b.WriteString("Follow these steps to select the interpreter:\n")
	b.WriteString("1. Press `Ctrl+Shift+P` (or `Cmd+Shift+P` on macOS) to open the Command Palette.\n")
	b.WriteString("2. Type 'Python: Select Interpreter' and select it from the list.\n")
	b.WriteString("3. Choose the interpreter located at:\n")
	fmt.Fprintf(&b, "   %s\n", Quote(inst.Interpreter))
	b.WriteString("\nThis ensures VS Code uses the correct virtual environment for running your code.\n")

	_, err := io.WriteString(w, b.String())
	return err
}
