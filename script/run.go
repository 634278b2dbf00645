package script

import (
	"log"
	"os"
	"os/exec"
)

// Write writes script text next to the data files it references.
func Write(file, text string) error {
	return os.WriteFile(file, []byte(text), 0755)
}

// Run executes a written shell script in dir. Failures are advisory: the
// text outputs are already on disk, so a missing or broken plotting tool is
// logged and swallowed, never propagated.
func Run(dir, file string) {
	RunTool(dir, "sh", file)
}

// RunTool invokes an external plotting tool in dir with the same advisory
// failure policy as Run.
func RunTool(dir, tool string, args ...string) {
	cmd := exec.Command(tool, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		log.Printf("Plotting tool %s failed: %s", tool, err.Error())
	}
}
