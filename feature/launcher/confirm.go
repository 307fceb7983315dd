package launcher

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirmer asks the user a yes/no question. It is an interface so the
// interactive prompt can be stubbed in tests and bypassed with --yes.
type Confirmer interface {
	Confirm(prompt string) bool
}

// StdinConfirmer prompts on stdout and reads the answer from stdin.
type StdinConfirmer struct{}

// Confirm prints the prompt and returns true only for an explicit yes.
func (StdinConfirmer) Confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// AutoConfirmer answers yes to every prompt (the --yes flag).
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string) bool { return true }
