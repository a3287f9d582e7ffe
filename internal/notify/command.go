package notify

import (
	"log/slog"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/simmer/internal/cooking"
)

// Command runs a user supplied command once a recipe is done. The recipe ID
// and title are passed in SIMMER_RECIPE_ID and SIMMER_RECIPE_TITLE.
type Command struct {
	run    func(env []string, name string, args ...string) error
	logger *slog.Logger
	name   string
	args   []string
}

// NewCommand parses cmd with shell quoting rules. An empty cmd yields a nil
// Command.
func NewCommand(cmd string, logger *slog.Logger) (*Command, error) {
	if cmd == "" {
		return nil, nil
	}

	words, err := shellquote.Split(cmd)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	if len(words) == 0 {
		return nil, nil
	}

	return &Command{
		run:    startCmd,
		logger: logger,
		name:   words[0],
		args:   words[1:],
	}, nil
}

func (c *Command) Notify(evt cooking.Event) {
	if evt.Kind != cooking.SessionComplete {
		return
	}

	env := []string{
		"SIMMER_RECIPE_ID=" + evt.RecipeID,
		"SIMMER_RECIPE_TITLE=" + evt.Title,
	}

	if err := c.run(env, c.name, c.args...); err != nil {
		c.logger.Error("session command failed", "cmd", c.name, "error", err)
	}
}

func startCmd(env []string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), env...)

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
