package commands

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

type cmd func()
type Commands struct {
	log      *log.Logger
	commands map[string]cmd
}

func NewCommands(log *log.Logger) *Commands {
	return &Commands{log: log, commands: make(map[string]cmd)}
}

// Exec runs the command named command, or the only command it is a prefix
// of. It reports whether a command ran.
func (c *Commands) Exec(command string) bool {
	if cmd := c.findCommandByPrefix(command); cmd != nil {
		c.log.WithField("command", command).Debug("exec")
		cmd()
		return true
	}
	c.log.WithField("command", command).Warn("command not found")
	return false
}

func (c *Commands) findCommandByPrefix(commandPrefix string) cmd {
	if cmd, ok := c.commands[commandPrefix]; ok {
		return cmd
	}
	if commandPrefix == "" {
		return nil
	}
	var found cmd
	for name, cmd := range c.commands {
		if strings.HasPrefix(name, commandPrefix) {
			if found != nil {
				// ambiguous
				return nil
			}
			found = cmd
		}
	}
	return found
}

func (c *Commands) Register(name string, command cmd) {
	c.commands[name] = command
}

// Names lists the registered commands in alphabetical order.
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
