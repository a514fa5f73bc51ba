package application

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"numline/files"
)

// Transcript lists every widget with its current notation, one per line.
func (app *Application) Transcript() []string {
	lines := make([]string, 0, len(app.widgets))
	for _, w := range app.widgets {
		lines = append(lines, fmt.Sprintf("%s: %s", w.Kind, w.Notation(app.style())))
	}
	return lines
}

// SaveTranscript appends the transcript to the file at path, keeping what
// earlier sessions wrote there.
func (app *Application) SaveTranscript(path string) error {
	previous, err := files.ReadLines(path)
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		return err
	}
	lines := append(previous, app.Transcript()...)
	if err := files.Write(path, strings.NewReader(strings.Join(lines, "\n")+"\n")); err != nil {
		return err
	}
	app.log.WithField("path", path).Info("transcript saved")
	return nil
}
