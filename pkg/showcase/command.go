package showcase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// ErrUnknownSection is reported when the requested section is not one of the Section constants.
const ErrUnknownSection errorkit.Error = "unknown section"

const (
	SectionAll        = "all"
	SectionContainers = "containers"
	SectionAlgorithms = "algorithms"
)

// Command prints the showcase to the standard output.
type Command struct {
	Section string `flag:"section" env:"SHOWCASE_SECTION" default:"all" enum:"all,containers,algorithms," desc:"which part of the showcase to print"`
	Debug   bool   `flag:"debug" env:"SHOWCASE_DEBUG" desc:"enables debug logging on the standard error"`
}

func (cmd Command) Summary() string { return "prints the container and algorithm showcase" }

func (cmd Command) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	ctx := r.Context()
	if cmd.Debug {
		logger.Configure(func(l *logging.Logger) { l.Level = logging.LevelDebug })
	}

	sections, err := cmd.Sections(ctx)
	if errors.Is(err, ErrUnknownSection) {
		logger.Warn(ctx, "unknown showcase section requested", logging.Field("section", cmd.Section))
		fail(w, cli.ExitCodeBadRequest, err)
		return
	}
	if werr := Write(w, sections); werr != nil {
		logger.Error(ctx, "failed to write the showcase", logging.ErrField(werr))
		fail(w, cli.ExitCodeError, werr)
		return
	}
	if err != nil {
		logger.Error(ctx, "showcase failed", logging.ErrField(err))
		fail(w, cli.ExitCodeError, err)
		return
	}
	logger.Debug(ctx, "showcase completed", logging.Field("sections", len(sections)))
}

// Sections collects the sections selected by the Section field.
// An empty Section selects everything.
func (cmd Command) Sections(ctx context.Context) ([]Section, error) {
	switch cmd.Section {
	case SectionAll, "":
		algorithms, err := Algorithms(ctx, Numbers())
		return append(Containers(ctx), algorithms...), err
	case SectionContainers:
		return Containers(ctx), nil
	case SectionAlgorithms:
		return Algorithms(ctx, Numbers())
	default:
		return nil, ErrUnknownSection.F("%q", cmd.Section)
	}
}

func fail(w cli.ResponseWriter, code int, err error) {
	w.ExitCode(code)
	fmt.Fprintln(stderr(w), err.Error())
}

func stderr(w cli.ResponseWriter) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		if o := ew.Stderr(); o != nil {
			return o
		}
	}
	return w
}
