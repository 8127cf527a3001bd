package cli

import (
	"context"
	"errors"
	"github.com/jessevdk/go-flags"
	"io"
	"os"
)

// Run parses args and executes the selected command.
func Run(ctx context.Context, args []string) error {
	return RunWithIO(ctx, args, os.Stdout, os.Stderr)
}

// RunWithIO is Run with explicit output streams.
func RunWithIO(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	options := &Options{}
	app := newApp(ctx, options, stdout, stderr)
	options.bind(app)
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}
		app.init()
		defer app.Close()
		return command.Execute(args)
	}
	_, err := parser.ParseArgs(args)
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		_, _ = io.WriteString(stdout, flagsErr.Message+"\n")
		return nil
	}
	return err
}
