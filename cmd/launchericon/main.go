// Command launchericon generates the DND Scheduler launcher icons.
//
// Run from the Android project root, or point -out at it:
//
//	launchericon -out ../DND-Scheduler
//
// It writes playstore_icon_512.png and, for each mipmap density, the
// foreground, background, launcher and round launcher PNGs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gogpu/launchericon/internal/export"
	"github.com/gogpu/launchericon/internal/logging"
	"github.com/gogpu/launchericon/internal/resample"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("launchericon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		out     = fs.String("out", ".", "Android project directory")
		mkdir   = fs.Bool("mkdir", false, "create missing mipmap directories")
		filter  = fs.String("filter", resample.Lanczos.String(), "resampling filter: lanczos, catmullrom, bilinear, nearest")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := logging.New(stderr, *verbose)
	logging.SetLogger(logger)
	defer logging.SetLogger(nil)

	f, err := resample.ParseFilter(*filter)
	if err != nil {
		logger.Error("invalid flag", "err", err)
		return 2
	}

	fmt.Fprintln(stdout, "Creating Android launcher icons...")

	_, err = export.Run(ctx,
		export.WithBaseDir(*out),
		export.WithCreateDirs(*mkdir),
		export.WithFilter(f),
	)
	if err != nil {
		logger.Error("icon export failed", "err", err)
		return 1
	}

	fmt.Fprintln(stdout, "Icons created successfully!")
	return 0
}
