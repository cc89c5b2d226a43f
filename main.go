package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"tagaro/audio"
	"tagaro/beep"
	"tagaro/doctor"
	"tagaro/log"
	"tagaro/scene"
	"tagaro/shutdown"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	backendFlag := flag.String("backend", "", "Audio scene backend (default: $TAGARO_BACKEND or the build default)")
	framesFlag := flag.Int("frames", 60, "Number of frames to drive through the audio scene")
	tickFlag := flag.Duration("tick", 16*time.Millisecond, "Frame interval (0 = as fast as possible)")
	setupFlag := flag.Bool("setup", false, "Select output device interactively")
	deviceFlag := flag.String("device", "", "Use named output device")
	doctorFlag := flag.Bool("doctor", false, "Run audio diagnostics and exit")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	verboseFlag := flag.Bool("v", false, "Print the session summary")
	beepFlag := flag.Bool("beep", false, "Play a start tone on the output device at the scene volume")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("tagaro %s\n", version)
		return 0
	}

	// Resolve log directory early
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		return 1
	}
	log.SetDir(logPath)

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	s, err := openScene(*backendFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (available: %v)\n", err, scene.Backends())
		return 1
	}

	var dev *audio.DeviceInfo
	if *setupFlag || *deviceFlag != "" {
		dev, err = pickDevice(*deviceFlag)
		if err != nil {
			log.Warnf("device selection failed: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: device selection failed: %v\n", err)
			fmt.Fprintln(os.Stderr, "Falling back to default device")
			dev = nil
		} else {
			log.Info("output device: " + dev.Name)
		}
	}

	if *doctorFlag {
		return doctor.Run(s, dev)
	}

	if *beepFlag {
		if err := beep.Tone(dev, s.Volume()); err != nil {
			log.Warnf("start tone: %v", err)
		}
	}

	ctx, cancel := shutdown.Context(context.Background())
	defer cancel()

	log.SessionStart(s.Name(), *framesFlag)
	n := runFrames(ctx, s, *framesFlag, *tickFlag)
	log.SessionEnd(n)

	if *verboseFlag {
		fmt.Println(summary(s, n, dev))
	}
	return 0
}

func summary(s scene.Scene, frames int, dev *audio.DeviceInfo) string {
	device := "system default"
	if dev != nil {
		device = dev.Name
	}
	pos := s.ListenerPos()
	return fmt.Sprintf("backend=%s frames=%d device=%q listener=(%g, %g) volume=%g",
		s.Name(), frames, device, pos.X, pos.Y, s.Volume())
}

// openScene resolves the backend from the flag, then TAGARO_BACKEND, then the
// build default.
func openScene(name string) (scene.Scene, error) {
	if name == "" {
		name = os.Getenv("TAGARO_BACKEND")
	}
	if name == "" {
		return scene.New(), nil
	}
	return scene.Open(name)
}

func pickDevice(name string) (*audio.DeviceInfo, error) {
	ctx, err := audio.NewContext()
	if err != nil {
		return nil, fmt.Errorf("initializing audio: %w", err)
	}
	defer ctx.Close()

	if name != "" {
		return audio.FindDevice(ctx, name)
	}
	return audio.SelectDevice(ctx)
}
