package doctor

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"tagaro/audio"
	"tagaro/beep"
	"tagaro/scene"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	headStyle = lipgloss.NewStyle().Bold(true)
)

// Options tunes a doctor run.
type Options struct {
	// Device is the output the tone check plays on; nil means system default.
	Device *audio.DeviceInfo
	// Play renders the audible tone. The tone check is skipped when nil.
	Play beep.Player
}

// Run executes diagnostic checks against the system audio devices and the
// given scene backend and returns an exit code (0=all pass, 1=any fail).
func Run(s scene.Scene, dev *audio.DeviceInfo) int {
	ctx, err := audio.NewContext()
	if err != nil {
		fmt.Fprintln(os.Stdout, headStyle.Render("tagaro doctor"))
		fmt.Fprintf(os.Stdout, "  %s cannot connect to audio: %v\n", failStyle.Render("FAIL:"), err)
		return 1
	}
	defer ctx.Close()
	return Check(os.Stdout, ctx, s, Options{Device: dev, Play: beep.Tone})
}

// Check runs every check, writing a report to w.
func Check(w io.Writer, ctx audio.Context, s scene.Scene, opts Options) int {
	fmt.Fprintln(w, headStyle.Render("tagaro doctor - audio scene diagnostics"))
	fmt.Fprintln(w, "=======================================")

	allPass := true
	if !checkDevices(w, ctx) {
		allPass = false
	}
	if !checkScene(w, s) {
		allPass = false
	}
	if !checkWarnOnce(w) {
		allPass = false
	}
	if !checkTone(w, s, opts) {
		allPass = false
	}

	fmt.Fprintln(w)
	if allPass {
		fmt.Fprintln(w, "All checks passed!")
		return 0
	}
	fmt.Fprintln(w, "Some checks failed. See details above.")
	return 1
}

func checkDevices(w io.Writer, ctx audio.Context) bool {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[1/4] Playback devices")

	devices, err := ctx.Devices()
	if err != nil {
		fmt.Fprintf(w, "  %s cannot list devices: %v\n", failStyle.Render("FAIL:"), err)
		return false
	}
	if len(devices) == 0 {
		fmt.Fprintf(w, "  %s %v\n", failStyle.Render("FAIL:"), audio.ErrNoDevices)
		return false
	}
	for _, d := range devices {
		suffix := ""
		if audio.IsBluetooth(d.Name) {
			suffix = " (bluetooth)"
		}
		fmt.Fprintf(w, "  - %s%s\n", d.Name, suffix)
	}
	fmt.Fprintf(w, "  %s %d device(s) found\n", passStyle.Render("PASS:"), len(devices))
	return true
}

// checkScene probes the backend with off-default values. A backend that
// ignores them is reported, not failed: that is the null backend's contract.
func checkScene(w io.Writer, s scene.Scene) bool {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "[2/4] Audio scene backend (%s)\n", s.Name())

	probe := scene.Point{X: 3, Y: -4}
	s.SetListenerPos(probe)
	if got := s.ListenerPos(); got == probe {
		fmt.Fprintf(w, "  %s listener position follows updates\n", passStyle.Render("PASS:"))
	} else {
		fmt.Fprintf(w, "  %s listener position unsupported, fixed at (%g, %g)\n",
			infoStyle.Render("INFO:"), got.X, got.Y)
	}

	const probeVolume = 0.25
	s.SetVolume(probeVolume)
	if got := s.Volume(); got == probeVolume {
		fmt.Fprintf(w, "  %s volume follows updates\n", passStyle.Render("PASS:"))
	} else {
		fmt.Fprintf(w, "  %s volume control unsupported, fixed at %g\n", infoStyle.Render("INFO:"), got)
	}

	if v := s.Volume(); v < 0 || v > 1 {
		fmt.Fprintf(w, "  %s volume %g outside [0, 1]\n", failStyle.Render("FAIL:"), v)
		return false
	}
	return true
}

// checkWarnOnce drives a fresh null backend through repeated updates and
// confirms each unsupported feature was reported exactly once.
func checkWarnOnce(w io.Writer) bool {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[3/4] Unsupported-feature diagnostics")

	counts := map[string]int{}
	n := scene.NewNull(scene.WithWarner(func(feature, _ string) { counts[feature]++ }))
	for i := range 3 {
		n.SetListenerPos(scene.Point{X: float64(i), Y: float64(i)})
		n.SetVolume(float64(i) / 3)
	}

	if len(counts) != 2 {
		fmt.Fprintf(w, "  %s expected 2 diagnostic categories, got %d\n", failStyle.Render("FAIL:"), len(counts))
		return false
	}
	for feature, c := range counts {
		if c != 1 {
			fmt.Fprintf(w, "  %s %s reported %d times, want once\n", failStyle.Render("FAIL:"), feature, c)
			return false
		}
	}
	fmt.Fprintf(w, "  %s each diagnostic fired once across repeated updates\n", passStyle.Render("PASS:"))
	return true
}

func checkTone(w io.Writer, s scene.Scene, opts Options) bool {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[4/4] Test tone")

	if opts.Play == nil {
		fmt.Fprintf(w, "  %s no player configured\n", infoStyle.Render("SKIP:"))
		return true
	}
	name := "system default"
	if opts.Device != nil {
		name = opts.Device.Name
	}
	vol := s.Volume()
	if err := opts.Play(opts.Device, vol); err != nil {
		fmt.Fprintf(w, "  %s cannot play on %s: %v\n", failStyle.Render("FAIL:"), name, err)
		return false
	}
	fmt.Fprintf(w, "  %s played tone on %s at volume %g\n", passStyle.Render("PASS:"), name, vol)
	return true
}
