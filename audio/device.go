package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var ErrSelectionCancelled = errors.New("device selection cancelled")

// SelectDevice presents an interactive picker over the playback devices and
// returns the selected one. If only one device is available, it returns that
// device without prompting.
func SelectDevice(ctx Context) (*DeviceInfo, error) {
	devices, err := ctx.Devices()
	if err != nil {
		return nil, fmt.Errorf("enumerating devices: %w", err)
	}

	if len(devices) == 0 {
		return nil, ErrNoDevices
	}

	if len(devices) == 1 {
		return &devices[0], nil
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return runPicker(devices, os.Stdin, os.Stdout)
}

type pickerAction int

const (
	pickerNone pickerAction = iota
	pickerUp
	pickerDown
	pickerConfirm
	pickerCancel
)

// decodeKey maps one raw-mode read to a picker action.
func decodeKey(buf []byte) pickerAction {
	switch {
	case len(buf) == 1:
		switch buf[0] {
		case '\r':
			return pickerConfirm
		case 3: // Ctrl+C
			return pickerCancel
		case 'j':
			return pickerDown
		case 'k':
			return pickerUp
		}
	case len(buf) == 3 && buf[0] == 0x1b && buf[1] == '[':
		switch buf[2] {
		case 'A':
			return pickerUp
		case 'B':
			return pickerDown
		}
	}
	return pickerNone
}

func renderDevices(w io.Writer, devices []DeviceInfo, cursor int) {
	fmt.Fprint(w, "\r\x1b[J")
	fmt.Fprint(w, "Select output device (↑/↓, Enter to confirm):\r\n\r\n")
	for i, d := range devices {
		btTag := ""
		if IsBluetooth(d.Name) {
			btTag = " \x1b[33m[⚠ bluetooth latency]\x1b[0m"
		}
		if i == cursor {
			fmt.Fprintf(w, "  \x1b[1;36m▶ %s%s\x1b[0m\r\n", d.Name, btTag)
		} else {
			fmt.Fprintf(w, "    %s%s\r\n", d.Name, btTag)
		}
	}
}

func runPicker(devices []DeviceInfo, in io.Reader, out io.Writer) (*DeviceInfo, error) {
	cursor := 0
	renderDevices(out, devices, cursor)

	buf := make([]byte, 3)
	for {
		n, err := in.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}

		switch decodeKey(buf[:n]) {
		case pickerConfirm:
			fmt.Fprint(out, "\r\n")
			return &devices[cursor], nil
		case pickerCancel:
			fmt.Fprint(out, "\r\n")
			return nil, ErrSelectionCancelled
		case pickerUp:
			cursor = max(cursor-1, 0)
		case pickerDown:
			cursor = min(cursor+1, len(devices)-1)
		}

		fmt.Fprintf(out, "\x1b[%dA", len(devices)+2)
		renderDevices(out, devices, cursor)
	}
}
