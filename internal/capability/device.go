package capability

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner abstracts execution of device-bridge commands so tests
// can substitute a stub for the real adb binary.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner runs commands through os/exec, honoring the context
// deadline supplied by the dispatcher.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

// DeviceControl drives connected devices through an automation bridge
// (adb for android). The command string is the action verb; arguments
// arrive in the options map.
type DeviceControl struct {
	runner CommandRunner
	logger *slog.Logger
}

// NewDeviceControl creates a device control adapter backed by the local
// adb binary.
func NewDeviceControl(logger *slog.Logger) *DeviceControl {
	return &DeviceControl{
		runner: execRunner{},
		logger: logger.With("capability", "device_control"),
	}
}

// NewDeviceControlWithRunner creates a device control adapter with a
// custom command runner. Used by tests.
func NewDeviceControlWithRunner(runner CommandRunner, logger *slog.Logger) *DeviceControl {
	return &DeviceControl{
		runner: runner,
		logger: logger.With("capability", "device_control"),
	}
}

// Execute runs a device command. Options: device_type (default
// "android"), device_id (targets a specific device when several are
// connected), args (command-specific arguments).
func (d *DeviceControl) Execute(ctx context.Context, command string, options map[string]any) (map[string]any, error) {
	deviceType := stringOption(options, "device_type", "android")
	if deviceType != "android" {
		return nil, fmt.Errorf("unsupported device type %q", deviceType)
	}

	deviceID := stringOption(options, "device_id", "")
	args := bridgeArgs(command, deviceID, stringSliceOption(options, "args"))

	d.logger.Info("executing device command",
		"command", command,
		"device_type", deviceType,
		"device_id", deviceID)

	output, err := d.runner.Run(ctx, "adb", args...)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"type":        "device_control",
		"device_type": deviceType,
		"command":     command,
		"output":      output,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// bridgeArgs translates an action verb into the adb invocation for it.
// Unrecognized verbs pass through as raw shell commands.
func bridgeArgs(command, deviceID string, extra []string) []string {
	var args []string
	if deviceID != "" {
		args = append(args, "-s", deviceID)
	}

	switch command {
	case "tap", "swipe", "text", "keyevent":
		args = append(args, "shell", "input", command)
		args = append(args, extra...)
	case "screenshot":
		args = append(args, "shell", "screencap", "-p")
		args = append(args, extra...)
	case "list_devices":
		args = append(args, "devices", "-l")
	default:
		args = append(args, "shell", command)
		args = append(args, extra...)
	}

	return args
}
