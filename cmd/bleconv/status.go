package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-ble/ble"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/bleconv/internal/device"
	goble "github.com/srg/bleconv/internal/device/go-ble"
	winrtble "github.com/srg/bleconv/internal/device/winrt-ble"
	"github.com/srg/bleconv/internal/native/winrt"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <code|name>",
	Short: "Map a GattCommunicationStatus to the canonical result",
	Long: `Maps a GattCommunicationStatus, given by name or number, to the result the
application sees: success or a canonical error kind.

Examples:
  # Named status
  bleconv status AccessDenied

  # Numeric status with the ATT error byte from GattReadResult.ProtocolError
  bleconv status 2 --att-error 0x03

  # A status newer than this tool
  bleconv status 7 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

var statusATTError string

func init() {
	statusCmd.Flags().StringVar(&statusATTError, "att-error", "", "ATT protocol error byte reported with a ProtocolError status (e.g. 0x03)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	status, err := winrt.ParseGattCommunicationStatus(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var protocolError *byte
	if statusATTError != "" {
		v, err := strconv.ParseUint(statusATTError, 0, 8)
		if err != nil {
			return fmt.Errorf("%w: invalid ATT error %q", ErrInvalidInput, statusATTError)
		}
		b := byte(v)
		protocolError = &b
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result := winrtble.ToErrorWithProtocolError(status, protocolError)
	s.logger.WithFields(logrus.Fields{
		"status": status,
		"result": result,
	}).Debug("Translated communication status")

	r := newReport()
	r.Set("native", status.String())
	r.Set("native_value", int32(status))
	if result == nil {
		r.Set("result", "ok")
		return render(cmd.OutOrStdout(), r, s)
	}

	var derr *device.Error
	if !errors.As(result, &derr) {
		return fmt.Errorf("unexpected non-canonical error: %w", result)
	}
	r.Set("result", string(derr.Kind))
	if derr.Msg != "" {
		r.Set("message", derr.Msg)
	}
	var attErr ble.ATTError
	if errors.As(result, &attErr) {
		r.Set("att_error", fmt.Sprintf("0x%02X", byte(attErr)))
		r.Set("att_error_text", attErr.Error())
		// The same ATT error raised by go-ble, for comparison
		if kind, ok := device.KindOf(goble.NormalizeError(attErr)); ok {
			r.Set("go_ble_result", string(kind))
		}
	}
	return render(cmd.OutOrStdout(), r, s)
}
