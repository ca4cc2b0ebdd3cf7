package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-ble/ble"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/bleconv/internal/device"
	goble "github.com/srg/bleconv/internal/device/go-ble"
	winrtble "github.com/srg/bleconv/internal/device/winrt-ble"
)

// addrCmd represents the addr command
var addrCmd = &cobra.Command{
	Use:   "addr <uint64|AA:BB:CC:DD:EE:FF>",
	Short: "Convert between BluetoothAddress and device addresses",
	Long: `Converts a BluetoothLEDevice.BluetoothAddress (64-bit integer) to the
canonical device address, or the other way round.

Examples:
  bleconv addr 0x001A7DDA7113
  bleconv addr 112233445566
  bleconv addr 00:1A:7D:DA:71:13`,
	Args: cobra.ExactArgs(1),
	RunE: runAddr,
}

// parseAddressArg reads a BluetoothAddress integer, or a MAC string through
// the go-ble adapter.
func parseAddressArg(s string) (device.Address, error) {
	if !strings.ContainsAny(s, ":-") {
		if v, err := strconv.ParseUint(s, 0, 64); err == nil {
			return winrtble.ToAddress(v), nil
		}
	}
	a, err := goble.ToAddress(ble.NewAddr(s))
	if err != nil {
		return device.Address{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return a, nil
}

func runAddr(cmd *cobra.Command, args []string) error {
	a, err := parseAddressArg(args[0])
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"input":   args[0],
		"address": a,
	}).Debug("Converted address")

	native := winrtble.ToBluetoothAddress(a)
	r := newReport()
	r.Set("address", a.String())
	r.Set("bluetooth_address", native)
	r.Set("bluetooth_address_hex", fmt.Sprintf("0x%012X", native))
	r.Set("go_ble", goble.FromAddress(a).String())
	return render(cmd.OutOrStdout(), r, s)
}
