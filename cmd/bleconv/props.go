package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-ble/ble"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/bleconv/internal/bledb"
	"github.com/srg/bleconv/internal/device"
	goble "github.com/srg/bleconv/internal/device/go-ble"
	winrtble "github.com/srg/bleconv/internal/device/winrt-ble"
	"github.com/srg/bleconv/internal/native/winrt"
)

// propsCmd represents the props command
var propsCmd = &cobra.Command{
	Use:   "props <mask|names>",
	Short: "Map GattCharacteristicProperties to capability flags",
	Long: `Maps a GattCharacteristicProperties bitmask to the canonical capability
flags. With --reverse, maps a list of capability names back to the native mask.
With --go-ble, the mask is a go-ble ble.Property byte instead.

ReliableWrites and WritableAuxiliaries are not capability flags; they are
reported as the value of the Characteristic Extended Properties descriptor.

Examples:
  # Read + Notify
  bleconv props 0x12

  # Extended bits are reported separately
  bleconv props 0x182

  # Names to mask
  bleconv props --reverse read,write,notify

  # go-ble property byte
  bleconv props --go-ble 0x0A`,
	Args: cobra.ExactArgs(1),
	RunE: runProps,
}

var (
	propsReverse bool
	propsGoBLE   bool
)

func init() {
	propsCmd.Flags().BoolVar(&propsReverse, "reverse", false, "Convert capability names to the native mask")
	propsCmd.Flags().BoolVar(&propsGoBLE, "go-ble", false, "Treat the mask as a go-ble ble.Property byte")
}

// parsePropsArg resolves the argument to the native mask and canonical flags
// according to --reverse and --go-ble.
func parsePropsArg(arg string) (winrt.GattCharacteristicProperties, device.CharPropFlags, error) {
	switch {
	case propsReverse && propsGoBLE:
		return 0, 0, fmt.Errorf("%w: --reverse and --go-ble are mutually exclusive", ErrInvalidInput)
	case propsReverse:
		flags, err := device.ParseCharPropFlags(arg)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return winrtble.FromCharPropFlags(flags), flags, nil
	case propsGoBLE:
		v, err := strconv.ParseUint(strings.TrimSpace(arg), 0, 8)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid go-ble property %q", ErrInvalidInput, arg)
		}
		flags := goble.NewProperties(ble.Property(v)).Flags()
		return winrtble.FromCharPropFlags(flags), flags, nil
	default:
		native, err := winrt.ParseGattCharacteristicProperties(arg)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return native, winrtble.ToCharPropFlags(native), nil
	}
}

// extendedReport encodes the extended bits as a 0x2900 descriptor value and
// decodes it back, so the report shows what a peripheral would serve.
func extendedReport(native winrt.GattCharacteristicProperties) (*report, error) {
	value := winrtble.ToExtendedProperties(native).Bytes()
	decoded, err := device.ParseExtendedProperties(value)
	if err != nil {
		return nil, err
	}

	r := newReport()
	r.Set("descriptor", device.DescriptorExtendedProperties)
	r.Set("name", bledb.LookupDescriptor(device.DescriptorExtendedProperties))
	r.Set("value", strings.ToUpper(hex.EncodeToString(value)))
	r.Set("reliable_write", decoded.ReliableWrite)
	r.Set("writable_auxiliaries", decoded.WritableAuxiliaries)
	return r, nil
}

func runProps(cmd *cobra.Command, args []string) error {
	native, flags, err := parsePropsArg(args[0])
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"native": native,
		"flags":  flags,
	}).Debug("Translated characteristic properties")

	r := newReport()
	r.Set("native", fmt.Sprintf("0x%X", uint32(native)))
	r.Set("native_names", native.String())
	r.Set("flags", flags.Names())
	r.Set("flags_value", fmt.Sprintf("0x%02X", uint8(flags)))
	r.Set("go_ble", fmt.Sprintf("0x%02X", int(goble.FromCharPropFlags(flags))))
	if flags.Has(device.CharExtendedProperties) || winrtble.ToExtendedProperties(native) != (device.ExtendedProperties{}) {
		ext, err := extendedReport(native)
		if err != nil {
			return err
		}
		r.Set("extended", ext)
	}
	return render(cmd.OutOrStdout(), r, s)
}
