package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/bleconv/internal/bledb"
	"github.com/srg/bleconv/internal/device"
	goble "github.com/srg/bleconv/internal/device/go-ble"
	winrtble "github.com/srg/bleconv/internal/device/winrt-ble"
	"github.com/srg/bleconv/internal/native/winrt"
)

// uuidCmd represents the uuid command
var uuidCmd = &cobra.Command{
	Use:   "uuid <uuid|guid|short>",
	Short: "Show an identifier in GUID, canonical and go-ble layouts",
	Long: `Shows a 128-bit identifier in every layout the adapters deal with: the
WinRT GUID fields, the canonical UUID, and go-ble's little-endian bytes.

Examples:
  # GUID as printed by Windows
  bleconv uuid {0000180D-0000-1000-8000-00805F9B34FB}

  # SIG-assigned short form
  bleconv uuid 2a37

  # Vendor UUID
  bleconv uuid 6e400001-b5a3-f393-e0a9-e50e24dcca9e -o yaml

  # Parse with go-ble's parser instead
  bleconv uuid --go-ble 180d`,
	Args: cobra.ExactArgs(1),
	RunE: runUUID,
}

var uuidGoBLE bool

func init() {
	uuidCmd.Flags().BoolVar(&uuidGoBLE, "go-ble", false, "Parse the argument with go-ble and convert it through the go-ble adapter")
}

func runUUID(cmd *cobra.Command, args []string) error {
	normalized, err := device.ValidateUUID(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	parse := parseIdentifier
	if uuidGoBLE {
		parse = parseGoBLEIdentifier
	}
	u, g, err := parse(args[0])
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"input": args[0],
		"uuid":  u,
	}).Debug("Converted identifier")

	fields := newReport()
	fields.Set("data1", fmt.Sprintf("0x%08X", g.Data1))
	fields.Set("data2", fmt.Sprintf("0x%04X", g.Data2))
	fields.Set("data3", fmt.Sprintf("0x%04X", g.Data3))
	fields.Set("data4", fmt.Sprintf("% X", g.Data4[:]))

	r := newReport()
	r.Set("uuid", u.String())
	r.Set("normalized", normalized[0])
	r.Set("guid", winrt.FormatGUID(g))
	r.Set("fields", fields)
	r.Set("go_ble", fmt.Sprintf("% X", []byte(goble.FromUUID(u))))
	if short, ok := device.ShortUUID(u); ok {
		r.Set("short", fmt.Sprintf("0x%04X", short))
	} else if short32, ok := device.Short32UUID(u); ok {
		r.Set("short", fmt.Sprintf("0x%08X", short32))
	}
	if entry, ok := bledb.Lookup(u.String()); ok {
		r.Set("name", entry.Name)
		r.Set("type", string(entry.Type))
	}
	return render(cmd.OutOrStdout(), r, s)
}

// parseIdentifier tries the GUID forms first, then the short and
// canonical forms accepted by device.ParseUUID.
func parseIdentifier(s string) (uuid.UUID, winrt.GUID, error) {
	if g, err := winrt.ParseGUID(s); err == nil {
		return winrtble.ToUUID(g), g, nil
	}
	u, err := device.ParseUUID(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, winrt.GUID{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return u, winrtble.ToGUID(u), nil
}

// parseGoBLEIdentifier parses s with go-ble's own parser, so the value
// enters through the go-ble adapter rather than the GUID path.
func parseGoBLEIdentifier(s string) (uuid.UUID, winrt.GUID, error) {
	u, err := goble.ParseUUID(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, winrt.GUID{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return u, winrtble.ToGUID(u), nil
}
