package main

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	winrtble "github.com/srg/bleconv/internal/device/winrt-ble"
	"github.com/srg/bleconv/internal/native/winrt"
)

// bufferCmd represents the buffer command
var bufferCmd = &cobra.Command{
	Use:   "buffer <hex>",
	Short: "Extract the bytes of an IBuffer",
	Long: `Loads hex bytes into an in-memory IBuffer and extracts them through a
DataReader, as the adapter does for characteristic values.

Examples:
  bleconv buffer "01 02 FF"

  # Simulate a buffer that declares more bytes than it holds
  bleconv buffer 0102 --declared 4`,
	Args: cobra.ExactArgs(1),
	RunE: runBuffer,
}

var bufferDeclared int

func init() {
	bufferCmd.Flags().IntVar(&bufferDeclared, "declared", -1, "Length the buffer reports, regardless of its contents (-1 = actual length)")
}

// declaredBuffer overrides the length a Buffer reports
type declaredBuffer struct {
	*winrt.Buffer
	length uint32
}

func (b *declaredBuffer) Length() (uint32, error) {
	return b.length, nil
}

func parseHex(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", ":", "", "0x", "", "0X", "").Replace(s)
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return data, nil
}

func runBuffer(cmd *cobra.Command, args []string) error {
	data, err := parseHex(args[0])
	if err != nil {
		return err
	}
	if bufferDeclared < -1 || int64(bufferDeclared) > math.MaxUint32 {
		return fmt.Errorf("%w: --declared must be -1 or between 0 and %d, got %d", ErrInvalidInput, uint32(math.MaxUint32), bufferDeclared)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var buf winrt.IBuffer = winrt.NewBufferFromBytes(data)
	if bufferDeclared >= 0 {
		buf = &declaredBuffer{Buffer: winrt.NewBufferFromBytes(data), length: uint32(bufferDeclared)}
	}

	out, err := winrtble.ToBytes(buf)
	if err != nil {
		s.logger.WithError(err).
			WithField("hresult", fmt.Sprintf("0x%08X", winrt.HResult(err))).
			Debug("Buffer extraction failed")
		return err
	}
	s.logger.WithField("length", len(out)).Debug("Extracted buffer")

	r := newReport()
	r.Set("length", len(out))
	r.Set("hex", strings.ToUpper(hex.EncodeToString(out)))
	return render(cmd.OutOrStdout(), r, s)
}
