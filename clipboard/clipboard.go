package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-interval/logging"
)

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no clipboard utility is available (e.g. over SSH).
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system copy failed, trying OSC52: %v", err)
	}
	return copyOSC52(text)
}
