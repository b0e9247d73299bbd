package runtime

import (
	"fmt"

	"github.com/adrg/xdg"
)

const (
	XDGName = "prefdeals"
)

func File(filename string) (string, error) {
	return xdg.RuntimeFile(fmt.Sprintf("%s/%s", XDGName, filename))
}

// StateFile resolves a path under the XDG state dir, where the few durable
// scraps (cookie consent, logs) live.
func StateFile(filename string) (string, error) {
	return xdg.StateFile(fmt.Sprintf("%s/%s", XDGName, filename))
}
